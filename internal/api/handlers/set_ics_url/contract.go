package set_ics_url

type ICSSource interface {
	SetURL(url string) error
	URL() string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
