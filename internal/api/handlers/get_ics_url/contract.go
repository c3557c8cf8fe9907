package get_ics_url

type ICSSource interface {
	URL() string
}
