package remove_calendar_blocks

// Request модель запроса
type Request struct {
	Date string // YYYY-MM-DD
	UPN  string
}

// Response модель ответа
type Response struct {
	Date    string
	Removed int
}
