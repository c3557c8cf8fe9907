package push_calendar_blocks

// AllDay метка события на весь день
const AllDay = "ALL_DAY"

// Config параметры создаваемых событий
type Config struct {
	TimeZone string // Windows имя зоны, например "South Africa Standard Time"
	Subject  string
}

// Request модель запроса
type Request struct {
	Date string // YYYY-MM-DD
	UPN  string // пустой означает ящик из конфигурации
}

// CreatedEvent созданное событие и время слота ("06:00" или ALL_DAY)
type CreatedEvent struct {
	ID   string
	Time string
}

// Response модель ответа
type Response struct {
	Date    string
	Created []CreatedEvent
	Failed  int
}
