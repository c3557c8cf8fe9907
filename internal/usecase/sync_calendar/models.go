package sync_calendar

const (
	SourceICS   = "ics"
	SourceGraph = "graph"
)

// Request модель запроса синхронизации одного дня
type Request struct {
	Date   string // YYYY-MM-DD
	Source string // ics или graph, по умолчанию ics
}

// Response модель ответа синхронизации
type Response struct {
	Date   string
	Source string
	Busy   []string // занятые метки времени ("6:00 AM")
	Synced int      // сколько слотов заблокировано
}
