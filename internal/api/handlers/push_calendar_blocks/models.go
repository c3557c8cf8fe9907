package push_calendar_blocks

type PushRequest struct {
	Date string `json:"date"`
	UPN  string `json:"upn"`
}

type CreatedEvent struct {
	ID   string `json:"id"`
	Time string `json:"time"`
}

type PushResponse struct {
	OK      bool           `json:"ok"`
	Created []CreatedEvent `json:"created"`
	Failed  int            `json:"failed"`
}
