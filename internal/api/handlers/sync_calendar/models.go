package sync_calendar

type SyncRequest struct {
	Date   string `json:"date"`
	Source string `json:"source"`
}

type SyncResponse struct {
	OK     bool     `json:"ok"`
	Date   string   `json:"date"`
	Source string   `json:"source"`
	Synced int      `json:"synced"`
	Busy   []string `json:"busy"`
}
