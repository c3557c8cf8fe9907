package remove_calendar_blocks

type RemoveRequest struct {
	Date string `json:"date"`
	UPN  string `json:"upn"`
}

type RemoveResponse struct {
	OK      bool `json:"ok"`
	Removed int  `json:"removed"`
}
