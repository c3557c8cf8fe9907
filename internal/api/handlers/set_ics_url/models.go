package set_ics_url

type SetURLRequest struct {
	URL string `json:"url"`
}

type SetURLResponse struct {
	OK     bool   `json:"ok"`
	ICSURL string `json:"icsUrl"`
}
