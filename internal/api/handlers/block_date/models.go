package block_date

// DateRequest тело запроса
type DateRequest struct {
	Date string `json:"date"`
}
