package unblock_date

// DateRequest тело запроса
type DateRequest struct {
	Date string `json:"date"`
}
