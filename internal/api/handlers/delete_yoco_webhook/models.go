package delete_yoco_webhook

type DeleteRequest struct {
	ID string `json:"id"`
}
