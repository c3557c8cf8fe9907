package register_yoco_webhook

const defaultWebhookName = "totti-webhook"

type RegisterRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
