package change_pin

type ChangePinRequest struct {
	Current string `json:"current"`
	Next    string `json:"next"`
}
