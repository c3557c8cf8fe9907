package verify_pin

type VerifyRequest struct {
	Pin string `json:"pin"`
}
