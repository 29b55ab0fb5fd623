package models

type CheckoutInitRequest struct {
	Plan string `json:"plan"`
}

type CheckoutInitResponse struct {
	CheckoutFormContent string `json:"checkoutFormContent"`
}
