package models

type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

// PaymentIntentHandle identifies a payment intent created by the backend.
// The client secret is handed to the browser to mount the card element.
type PaymentIntentHandle struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
}

type CheckoutConfig struct {
	PublishableKey string `json:"publishableKey"`
	Currency       string `json:"currency"`
}
