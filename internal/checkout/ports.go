package checkout

import (
	"context"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
)

// PaymentIntents creates intents through the bakery backend.
type PaymentIntents interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (*models.PaymentIntentHandle, error)
}

// PaymentMethods attaches billing details to the card the browser tokenized.
type PaymentMethods interface {
	FinalizePaymentMethod(ctx context.Context, paymentMethodID string, contact models.ContactInfo) error
}

// Orders submits the order and charges the intent in one backend call.
type Orders interface {
	ProcessOrderAndPay(ctx context.Context, req *models.ProcessOrderRequest) (*models.OrderResult, error)
}
