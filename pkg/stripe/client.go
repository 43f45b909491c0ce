package stripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// Client is the slice of Stripe the storefront talks to directly. Payment
// intents are created and confirmed by the bakery backend.
type Client interface {
	// FinalizePaymentMethod stamps the shopper's contact details on a
	// payment method the browser created.
	FinalizePaymentMethod(ctx context.Context, paymentMethodID string, contact models.ContactInfo) error
	Ping(ctx context.Context) error
}

// Error wraps a failed Stripe call so callers can tell a declined card from
// an outage without importing stripe-go.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stripe %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PaymentDeclined reports whether Stripe rejected the card itself.
func (e *Error) PaymentDeclined() bool {
	var se *stripe.Error
	if !errors.As(e.Err, &se) {
		return false
	}

	return se.Type == stripe.ErrorTypeCard || se.Code == stripe.ErrorCodeCardDeclined
}

// DeclineMessage is Stripe's own explanation, without the raw error body.
func (e *Error) DeclineMessage() string {
	var se *stripe.Error
	if !errors.As(e.Err, &se) {
		return ""
	}

	return se.Msg
}

type stripeClient struct {
	api *client.API
}

func NewStripeClient(apiKey string) Client {
	return &stripeClient{api: client.New(apiKey, nil)}
}

// NewStripeClientWithBackend points the client at baseURL instead of the
// Stripe API.
func NewStripeClientWithBackend(apiKey, baseURL string) Client {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		MaxNetworkRetries: stripe.Int64(0),
	})

	return &stripeClient{api: client.New(apiKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})}
}

func (s *stripeClient) FinalizePaymentMethod(ctx context.Context, paymentMethodID string, contact models.ContactInfo) error {
	params := &stripe.PaymentMethodParams{
		BillingDetails: &stripe.PaymentMethodBillingDetailsParams{
			Name:  stripe.String(contact.Name),
			Email: stripe.String(contact.Email),
		},
	}

	if contact.Phone != "" {
		params.BillingDetails.Phone = stripe.String(contact.Phone)
	}

	params.Context = ctx

	if _, err := s.api.PaymentMethods.Update(paymentMethodID, params); err != nil {
		return &Error{Op: "update payment method", Err: err}
	}

	return nil
}

// Ping reads the account balance, the cheapest authenticated call.
func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	if _, err := s.api.Balance.Get(params); err != nil {
		return &Error{Op: "balance", Err: err}
	}

	return nil
}
