package checkout

import (
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
)

// Session is one pass through checkout. It is stored between requests and
// outlives the cart once confirmed.
type Session struct {
	ID           string                      `json:"id"`
	State        State                       `json:"state"`
	Timeslot     *models.PickupTimeslot      `json:"timeslot,omitempty"`
	Intent       *models.PaymentIntentHandle `json:"paymentIntent,omitempty"`
	Contact      *models.ContactInfo         `json:"contact,omitempty"`
	Confirmation *models.OrderConfirmation   `json:"confirmation,omitempty"`
	LastError    string                      `json:"lastError,omitempty"`
	StartedAt    time.Time                   `json:"startedAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// CartView is what checkout needs to know about the live cart.
type CartView struct {
	Items   []models.CartLineItem
	Summary cart.Summary
}

func (v CartView) empty() bool {
	return len(v.Items) == 0
}
