package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

type ContactInfo struct {
	Name  string `json:"name"  validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=32"`
}

type SubmitOrderRequest struct {
	Contact         ContactInfo `json:"contact"         validate:"required"`
	PaymentMethodID string      `json:"paymentMethodId" validate:"required"`
	Notes           string      `json:"notes,omitempty" validate:"max=500"`
}

type OrderItem struct {
	ProductID     int64                     `json:"productId"`
	Quantity      int                       `json:"quantity"`
	Price         decimal.Decimal           `json:"price"`
	ProductSizeID *int64                    `json:"product_size_id"`
	Selections    map[string]ChosenOption   `json:"selections"`
	AddOns        map[string][]ChosenOption `json:"add_ons"`
}

// Order is the payload the bakery backend expects for an online order.
// Total is in dollars.
type Order struct {
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Items      []OrderItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
	PickupTime string          `json:"pickupTime"`
	Notes      string          `json:"notes"`
	Status     string          `json:"status"`
}

type PaymentInfo struct {
	Intent        string `json:"intent"`
	PaymentMethod string `json:"payment_method"`
}

// PaymentIntentInfo carries the amount in minor units.
type PaymentIntentInfo struct {
	Amount      int64       `json:"amount"`
	Currency    string      `json:"currency"`
	OrderID     *int64      `json:"orderId"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Name        string      `json:"name"`
	PaymentInfo PaymentInfo `json:"paymentInfo"`
}

type ProcessOrderRequest struct {
	Order             Order             `json:"order"`
	PaymentIntentInfo PaymentIntentInfo `json:"paymentIntentInfo"`
}

type OrderResult struct {
	ID      int64  `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type OrderConfirmation struct {
	OrderID       int64           `json:"orderId,omitempty"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Timeslot      PickupTimeslot  `json:"timeslot"`
	Items         []CartLineItem  `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	ConfirmedAt   time.Time       `json:"confirmedAt"`
}
