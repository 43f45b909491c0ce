package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SubmitInput struct {
	Contact         models.ContactInfo
	PaymentMethodID string
	Notes           string
}

// Machine drives a Session through its states. It holds no per-session
// data and is safe for concurrent use; callers serialize access to a
// single Session.
type Machine struct {
	intents   PaymentIntents
	methods   PaymentMethods
	orders    Orders
	currency  string
	validator *validator.Validate
	now       func() time.Time
}

func NewMachine(intents PaymentIntents, methods PaymentMethods, orders Orders, currency string) *Machine {
	return &Machine{
		intents:   intents,
		methods:   methods,
		orders:    orders,
		currency:  currency,
		validator: validator.New(),
		now:       time.Now,
	}
}

// WithClock replaces the clock used for timestamps.
func (m *Machine) WithClock(now func() time.Time) *Machine {
	m.now = now

	return m
}

// Begin opens a session. Checkout cannot start on an empty cart.
func (m *Machine) Begin(view CartView) (*Session, error) {
	if view.empty() {
		return nil, ErrEmptyCart
	}

	now := m.now()

	return &Session{
		ID:        uuid.NewString(),
		State:     StateSelectingTime,
		StartedAt: now,
		UpdatedAt: now,
	}, nil
}

// Resume re-enters an existing session, or begins one when s is nil. A
// confirmed session is returned as is even though the cart is now empty.
// A prepared payment whose amount no longer matches the cart is dropped.
func (m *Machine) Resume(s *Session, view CartView) (*Session, error) {
	if s == nil {
		return m.Begin(view)
	}

	if s.State.IsTerminal() {
		return s, nil
	}

	if view.empty() {
		return nil, ErrEmptyCart
	}

	if s.State == StateCollectingPayment && s.Intent != nil && s.Intent.Amount != view.Summary.MinorUnits() {
		s.State = StateSelectingTime
		s.Intent = nil
		s.Timeslot = nil
		s.UpdatedAt = m.now()
	}

	return s, nil
}

func (m *Machine) transition(s *Session, to State) error {
	if !s.State.CanTransitionTo(to) {
		return &IllegalTransitionError{From: s.State, To: to}
	}

	s.State = to
	s.UpdatedAt = m.now()

	return nil
}

func (m *Machine) guard(s *Session, to State) error {
	if !s.State.CanTransitionTo(to) {
		return &IllegalTransitionError{From: s.State, To: to}
	}

	return nil
}

// SelectTimeslot prepares payment for the cart total and moves on to
// payment. On failure the session stays where it was.
func (m *Machine) SelectTimeslot(ctx context.Context, s *Session, slot models.PickupTimeslot, view CartView) error {
	if err := m.guard(s, StateCollectingPayment); err != nil {
		return err
	}

	if view.empty() {
		return ErrEmptyCart
	}

	amount := view.Summary.MinorUnits()

	handle, err := m.intents.CreatePaymentIntent(ctx, amount)
	if err != nil {
		s.LastError = "Failed to initialize payment"

		return fmt.Errorf("%w: create payment intent: %w", ErrUpstream, err)
	}

	if handle.Amount == 0 {
		handle.Amount = amount
	}

	s.Timeslot = &slot
	s.Intent = handle
	s.LastError = ""

	return m.transition(s, StateCollectingPayment)
}

// Back returns to time selection. The prepared payment is abandoned.
func (m *Machine) Back(s *Session) error {
	if err := m.transition(s, StateSelectingTime); err != nil {
		return err
	}

	s.Intent = nil
	s.Timeslot = nil

	return nil
}

// Submit places the order. Contact details are checked before anything
// leaves the process. Any failure keeps the session in payment collection
// with its timeslot, intent and contact so the shopper can retry.
func (m *Machine) Submit(ctx context.Context, s *Session, in SubmitInput, view CartView) error {
	if err := m.guard(s, StateConfirmed); err != nil {
		return err
	}

	if err := m.validator.Struct(in.Contact); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}

	if in.PaymentMethodID == "" {
		return fmt.Errorf("%w: payment method is required", ErrInvalidContact)
	}

	contact := in.Contact
	s.Contact = &contact

	if view.empty() {
		return ErrEmptyCart
	}

	if s.Intent == nil || s.Timeslot == nil || s.Intent.Amount != view.Summary.MinorUnits() {
		return ErrCartChanged
	}

	if err := m.methods.FinalizePaymentMethod(ctx, in.PaymentMethodID, contact); err != nil {
		return m.paymentFailure(s, "attach billing details", err)
	}

	req := m.buildRequest(s, in, view)

	result, err := m.orders.ProcessOrderAndPay(ctx, req)
	if err != nil {
		return m.paymentFailure(s, "process order", err)
	}

	s.Confirmation = &models.OrderConfirmation{
		CustomerName:  contact.Name,
		CustomerEmail: contact.Email,
		CustomerPhone: contact.Phone,
		Timeslot:      *s.Timeslot,
		Items:         view.Items,
		Subtotal:      view.Summary.Subtotal,
		Tax:           view.Summary.Tax,
		Total:         view.Summary.Total,
		ConfirmedAt:   m.now(),
	}

	if result != nil {
		s.Confirmation.OrderID = result.ID
	}

	s.LastError = ""

	return m.transition(s, StateConfirmed)
}

func (m *Machine) paymentFailure(s *Session, step string, err error) error {
	if IsDeclined(err) {
		s.LastError = DeclineMessage(err)

		return fmt.Errorf("%w: %s: %w", ErrPaymentDeclined, step, err)
	}

	s.LastError = "Failed to process payment"

	return fmt.Errorf("%w: %s: %w", ErrUpstream, step, err)
}

func (m *Machine) buildRequest(s *Session, in SubmitInput, view CartView) *models.ProcessOrderRequest {
	items := make([]models.OrderItem, 0, len(view.Items))

	for _, item := range view.Items {
		items = append(items, models.OrderItem{
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			Price:         cart.EffectiveUnitCost(item),
			ProductSizeID: item.ProductSizeID,
			Selections:    item.Selections,
			AddOns:        item.AddOns,
		})
	}

	return &models.ProcessOrderRequest{
		Order: models.Order{
			Email:      in.Contact.Email,
			Name:       in.Contact.Name,
			Phone:      in.Contact.Phone,
			Items:      items,
			Total:      view.Summary.Total,
			PickupTime: s.Timeslot.Timestamp,
			Notes:      in.Notes,
			Status:     models.OrderStatusPending,
		},
		PaymentIntentInfo: models.PaymentIntentInfo{
			Amount:   view.Summary.MinorUnits(),
			Currency: m.currency,
			Email:    in.Contact.Email,
			Phone:    in.Contact.Phone,
			Name:     in.Contact.Name,
			PaymentInfo: models.PaymentInfo{
				Intent:        s.Intent.ID,
				PaymentMethod: in.PaymentMethodID,
			},
		},
	}
}
