package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalTransition = errors.New("checkout: illegal transition")
	ErrEmptyCart         = errors.New("checkout: cart is empty")
	ErrInvalidContact    = errors.New("checkout: invalid contact information")
	ErrCartChanged       = errors.New("checkout: cart changed since the payment was prepared")
	ErrPaymentDeclined   = errors.New("checkout: payment declined")
	ErrUpstream          = errors.New("checkout: upstream failure")
)

type IllegalTransitionError struct {
	From State
	To   State
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("checkout: cannot move from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

const defaultDeclineMessage = "Your card was declined"

// Payment adapters mark card declines by implementing this. DeclineMessage
// is the provider's reason, fit to show the shopper.
type declineError interface {
	PaymentDeclined() bool
	DeclineMessage() string
}

// IsDeclined reports whether err, or anything it wraps, is a card decline.
func IsDeclined(err error) bool {
	var d declineError

	return errors.As(err, &d) && d.PaymentDeclined()
}

// DeclineMessage returns the shopper-facing reason for a decline.
func DeclineMessage(err error) string {
	var d declineError
	if errors.As(err, &d) {
		if msg := strings.TrimSpace(d.DeclineMessage()); msg != "" {
			return msg
		}
	}

	return defaultDeclineMessage
}
