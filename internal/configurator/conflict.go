package configurator

import (
	"fmt"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
)

// ConflictMessage is the prompt shown before an add that would clear the
// cart. It is empty when the modes do not conflict.
func ConflictMessage(current, requested cart.Mode) string {
	if current == nil || requested == nil || cart.ModesMatch(current, requested) {
		return ""
	}

	switch cur := current.(type) {
	case cart.Special:
		switch req := requested.(type) {
		case cart.Regular:
			return fmt.Sprintf("You currently have items from %q in your cart. Adding regular menu items will clear your cart.", cur.Name)
		case cart.Special:
			return fmt.Sprintf("You currently have items from %q in your cart. Adding items from %q will clear your cart.", cur.Name, req.Name)
		}
	case cart.Regular:
		if req, ok := requested.(cart.Special); ok {
			return fmt.Sprintf("You currently have regular menu items in your cart. Adding items from %q will clear your cart.", req.Name)
		}
	}

	return ""
}
