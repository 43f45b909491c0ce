package cart

import (
	"fmt"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
)

// Mode is the ordering context a cart is bound to. It is either Regular or
// Special; no other implementations exist.
type Mode interface {
	isMode()
	String() string
}

type Regular struct{}

type Special struct {
	ID   int64
	Name string
}

func (Regular) isMode() {}
func (Special) isMode() {}

func (Regular) String() string { return models.CartModeRegular }

func (s Special) String() string {
	return fmt.Sprintf("%s:%d", models.CartModeSpecial, s.ID)
}

// ModesMatch reports whether an item added under requested may join a cart
// bound to current. Specials match on id alone, names are display only.
func ModesMatch(current, requested Mode) bool {
	switch c := current.(type) {
	case Regular:
		_, ok := requested.(Regular)

		return ok
	case Special:
		r, ok := requested.(Special)

		return ok && r.ID == c.ID
	}

	return false
}

// ToWire converts a mode into its JSON form. A nil mode yields nil.
func ToWire(m Mode) *models.CartMode {
	switch v := m.(type) {
	case Regular:
		return &models.CartMode{Type: models.CartModeRegular}
	case Special:
		return &models.CartMode{Type: models.CartModeSpecial, SpecialID: v.ID, SpecialName: v.Name}
	}

	return nil
}

// FromWire parses the JSON form of a mode. A nil input yields a nil mode.
func FromWire(w *models.CartMode) (Mode, error) {
	if w == nil {
		return nil, nil
	}

	switch w.Type {
	case models.CartModeRegular:
		return Regular{}, nil
	case models.CartModeSpecial:
		if w.SpecialID <= 0 {
			return nil, fmt.Errorf("special mode without a special id")
		}

		return Special{ID: w.SpecialID, Name: w.SpecialName}, nil
	default:
		return nil, fmt.Errorf("unknown cart mode %q", w.Type)
	}
}
