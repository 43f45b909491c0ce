package cart

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
)

type compositeKey struct {
	ProductID     int64       `json:"productId"`
	Price         json.Number `json:"price"`
	ProductSizeID *int64      `json:"product_size_id"`
	Selections    []string    `json:"selections,omitempty"`
	AddOns        []string    `json:"add_ons,omitempty"`
}

// swapped in tests to exercise the fallback key
var encodeKey = json.Marshal

type fallbackKey struct {
	ProductID     int64  `json:"productId"`
	ProductSizeID *int64 `json:"product_size_id"`
}

// CompositeKey returns the canonical identity of a line item's configuration.
// Two items with equal keys are the same thing ordered twice.
func CompositeKey(item models.CartLineItem) string {
	key, err := buildKey(item)
	if err != nil {
		b, _ := json.Marshal(fallbackKey{ProductID: item.ProductID, ProductSizeID: sizeOrNil(item.ProductSizeID)})

		return string(b)
	}

	return key
}

func buildKey(item models.CartLineItem) (string, error) {
	entry := compositeKey{
		ProductID:     item.ProductID,
		Price:         json.Number(item.Price.String()),
		ProductSizeID: sizeOrNil(item.ProductSizeID),
	}

	for category, choice := range item.Selections {
		entry.Selections = append(entry.Selections, fmt.Sprintf("%s: %s", category, choice.Value))
	}

	sort.Strings(entry.Selections)

	for category, choices := range item.AddOns {
		// add-on categories may carry a "-<size>" suffix
		label, _, _ := strings.Cut(category, "-")

		for _, choice := range choices {
			if choice.Value == "" {
				continue
			}

			entry.AddOns = append(entry.AddOns, fmt.Sprintf("%s: %s", label, choice.Value))
		}
	}

	sort.Strings(entry.AddOns)

	b, err := encodeKey(entry)
	if err != nil {
		return "", fmt.Errorf("encode composite key: %w", err)
	}

	return string(b), nil
}

// a zero size id means "no size"
func sizeOrNil(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}

	return id
}

// SameConfiguration reports whether a and b would merge in a cart.
func SameConfiguration(a, b models.CartLineItem) bool {
	return CompositeKey(a) == CompositeKey(b)
}

// FindMatch returns the index of the first item sharing item's key, or -1.
func FindMatch(items []models.CartLineItem, item models.CartLineItem) int {
	key := CompositeKey(item)

	for i := range items {
		if CompositeKey(items[i]) == key {
			return i
		}
	}

	return -1
}
