package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Type names the backend uses in its product taxonomy.
const (
	ProductTypeBread    = "Bread"
	ProductTypeSpecial  = "Special"
	ProductTypeCatering = "Catering"
)

func init() {
	// the bakery backend reads and writes money as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// LegacySpecialTypeID is a retired special category the backend still returns.
const LegacySpecialTypeID int64 = 10

type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductSize struct {
	ID          int64            `json:"id"`
	ProductID   int64            `json:"product_id"`
	Size        string           `json:"size"`
	Cost        decimal.Decimal  `json:"cost"`
	SpecialCost *decimal.Decimal `json:"special_cost,omitempty"`
}

type SelectionOption struct {
	ID    int64           `json:"id"`
	Value string          `json:"value"`
	Cost  decimal.Decimal `json:"cost"`
	KeyID int64           `json:"key_id"`
}

// OptionsBySize is keyed by category name, then by size label.
type OptionsBySize map[string]map[string][]SelectionOption

type Product struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Price              decimal.Decimal  `json:"price"`
	SpecialPrice       *decimal.Decimal `json:"special_price,omitempty"`
	PhotoURL           string           `json:"photoUrl"`
	TypeID             int64            `json:"typeId"`
	Quantity           int              `json:"quantity"`
	Active             bool             `json:"active"`
	Sizes              []ProductSize    `json:"product_sizes,omitempty"`
	SelectionValues    OptionsBySize    `json:"product_selection_values,omitempty"`
	AddOnValues        OptionsBySize    `json:"product_add_on_values,omitempty"`
	NeedsConfiguration bool             `json:"needsConfiguration"`
}

// HasOptions reports whether the product must go through configuration
// before it can be added to a cart.
func (p *Product) HasOptions() bool {
	return len(p.Sizes) > 0 || len(p.SelectionValues) > 0 || len(p.AddOnValues) > 0
}

// BasePrice is the promotional price when one is set, otherwise the list price.
func (p *Product) BasePrice() decimal.Decimal {
	if p.SpecialPrice != nil {
		return *p.SpecialPrice
	}

	return p.Price
}

// Price of the size, promotional cost first.
func (s *ProductSize) Price() decimal.Decimal {
	if s.SpecialCost != nil {
		return *s.SpecialCost
	}

	return s.Cost
}

type Special struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Products    []Product `json:"products"`
	Active      bool      `json:"active"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Upcoming    bool      `json:"upcoming"`
}

// Contains reports whether productID is part of the special's product list.
func (s *Special) Contains(productID int64) bool {
	for i := range s.Products {
		if s.Products[i].ID == productID {
			return true
		}
	}

	return false
}

type MenuResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// Timestamp decodes the date formats the backend has been seen to emit:
// RFC 3339, a naive local date-time, or a bare date. Null stays zero.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", time.DateOnly}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}

	if s == "" {
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

// ParseTimestamp accepts any of the layouts Timestamp decodes.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("timestamp: unrecognized format %q", s)
}
