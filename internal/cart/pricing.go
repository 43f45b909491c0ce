package cart

import (
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

var TaxRate = decimal.RequireFromString("0.08")

// TaxExemption identifies the tax-free product type. When the type list
// could not be loaded Resolved is false and every item is taxed.
type TaxExemption struct {
	BreadTypeID int64
	Resolved    bool
}

func (e TaxExemption) exempt(item models.CartLineItem) bool {
	return e.Resolved && item.TypeID == e.BreadTypeID
}

type Summary struct {
	Count    int
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// MinorUnits is the total in cents.
func (s Summary) MinorUnits() int64 {
	return s.Total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// EffectiveUnitCost is the stored unit price plus every selection and
// add-on surcharge.
func EffectiveUnitCost(item models.CartLineItem) decimal.Decimal {
	cost := item.Price

	for _, s := range item.Selections {
		cost = cost.Add(s.Cost)
	}

	for _, addOns := range item.AddOns {
		for _, a := range addOns {
			cost = cost.Add(a.Cost)
		}
	}

	return cost
}

// LineTotal is the effective unit cost times the quantity.
func LineTotal(item models.CartLineItem) decimal.Decimal {
	return EffectiveUnitCost(item).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func Subtotal(items []models.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineTotal(item))
	}

	return sum
}

// Tax is rounded once, on the sum of taxable line totals.
func Tax(items []models.CartLineItem, exemption TaxExemption) decimal.Decimal {
	taxable := decimal.Zero

	for _, item := range items {
		if exemption.exempt(item) {
			continue
		}

		taxable = taxable.Add(LineTotal(item))
	}

	return taxable.Mul(TaxRate).Round(2)
}

func Total(items []models.CartLineItem, exemption TaxExemption) decimal.Decimal {
	return Subtotal(items).Add(Tax(items, exemption))
}

func Count(items []models.CartLineItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}

	return n
}

func Summarize(items []models.CartLineItem, exemption TaxExemption) Summary {
	subtotal := Subtotal(items)
	tax := Tax(items, exemption)

	return Summary{
		Count:    Count(items),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
