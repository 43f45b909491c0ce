package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sizeID(id int64) *int64 {
	return &id
}

func sandwich() models.CartLineItem {
	return models.CartLineItem{
		ProductID:     7,
		ProductName:   "Sandwich",
		Quantity:      1,
		Price:         decimal.RequireFromString("8.50"),
		ProductSizeID: sizeID(3),
		Selections: map[string]models.ChosenOption{
			"Bread":  {Value: "Rye", Cost: decimal.Zero},
			"Cheese": {Value: "Swiss", Cost: decimal.RequireFromString("0.50")},
		},
		AddOns: map[string][]models.ChosenOption{
			"Extras-Large": {
				{Value: "Bacon", Cost: decimal.NewFromInt(1)},
				{Value: "Avocado", Cost: decimal.NewFromInt(2)},
			},
		},
	}
}

func TestCompositeKey(t *testing.T) {
	t.Run("Success - Order Of Choices Does Not Matter", func(t *testing.T) {
		// Arrange
		a := sandwich()
		b := sandwich()
		b.AddOns = map[string][]models.ChosenOption{
			"Extras-Large": {
				{Value: "Avocado", Cost: decimal.NewFromInt(2)},
				{Value: "Bacon", Cost: decimal.NewFromInt(1)},
			},
		}

		// Act & Assert
		assert.True(t, cart.SameConfiguration(a, b))
	})

	t.Run("Success - Quantity And Name Are Not Part Of The Key", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.Quantity = 4
		b.ProductName = "Renamed"

		assert.Equal(t, cart.CompositeKey(a), cart.CompositeKey(b))
	})

	t.Run("Success - Equal Prices With Different Scale Match", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.Price = decimal.RequireFromString("8.5")

		assert.True(t, cart.SameConfiguration(a, b))
	})

	t.Run("Success - Add-On Category Suffix Is Dropped", func(t *testing.T) {
		item := sandwich()

		key := cart.CompositeKey(item)

		assert.Contains(t, key, `"Extras: Avocado"`)
		assert.NotContains(t, key, "Extras-Large")
	})

	t.Run("Success - Empty Add-On Values Are Skipped", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.AddOns["Extras-Large"] = append(b.AddOns["Extras-Large"], models.ChosenOption{Value: ""})

		assert.True(t, cart.SameConfiguration(a, b))
	})

	t.Run("Success - Zero Size Is No Size", func(t *testing.T) {
		a := sandwich()
		a.ProductSizeID = nil
		b := sandwich()
		b.ProductSizeID = sizeID(0)

		assert.True(t, cart.SameConfiguration(a, b))
		assert.Contains(t, cart.CompositeKey(a), `"product_size_id":null`)
	})

	t.Run("Success - Empty Choice Lists Are Omitted", func(t *testing.T) {
		item := models.CartLineItem{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(3)}

		assert.Equal(t, `{"productId":1,"price":3,"product_size_id":null}`, cart.CompositeKey(item))
	})

	t.Run("Failure - Different Selection Differs", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.Selections = map[string]models.ChosenOption{
			"Bread":  {Value: "Sourdough"},
			"Cheese": {Value: "Swiss", Cost: decimal.RequireFromString("0.50")},
		}

		assert.False(t, cart.SameConfiguration(a, b))
	})

	t.Run("Failure - Different Price Differs", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.Price = decimal.NewFromInt(9)

		assert.False(t, cart.SameConfiguration(a, b))
	})

	t.Run("Failure - Different Size Differs", func(t *testing.T) {
		a := sandwich()
		b := sandwich()
		b.ProductSizeID = sizeID(4)

		assert.False(t, cart.SameConfiguration(a, b))
	})
}

func TestFindMatch(t *testing.T) {
	plain := models.CartLineItem{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(3)}
	items := []models.CartLineItem{plain, sandwich()}

	assert.Equal(t, 1, cart.FindMatch(items, sandwich()))
	assert.Equal(t, 0, cart.FindMatch(items, plain))

	other := sandwich()
	other.ProductID = 99
	assert.Equal(t, -1, cart.FindMatch(items, other))
	assert.Equal(t, -1, cart.FindMatch(nil, plain))
}
