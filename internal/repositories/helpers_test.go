package repository_test

import (
	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

func int64Ptr(v int64) *int64 { return &v }

func sampleSnapshot() cart.Snapshot {
	return cart.Snapshot{
		Items: []models.CartLineItem{
			{
				ProductID:     12,
				ProductName:   "Birthday Cake",
				Quantity:      2,
				Price:         decimal.RequireFromString("24.00"),
				ProductSizeID: int64Ptr(3),
				Selections: map[string]models.ChosenOption{
					"flavor": {Value: "Chocolate", Cost: decimal.Zero},
				},
				AddOns: map[string][]models.ChosenOption{
					"toppings-8 inch": {{Value: "Sprinkles", Cost: decimal.RequireFromString("1.50")}},
				},
				TypeID: 2,
			},
		},
		Mode: &models.CartMode{Type: models.CartModeRegular},
	}
}

func specialSnapshot() cart.Snapshot {
	return cart.Snapshot{
		Items: []models.CartLineItem{
			{ProductID: 40, ProductName: "Hot Cross Buns", Quantity: 6, Price: decimal.RequireFromString("2.25"), TypeID: 5},
		},
		Mode: &models.CartMode{Type: models.CartModeSpecial, SpecialID: 9, SpecialName: "Easter"},
	}
}
