package models

import (
	"github.com/shopspring/decimal"
)

const (
	CartModeRegular = "regular"
	CartModeSpecial = "special"
)

// ChosenOption is a selection or add-on as it was picked, value and cost
// copied out of the product so later catalog changes don't move the price.
type ChosenOption struct {
	Value string          `json:"value"`
	Cost  decimal.Decimal `json:"cost"`
}

type CartLineItem struct {
	ProductID     int64                     `json:"productId"`
	ProductName   string                    `json:"product_name"`
	Quantity      int                       `json:"quantity"`
	Price         decimal.Decimal           `json:"price"`
	ProductSizeID *int64                    `json:"product_size_id"`
	Selections    map[string]ChosenOption   `json:"selections"`
	AddOns        map[string][]ChosenOption `json:"add_ons"`
	TypeID        int64                     `json:"typeId"`
	Product       *Product                  `json:"product,omitempty"`
}

// CartMode is the wire form of a cart mode.
type CartMode struct {
	Type        string `json:"type"                  validate:"required,oneof=regular special"`
	SpecialID   int64  `json:"specialId,omitempty"   validate:"required_if=Type special"`
	SpecialName string `json:"specialName,omitempty"`
}

type AddItemRequest struct {
	ProductID  int64              `json:"productId"            validate:"required,gt=0"`
	SizeID     *int64             `json:"sizeId,omitempty"`
	Selections map[string]int64   `json:"selections,omitempty"`
	AddOns     map[string][]int64 `json:"addOns,omitempty"`
	Quantity   int                `json:"quantity"             validate:"required,min=1,max=100"`
	SpecialID  int64              `json:"specialId,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"max=100"`
}

type SwitchModeRequest struct {
	Mode CartMode `json:"mode" validate:"required"`
}

type CartResponse struct {
	Items    []CartLineItem  `json:"items"`
	Mode     *CartMode       `json:"mode"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ModeConflict describes an add that was rejected because the cart holds
// items from a different mode. The item is parked until the shopper decides.
type ModeConflict struct {
	Message   string       `json:"message"`
	Current   CartMode     `json:"current"`
	Requested CartMode     `json:"requested"`
	Item      CartLineItem `json:"item"`
}
