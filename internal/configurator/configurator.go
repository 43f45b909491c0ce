// Package configurator turns a catalog product plus the shopper's choices
// into a cart line item.
package configurator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/shopspring/decimal"
)

// options of products without sizes are filed under this label
const defaultSizeLabel = "size"

var (
	ErrUnknownSize     = errors.New("configurator: unknown size")
	ErrUnknownCategory = errors.New("configurator: unknown category")
	ErrUnknownOption   = errors.New("configurator: unknown option")
)

// MissingSelectionError names the first required category left unchosen.
type MissingSelectionError struct {
	Category string
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("Please select a %s", e.Category)
}

type Configuration struct {
	product    models.Product
	size       *models.ProductSize
	selections map[string]models.SelectionOption
	addOns     map[string][]models.SelectionOption
	quantity   int
}

// Open starts configuring product with its first size selected, nothing
// chosen and a quantity of one.
func Open(product models.Product) *Configuration {
	c := &Configuration{
		product:    product,
		selections: map[string]models.SelectionOption{},
		addOns:     map[string][]models.SelectionOption{},
		quantity:   1,
	}

	if len(product.Sizes) > 0 {
		size := product.Sizes[0]
		c.size = &size
	}

	return c
}

func (c *Configuration) Product() models.Product {
	return c.product
}

func (c *Configuration) Size() *models.ProductSize {
	return c.size
}

func (c *Configuration) Quantity() int {
	return c.quantity
}

// SelectSize switches size. Choices are keyed per size, so all selections
// and add-ons are dropped.
func (c *Configuration) SelectSize(sizeID int64) error {
	for i := range c.product.Sizes {
		if c.product.Sizes[i].ID == sizeID {
			size := c.product.Sizes[i]
			c.size = &size
			clear(c.selections)
			clear(c.addOns)

			return nil
		}
	}

	return fmt.Errorf("%w: %d", ErrUnknownSize, sizeID)
}

func (c *Configuration) sizeLabel() string {
	if c.size != nil && c.size.Size != "" {
		return c.size.Size
	}

	return defaultSizeLabel
}

func forSize(values models.OptionsBySize, label string) map[string][]models.SelectionOption {
	out := map[string][]models.SelectionOption{}

	for category, bySize := range values {
		if opts, ok := bySize[label]; ok {
			out[category] = opts
		}
	}

	return out
}

// AvailableSelections lists the single-choice categories for the current size.
func (c *Configuration) AvailableSelections() map[string][]models.SelectionOption {
	return forSize(c.product.SelectionValues, c.sizeLabel())
}

// AvailableAddOns lists the multi-choice categories for the current size.
func (c *Configuration) AvailableAddOns() map[string][]models.SelectionOption {
	return forSize(c.product.AddOnValues, c.sizeLabel())
}

func findOption(available map[string][]models.SelectionOption, category string, optionID int64) (models.SelectionOption, error) {
	opts, ok := available[category]
	if !ok {
		return models.SelectionOption{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	for _, o := range opts {
		if o.ID == optionID {
			return o, nil
		}
	}

	return models.SelectionOption{}, fmt.Errorf("%w: %d in %q", ErrUnknownOption, optionID, category)
}

// Choose sets the single value of a selection category, replacing any
// earlier choice.
func (c *Configuration) Choose(category string, optionID int64) error {
	opt, err := findOption(c.AvailableSelections(), category, optionID)
	if err != nil {
		return err
	}

	c.selections[category] = opt

	return nil
}

func (c *Configuration) ToggleAddOn(category string, optionID int64, on bool) error {
	opt, err := findOption(c.AvailableAddOns(), category, optionID)
	if err != nil {
		return err
	}

	current := c.addOns[category]
	idx := slices.IndexFunc(current, func(o models.SelectionOption) bool { return o.ID == opt.ID })

	switch {
	case on && idx < 0:
		c.addOns[category] = append(current, opt)
	case !on && idx >= 0:
		c.addOns[category] = slices.Delete(current, idx, idx+1)
		if len(c.addOns[category]) == 0 {
			delete(c.addOns, category)
		}
	}

	return nil
}

// SetQuantity clamps n to at least one.
func (c *Configuration) SetQuantity(n int) {
	c.quantity = max(n, 1)
}

// Validate requires one choice in every selection category of the current
// size. Add-ons are optional.
func (c *Configuration) Validate() error {
	categories := slices.Collect(maps.Keys(c.AvailableSelections()))
	sort.Strings(categories)

	for _, category := range categories {
		if _, ok := c.selections[category]; !ok {
			return &MissingSelectionError{Category: category}
		}
	}

	return nil
}

// BasePrice is the per-unit price before surcharges. A size price replaces
// the product price; promotional prices win whenever they are present.
func (c *Configuration) BasePrice() decimal.Decimal {
	if c.size != nil {
		return c.size.Price()
	}

	return c.product.BasePrice()
}

// UnitPrice is the base price plus every chosen surcharge.
func (c *Configuration) UnitPrice() decimal.Decimal {
	price := c.BasePrice()

	for _, s := range c.selections {
		price = price.Add(s.Cost)
	}

	for _, addOns := range c.addOns {
		for _, a := range addOns {
			price = price.Add(a.Cost)
		}
	}

	return price
}

func (c *Configuration) LineTotal() decimal.Decimal {
	return c.UnitPrice().Mul(decimal.NewFromInt(int64(c.quantity)))
}

// LineItem validates the configuration and builds the cart line. The stored
// price excludes surcharges, which travel with the selections and add-ons,
// so the line's effective unit cost times its quantity equals LineTotal.
func (c *Configuration) LineItem() (models.CartLineItem, error) {
	if err := c.Validate(); err != nil {
		return models.CartLineItem{}, err
	}

	selections := make(map[string]models.ChosenOption, len(c.selections))
	for category, s := range c.selections {
		selections[category] = models.ChosenOption{Value: s.Value, Cost: s.Cost}
	}

	addOns := make(map[string][]models.ChosenOption, len(c.addOns))
	for category, chosen := range c.addOns {
		for _, a := range chosen {
			addOns[category] = append(addOns[category], models.ChosenOption{Value: a.Value, Cost: a.Cost})
		}
	}

	product := c.product

	item := models.CartLineItem{
		ProductID:   c.product.ID,
		ProductName: c.product.Title,
		Quantity:    c.quantity,
		Price:       c.BasePrice(),
		Selections:  selections,
		AddOns:      addOns,
		TypeID:      c.product.TypeID,
		Product:     &product,
	}

	if c.size != nil {
		id := c.size.ID
		item.ProductSizeID = &id
	}

	return item, nil
}

// Apply replays an add-to-cart request against a fresh configuration of
// product. Products without options go straight to a line item.
func Apply(product models.Product, req *models.AddItemRequest) (models.CartLineItem, error) {
	c := Open(product)

	if req.SizeID != nil {
		if err := c.SelectSize(*req.SizeID); err != nil {
			return models.CartLineItem{}, err
		}
	}

	for category, optionID := range req.Selections {
		if err := c.Choose(category, optionID); err != nil {
			return models.CartLineItem{}, err
		}
	}

	for category, ids := range req.AddOns {
		for _, id := range ids {
			if err := c.ToggleAddOn(category, id, true); err != nil {
				return models.CartLineItem{}, err
			}
		}
	}

	c.SetQuantity(req.Quantity)

	return c.LineItem()
}
