package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
)

var (
	// ErrCorruptSnapshot is returned by a Persister whose stored payload
	// cannot be decoded.
	ErrCorruptSnapshot = errors.New("cart: corrupt snapshot")
	ErrNoSuchItem      = errors.New("cart: no item at index")
	ErrInvalidItem     = errors.New("cart: invalid line item")
	ErrNoMode          = errors.New("cart: mode is required")
)

// Snapshot is the persisted form of a cart.
type Snapshot struct {
	Items []models.CartLineItem `json:"items"`
	Mode  *models.CartMode      `json:"mode,omitempty"`
}

// Persister stores one cart. Load returns nil, nil when nothing is stored.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Clear(ctx context.Context) error
}

// Store is a cart bound to a persister. Every mutation writes the full
// snapshot before it is applied in memory, so a failed save leaves the
// store as it was. A Store is not safe for concurrent use.
type Store struct {
	persister Persister
	items     []models.CartLineItem
	mode      Mode
	discarded bool
}

// Open hydrates a store. Missing data yields an empty cart. A corrupt
// snapshot is cleared and also yields an empty cart; Discarded reports it.
func Open(ctx context.Context, p Persister) (*Store, error) {
	s := &Store{persister: p}

	snap, err := p.Load(ctx)
	if errors.Is(err, ErrCorruptSnapshot) {
		return s.discard(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	if snap == nil {
		return s, nil
	}

	for _, item := range snap.Items {
		if item.Quantity < 1 || item.Price.IsNegative() {
			return s.discard(ctx)
		}
	}

	if len(snap.Items) == 0 {
		return s, nil
	}

	mode, err := FromWire(snap.Mode)
	if err != nil {
		return s.discard(ctx)
	}

	s.items = snap.Items
	s.mode = mode

	return s, nil
}

func (s *Store) discard(ctx context.Context) (*Store, error) {
	s.discarded = true

	if err := s.persister.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear corrupt cart: %w", err)
	}

	return s, nil
}

// Discarded reports whether Open threw away an unreadable snapshot.
func (s *Store) Discarded() bool {
	return s.discarded
}

func (s *Store) Items() []models.CartLineItem {
	return slices.Clone(s.items)
}

// Mode is nil while the cart is unbound.
func (s *Store) Mode() Mode {
	return s.mode
}

func (s *Store) Count() int {
	return Count(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) Summary(exemption TaxExemption) Summary {
	return Summarize(s.items, exemption)
}

// AddItem adds item under mode. It returns false without touching the cart
// when the cart holds items bound to a different mode. An item with the same
// composite key as an existing line is merged into it: quantities are summed
// and the existing line's price and configuration are kept.
func (s *Store) AddItem(ctx context.Context, item models.CartLineItem, mode Mode) (bool, error) {
	if mode == nil {
		return false, ErrNoMode
	}

	if item.Quantity < 1 || item.Price.IsNegative() {
		return false, ErrInvalidItem
	}

	if len(s.items) > 0 && s.mode != nil && !ModesMatch(s.mode, mode) {
		return false, nil
	}

	next := slices.Clone(s.items)
	nextMode := s.mode

	if len(next) == 0 || nextMode == nil {
		nextMode = mode
	}

	if i := FindMatch(next, item); i >= 0 {
		next[i].Quantity += item.Quantity
	} else {
		next = append(next, item)
	}

	if err := s.commit(ctx, next, nextMode); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Store) RemoveItem(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrNoSuchItem, index)
	}

	next := slices.Delete(slices.Clone(s.items), index, index+1)
	mode := s.mode

	if len(next) == 0 {
		mode = nil
	}

	return s.commit(ctx, next, mode)
}

// UpdateQuantity sets the quantity of one line; zero or less removes it.
func (s *Store) UpdateQuantity(ctx context.Context, index, quantity int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrNoSuchItem, index)
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, index)
	}

	next := slices.Clone(s.items)
	next[index].Quantity = quantity

	return s.commit(ctx, next, s.mode)
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.persister.Clear(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	s.items = nil
	s.mode = nil

	return nil
}

// SwitchMode empties the cart and binds it to mode in a single write,
// optionally seeding it with item.
func (s *Store) SwitchMode(ctx context.Context, mode Mode, item *models.CartLineItem) error {
	if mode == nil {
		return ErrNoMode
	}

	var next []models.CartLineItem

	if item != nil {
		if item.Quantity < 1 || item.Price.IsNegative() {
			return ErrInvalidItem
		}

		next = []models.CartLineItem{*item}
	}

	return s.commit(ctx, next, mode)
}

func (s *Store) commit(ctx context.Context, items []models.CartLineItem, mode Mode) error {
	snap := Snapshot{Items: items, Mode: ToWire(mode)}
	if snap.Items == nil {
		snap.Items = []models.CartLineItem{}
	}

	if err := s.persister.Save(ctx, snap); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	s.items = items
	s.mode = mode

	return nil
}
