package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePersister keeps the snapshot as JSON so tests see exactly what a real
// backend would round-trip.
type fakePersister struct {
	data    []byte
	saves   int
	clears  int
	saveErr error
}

func (p *fakePersister) Load(_ context.Context) (*cart.Snapshot, error) {
	if p.data == nil {
		return nil, nil
	}

	var snap cart.Snapshot
	if err := json.Unmarshal(p.data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", cart.ErrCorruptSnapshot, err)
	}

	return &snap, nil
}

func (p *fakePersister) Save(_ context.Context, snap cart.Snapshot) error {
	if p.saveErr != nil {
		return p.saveErr
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	p.data = b
	p.saves++

	return nil
}

func (p *fakePersister) Clear(_ context.Context) error {
	p.data = nil
	p.clears++

	return nil
}

func openStore(t *testing.T, p *fakePersister) *cart.Store {
	t.Helper()

	s, err := cart.Open(t.Context(), p)
	require.NoError(t, err)

	return s
}

func cookie(id int64) models.CartLineItem {
	return models.CartLineItem{ProductID: id, ProductName: "Cookie", Quantity: 1, Price: dec("2.50"), TypeID: 5}
}

func TestStore_AddItem(t *testing.T) {
	easter := cart.Special{ID: 1, Name: "Easter"}

	t.Run("Success - Empty Cart Adopts Mode", func(t *testing.T) {
		// Arrange
		p := &fakePersister{}
		s := openStore(t, p)

		// Act
		ok, err := s.AddItem(t.Context(), cookie(1), easter)

		// Assert
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, easter, s.Mode())
		assert.Equal(t, 1, p.saves)
	})

	t.Run("Success - Same Configuration Merges", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		first := cookie(1)
		second := cookie(1)
		second.Quantity = 2

		_, err := s.AddItem(t.Context(), first, cart.Regular{})
		require.NoError(t, err)
		_, err = s.AddItem(t.Context(), second, cart.Regular{})
		require.NoError(t, err)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, 3, s.Count())
	})

	t.Run("Success - Merge Keeps Existing Line", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		first := cookie(1)
		first.ProductName = "Original"
		second := cookie(1)
		second.ProductName = "Incoming"

		_, _ = s.AddItem(t.Context(), first, cart.Regular{})
		_, _ = s.AddItem(t.Context(), second, cart.Regular{})

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Original", items[0].ProductName)
		assert.True(t, first.Price.Equal(items[0].Price))
	})

	t.Run("Success - Different Configuration Appends", func(t *testing.T) {
		s := openStore(t, &fakePersister{})

		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})
		_, _ = s.AddItem(t.Context(), cookie(2), cart.Regular{})

		assert.Equal(t, 2, s.Len())
	})

	t.Run("Failure - Mode Conflict Leaves Cart Untouched", func(t *testing.T) {
		p := &fakePersister{}
		s := openStore(t, p)
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})
		before := s.Items()
		saves := p.saves

		for _, m := range []cart.Mode{easter, cart.Special{ID: 2}} {
			ok, err := s.AddItem(t.Context(), cookie(3), m)

			require.NoError(t, err)
			assert.False(t, ok)
		}

		assert.Equal(t, before, s.Items())
		assert.Equal(t, cart.Regular{}, s.Mode())
		assert.Equal(t, saves, p.saves)
	})

	t.Run("Failure - Special To Other Special", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), easter)

		ok, err := s.AddItem(t.Context(), cookie(1), cart.Special{ID: 2})

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Failure - Save Error Keeps State", func(t *testing.T) {
		p := &fakePersister{saveErr: errors.New("redis down")}
		s := openStore(t, p)

		ok, err := s.AddItem(t.Context(), cookie(1), cart.Regular{})

		assert.Error(t, err)
		assert.False(t, ok)
		assert.Zero(t, s.Len())
		assert.Nil(t, s.Mode())
	})

	t.Run("Failure - Invalid Item", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		item := cookie(1)
		item.Quantity = 0

		_, err := s.AddItem(t.Context(), item, cart.Regular{})
		assert.ErrorIs(t, err, cart.ErrInvalidItem)

		_, err = s.AddItem(t.Context(), cookie(1), nil)
		assert.ErrorIs(t, err, cart.ErrNoMode)
	})
}

func TestStore_RemoveAndUpdate(t *testing.T) {
	t.Run("Success - Removing Last Item Clears Mode", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Special{ID: 1})

		err := s.RemoveItem(t.Context(), 0)

		require.NoError(t, err)
		assert.Zero(t, s.Len())
		assert.Nil(t, s.Mode())
	})

	t.Run("Success - Update Quantity", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})

		require.NoError(t, s.UpdateQuantity(t.Context(), 0, 5))

		assert.Equal(t, 5, s.Items()[0].Quantity)
	})

	t.Run("Success - Zero Or Negative Quantity Removes", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			s := openStore(t, &fakePersister{})
			_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})
			_, _ = s.AddItem(t.Context(), cookie(2), cart.Regular{})

			require.NoError(t, s.UpdateQuantity(t.Context(), 0, q))

			require.Equal(t, 1, s.Len())
			assert.Equal(t, int64(2), s.Items()[0].ProductID)
			assert.Equal(t, cart.Regular{}, s.Mode())
		}
	})

	t.Run("Failure - Index Out Of Range", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})

		assert.ErrorIs(t, s.RemoveItem(t.Context(), 1), cart.ErrNoSuchItem)
		assert.ErrorIs(t, s.RemoveItem(t.Context(), -1), cart.ErrNoSuchItem)
		assert.ErrorIs(t, s.UpdateQuantity(t.Context(), 4, 2), cart.ErrNoSuchItem)
		assert.Equal(t, 1, s.Len())
	})
}

func TestStore_SwitchModeAndClear(t *testing.T) {
	t.Run("Success - Switch Replaces Items And Mode", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})
		_, _ = s.AddItem(t.Context(), cookie(2), cart.Regular{})
		seed := cookie(9)

		err := s.SwitchMode(t.Context(), cart.Special{ID: 3, Name: "Fall"}, &seed)

		require.NoError(t, err)
		assert.Equal(t, []models.CartLineItem{seed}, s.Items())
		assert.Equal(t, cart.Special{ID: 3, Name: "Fall"}, s.Mode())
	})

	t.Run("Success - Switch Without Item Empties Cart", func(t *testing.T) {
		s := openStore(t, &fakePersister{})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})

		require.NoError(t, s.SwitchMode(t.Context(), cart.Special{ID: 3}, nil))

		assert.Zero(t, s.Len())
		assert.Equal(t, cart.Special{ID: 3}, s.Mode())
	})

	t.Run("Success - Clear", func(t *testing.T) {
		p := &fakePersister{}
		s := openStore(t, p)
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Regular{})

		require.NoError(t, s.Clear(t.Context()))

		assert.Zero(t, s.Len())
		assert.Nil(t, s.Mode())
		assert.Nil(t, p.data)
		assert.Equal(t, 1, p.clears)
	})
}

func TestOpen(t *testing.T) {
	t.Run("Success - Round Trip", func(t *testing.T) {
		// Arrange
		p := &fakePersister{}
		s := openStore(t, p)
		_, _ = s.AddItem(t.Context(), sandwich(), cart.Special{ID: 2, Name: "Picnic"})
		_, _ = s.AddItem(t.Context(), cookie(1), cart.Special{ID: 2, Name: "Picnic"})

		// Act
		reopened := openStore(t, p)

		// Assert
		require.Equal(t, s.Len(), reopened.Len())
		assert.Equal(t, s.Mode(), reopened.Mode())

		for i, item := range s.Items() {
			assert.Equal(t, cart.CompositeKey(item), cart.CompositeKey(reopened.Items()[i]))
			assert.Equal(t, item.Quantity, reopened.Items()[i].Quantity)
		}

		assert.False(t, reopened.Discarded())
	})

	t.Run("Success - Mode Without Items Rehydrates Unbound", func(t *testing.T) {
		p := &fakePersister{data: []byte(`{"items":[],"mode":{"type":"special","specialId":2}}`)}

		s := openStore(t, p)

		assert.Zero(t, s.Len())
		assert.Nil(t, s.Mode())
	})

	t.Run("Success - Nothing Stored", func(t *testing.T) {
		s := openStore(t, &fakePersister{})

		assert.Zero(t, s.Len())
		assert.Nil(t, s.Mode())
	})

	t.Run("Success - Corrupt Payload Is Discarded", func(t *testing.T) {
		p := &fakePersister{data: []byte(`{"items":"nope"`)}

		s := openStore(t, p)

		assert.Zero(t, s.Len())
		assert.True(t, s.Discarded())
		assert.Equal(t, 1, p.clears)
	})

	t.Run("Success - Invalid Stored Mode Is Discarded", func(t *testing.T) {
		p := &fakePersister{data: []byte(`{"items":[{"productId":1,"quantity":1,"price":2}],"mode":{"type":"bogus"}}`)}

		s := openStore(t, p)

		assert.Zero(t, s.Len())
		assert.True(t, s.Discarded())
	})
}
