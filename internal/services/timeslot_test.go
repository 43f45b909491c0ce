package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/cart"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bakery-storefront/internal/services"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/services/mocks"
	apiMocks "github.com/aaravmahajanofficial/bakery-storefront/pkg/bakeryapi/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type timeslotFixture struct {
	api     *apiMocks.MockClient
	catalog *mocks.MockCatalogService
	carts   *mocks.MockCartService
	service service.TimeslotService
}

func setupTimeslotTest(t *testing.T, items ...models.CartLineItem) *timeslotFixture {
	t.Helper()

	api := apiMocks.NewMockClient(t)
	catalog := mocks.NewMockCatalogService(t)
	carts := mocks.NewMockCartService(t)

	carts.On("View", mock.Anything, sessionID).Return(checkout.CartView{Items: items, Summary: cart.Summarize(items, cart.TaxExemption{})}, nil).Maybe()
	catalog.On("TypeIDs", mock.Anything).Return(service.TypeIDs{Bread: breadTypeID, Special: specialTypeID, Catering: cateringTypeID}, nil).Maybe()

	return &timeslotFixture{
		api:     api,
		catalog: catalog,
		carts:   carts,
		service: service.NewTimeslotService(api, catalog, carts, 6, time.UTC),
	}
}

func lineItem(p models.Product, qty int) models.CartLineItem {
	return models.CartLineItem{ProductID: p.ID, ProductName: p.Title, Quantity: qty, Price: p.Price, TypeID: p.TypeID}
}

var regularSlots = map[string]models.TimeslotAvailability{
	"2026-03-21T15:00:00.000Z": {AmountLeft: 2, Active: true},
	"2026-03-20T16:00:00.000Z": {AmountLeft: 4, Active: true},
	"2026-03-20T15:00:00.000Z": {AmountLeft: 1, Active: true},
	"2026-03-20T17:00:00.000Z": {AmountLeft: 0, Active: false},
}

var easterSlots = map[string]models.TimeslotAvailability{
	"2026-04-04T14:00:00.000Z": {AmountLeft: 10, Active: true},
}

func TestTimeslotsAvailable(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success - Regular Cart Grouped By Day", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t, lineItem(sourdough(), 1))
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(regularSlots, nil).Once()
		f.catalog.On("ListSpecials", mock.Anything).Return([]models.Special{easterSpecial(now, now.Add(time.Hour))}, nil).Once()

		// Act
		resp, err := f.service.Available(ctx, sessionID)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.SpecialOnly)
		require.Len(t, resp.Groups, 2)
		assert.Equal(t, "March 20, 2026", resp.Groups[0].Date)
		require.Len(t, resp.Groups[0].Slots, 2)
		assert.Equal(t, "2026-03-20T15:00:00.000Z", resp.Groups[0].Slots[0].Timestamp)
		assert.Equal(t, "2026-03-20T16:00:00.000Z", resp.Groups[0].Slots[1].Timestamp)
		assert.Equal(t, "March 21, 2026", resp.Groups[1].Date)
	})

	t.Run("Success - Special Items Only Get Special Times", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t, lineItem(hotCrossBuns(), 6))
		other := models.Special{ID: 11, Name: "Thanksgiving", Products: []models.Product{birthdayCake()}}
		f.catalog.On("ListSpecials", mock.Anything).Return([]models.Special{other, easterSpecial(now, now.Add(time.Hour))}, nil).Once()
		f.api.On("SpecialTimeslots", mock.Anything, int64(9)).Return(easterSlots, nil).Once()

		// Act
		resp, err := f.service.Available(ctx, sessionID)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.SpecialOnly)
		require.Len(t, resp.Groups, 1)
		assert.Equal(t, "April 4, 2026", resp.Groups[0].Date)
		f.api.AssertNotCalled(t, "RegularTimeslots", mock.Anything, mock.Anything)
	})

	t.Run("Success - Regular Items All In One Special Add Its Times", func(t *testing.T) {
		// Arrange
		cake := birthdayCake()
		f := setupTimeslotTest(t, lineItem(cake, 1))
		special := models.Special{ID: 11, Name: "Thanksgiving", Products: []models.Product{cake}}
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(regularSlots, nil).Once()
		f.catalog.On("ListSpecials", mock.Anything).Return([]models.Special{special}, nil).Once()
		f.api.On("SpecialTimeslots", mock.Anything, int64(11)).Return(easterSlots, nil).Once()

		// Act
		resp, err := f.service.Available(ctx, sessionID)

		// Assert
		require.NoError(t, err)
		require.Len(t, resp.Groups, 3)
		assert.Equal(t, "April 4, 2026", resp.Groups[2].Date)
	})

	t.Run("Success - Empty Cart Gets Regular Times", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t)
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(map[string]models.TimeslotAvailability{}, nil).Once()

		// Act
		resp, err := f.service.Available(ctx, sessionID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, resp.Groups)
	})

	t.Run("Failure - Backend Error", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t, lineItem(sourdough(), 1))
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(nil, errors.New("502 bad gateway")).Once()

		// Act
		resp, err := f.service.Available(ctx, sessionID)

		// Assert
		assert.Nil(t, resp)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
	})
}

func TestTimeslotLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Offered Slot", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t, lineItem(sourdough(), 1))
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(regularSlots, nil).Once()
		f.catalog.On("ListSpecials", mock.Anything).Return([]models.Special{}, nil).Once()

		// Act
		slot, err := f.service.Lookup(ctx, sessionID, "2026-03-21T15:00:00.000Z")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, slot.AmountLeft)
		assert.True(t, time.Date(2026, 3, 21, 15, 0, 0, 0, time.UTC).Equal(slot.Time))
	})

	t.Run("Failure - Inactive Slot Is Not Offered", func(t *testing.T) {
		// Arrange
		f := setupTimeslotTest(t, models.CartLineItem{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(8), TypeID: breadTypeID})
		f.api.On("RegularTimeslots", mock.Anything, 6).Return(regularSlots, nil).Once()
		f.catalog.On("ListSpecials", mock.Anything).Return([]models.Special{}, nil).Once()

		// Act
		slot, err := f.service.Lookup(ctx, sessionID, "2026-03-20T17:00:00.000Z")

		// Assert
		assert.Nil(t, slot)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}
