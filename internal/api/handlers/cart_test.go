package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/bakery-storefront/internal/errors"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithBread() *models.CartResponse {
	return &models.CartResponse{
		Items: []models.CartLineItem{
			{ProductID: 1, ProductName: "Sourdough", Quantity: 2, Price: decimal.NewFromInt(8), TypeID: 1},
		},
		Mode:     &models.CartMode{Type: models.CartModeRegular},
		Count:    2,
		Subtotal: decimal.NewFromInt(16),
		Tax:      decimal.Zero,
		Total:    decimal.NewFromInt(16),
	}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - Cart Returned", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("GetCart", mock.Anything, sessionID).Return(cartWithBread(), nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodGet, "/api/v1/cart", nil, nil)

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.CartResponse
		decodeData(t, decodeEnvelope(t, rr), &got)
		assert.Equal(t, 2, got.Count)
		assert.True(t, decimal.NewFromInt(16).Equal(got.Total))
		assert.Equal(t, models.CartModeRegular, got.Mode.Type)
	})

	t.Run("Failure - No Session", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutSession(http.MethodGet, "/api/v1/cart", nil, nil)

		// Act
		handler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInternal, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		reqBody := models.AddItemRequest{ProductID: 1, Quantity: 2}
		carts.On("AddItem", mock.Anything, sessionID, mock.MatchedBy(func(req *models.AddItemRequest) bool {
			return req.ProductID == 1 && req.Quantity == 2
		})).Return(cartWithBread(), nil, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", jsonBody(t, reqBody), nil)

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, decodeEnvelope(t, rr).Success)
	})

	t.Run("Failure - Mode Conflict Carries Prompt", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		reqBody := models.AddItemRequest{ProductID: 40, Quantity: 6, SpecialID: 9}
		conflict := &models.ModeConflict{
			Message:   "Your cart has regular menu items. Switch to the Easter special?",
			Current:   models.CartMode{Type: models.CartModeRegular},
			Requested: models.CartMode{Type: models.CartModeSpecial, SpecialID: 9, SpecialName: "Easter"},
			Item:      models.CartLineItem{ProductID: 40, ProductName: "Hot Cross Buns", Quantity: 6},
		}
		carts.On("AddItem", mock.Anything, sessionID, mock.Anything).
			Return(nil, conflict, appErrors.ModeConflictError(conflict.Message)).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", jsonBody(t, reqBody), nil)

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)

		env := decodeEnvelope(t, rr)
		assert.False(t, env.Success)
		assert.Equal(t, appErrors.ErrCodeModeConflict, env.Error.Code)

		var got models.ModeConflict
		decodeData(t, env, &got)
		assert.Equal(t, int64(9), got.Requested.SpecialID)
		assert.Equal(t, int64(40), got.Item.ProductID)
	})

	t.Run("Failure - Missing Configuration", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("AddItem", mock.Anything, sessionID, mock.Anything).
			Return(nil, nil, appErrors.ValidationError("Please select a flavor")).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", jsonBody(t, models.AddItemRequest{ProductID: 12, Quantity: 1}), nil)

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		env := decodeEnvelope(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		assert.Equal(t, "Please select a flavor", env.Error.Message)
		assert.Empty(t, env.Data)
	})

	t.Run("Failure - Quantity Out Of Range", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", jsonBody(t, models.AddItemRequest{ProductID: 1, Quantity: 0}), nil)

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		env := decodeEnvelope(t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		require.NotEmpty(t, env.Error.Details)
		carts.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Malformed Body", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/items", jsonBody(t, `{"productId":`), nil)

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Quantity Updated", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("UpdateQuantity", mock.Anything, sessionID, 0, 3).Return(cartWithBread(), nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/0", jsonBody(t, models.UpdateQuantityRequest{Quantity: 3}), map[string]string{"index": "0"})

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Zero Quantity Passed Through", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("UpdateQuantity", mock.Anything, sessionID, 1, 0).Return(&models.CartResponse{}, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/1", jsonBody(t, models.UpdateQuantityRequest{Quantity: 0}), map[string]string{"index": "1"})

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Negative Quantity Passed Through", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("UpdateQuantity", mock.Anything, sessionID, 0, -2).Return(&models.CartResponse{}, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/0", jsonBody(t, `{"quantity":-2}`), map[string]string{"index": "0"})

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Invalid Index", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/x", jsonBody(t, models.UpdateQuantityRequest{Quantity: 1}), map[string]string{"index": "x"})

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid item index", decodeEnvelope(t, rr).Error.Message)
	})

	t.Run("Failure - Index Past End", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("UpdateQuantity", mock.Anything, sessionID, 5, 1).
			Return(nil, appErrors.ValidationError("No cart item at that position")).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPatch, "/api/v1/cart/items/5", jsonBody(t, models.UpdateQuantityRequest{Quantity: 1}), map[string]string{"index": "5"})

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestRemoveAndClear(t *testing.T) {
	t.Run("Success - Item Removed", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("RemoveItem", mock.Anything, sessionID, 0).Return(&models.CartResponse{Items: []models.CartLineItem{}}, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodDelete, "/api/v1/cart/items/0", nil, map[string]string{"index": "0"})

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Success - Cart Cleared", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("ClearCart", mock.Anything, sessionID).Return(&models.CartResponse{Items: []models.CartLineItem{}}, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodDelete, "/api/v1/cart", nil, nil)

		// Act
		handler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.CartResponse
		decodeData(t, decodeEnvelope(t, rr), &got)
		assert.Empty(t, got.Items)
		assert.Nil(t, got.Mode)
	})

	t.Run("Failure - Storage Error", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("ClearCart", mock.Anything, sessionID).Return(nil, appErrors.DatabaseError("Failed to save cart")).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodDelete, "/api/v1/cart", nil, nil)

		// Act
		handler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestModeSwitching(t *testing.T) {
	t.Run("Success - Switch To Special", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		mode := models.CartMode{Type: models.CartModeSpecial, SpecialID: 9}
		carts.On("SwitchMode", mock.Anything, sessionID, mode).
			Return(&models.CartResponse{Items: []models.CartLineItem{}, Mode: &models.CartMode{Type: models.CartModeSpecial, SpecialID: 9, SpecialName: "Easter"}}, nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPut, "/api/v1/cart/mode", jsonBody(t, models.SwitchModeRequest{Mode: mode}), nil)

		// Act
		handler.SwitchMode().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.CartResponse
		decodeData(t, decodeEnvelope(t, rr), &got)
		assert.Equal(t, "Easter", got.Mode.SpecialName)
	})

	t.Run("Failure - Special Mode Without ID", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPut, "/api/v1/cart/mode", jsonBody(t, `{"mode":{"type":"special"}}`), nil)

		// Act
		handler.SwitchMode().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decodeEnvelope(t, rr).Error.Code)
	})

	t.Run("Success - Confirm Pending Switch", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("ConfirmSwitch", mock.Anything, sessionID).Return(cartWithBread(), nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/switch", nil, nil)

		// Act
		handler.ConfirmSwitch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Nothing To Confirm", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("ConfirmSwitch", mock.Anything, sessionID).Return(nil, appErrors.NotFoundError("No pending cart switch")).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodPost, "/api/v1/cart/switch", nil, nil)

		// Act
		handler.ConfirmSwitch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success - Cancel Pending Switch", func(t *testing.T) {
		// Arrange
		carts := mocks.NewMockCartService(t)
		handler := handlers.NewCartHandler(carts)

		carts.On("CancelSwitch", mock.Anything, sessionID).Return(nil).Once()

		rr := httptest.NewRecorder()
		req := sessionRequest(http.MethodDelete, "/api/v1/cart/switch", nil, nil)

		// Act
		handler.CancelSwitch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
