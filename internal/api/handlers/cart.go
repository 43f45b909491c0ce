package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/models"
	service "github.com/aaravmahajanofficial/bakery-storefront/internal/services"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to load cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// POST /api/v1/cart/items
//
// A mode conflict answers 409 with the conflict in data so the client can
// prompt and then confirm or cancel the switch.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, conflict, err := h.cartService.AddItem(r.Context(), sid, &req)
		if err != nil {
			if conflict != nil {
				logger.Info("Cart mode conflict", slog.String("current", conflict.Current.Type), slog.String("requested", conflict.Requested.Type))
				response.ErrorWithData(w, err, conflict)

				return
			}

			logger.Warn("Failed to add item", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", req.ProductID), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusCreated, cart)
	}
}

// PATCH /api/v1/cart/items/{index}; a quantity of zero removes the line.
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		index, ok := pathIndex(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sid, index, req.Quantity)
		if err != nil {
			logger.Warn("Failed to update quantity", slog.Int("index", index), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		index, ok := pathIndex(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sid, index)
		if err != nil {
			logger.Warn("Failed to remove item", slog.Int("index", index), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ClearCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// PUT /api/v1/cart/mode
func (h *CartHandler) SwitchMode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SwitchModeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.SwitchMode(r.Context(), sid, req.Mode)
		if err != nil {
			logger.Warn("Failed to switch cart mode", slog.String("mode", req.Mode.Type), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Cart mode switched", slog.String("mode", req.Mode.Type), slog.Int64("specialId", req.Mode.SpecialID))
		response.Success(w, http.StatusOK, cart)
	}
}

// POST /api/v1/cart/switch
func (h *CartHandler) ConfirmSwitch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.ConfirmSwitch(r.Context(), sid)
		if err != nil {
			logger.Warn("Failed to confirm mode switch", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// DELETE /api/v1/cart/switch
func (h *CartHandler) CancelSwitch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		if err := h.cartService.CancelSwitch(r.Context(), sid); err != nil {
			logger.Error("Failed to cancel mode switch", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
