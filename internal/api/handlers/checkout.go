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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	timeslotService service.TimeslotService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService, timeslotService service.TimeslotService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		timeslotService: timeslotService,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) GetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := h.checkoutService.Config()
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cfg)
	}
}

// GET /api/v1/checkout begins checkout or resumes the stored session.
func (h *CheckoutHandler) Current() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		session, err := h.checkoutService.Current(r.Context(), sid)
		if err != nil {
			logger.Warn("Failed to start checkout", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *CheckoutHandler) ListTimeslots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		slots, err := h.timeslotService.Available(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to load timeslots", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, slots)
	}
}

func (h *CheckoutHandler) SelectTimeslot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SelectTimeslotRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		session, err := h.checkoutService.SelectTimeslot(r.Context(), sid, req.Timestamp)
		if err != nil {
			logger.Warn("Failed to select timeslot", slog.String("timestamp", req.Timestamp), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *CheckoutHandler) Back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		session, err := h.checkoutService.Back(r.Context(), sid)
		if err != nil {
			logger.Warn("Failed to go back in checkout", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.SubmitOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		session, err := h.checkoutService.Submit(r.Context(), sid, &req)
		if err != nil {
			logger.Warn("Order submission failed", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		if session.Confirmation != nil {
			logger.Info("Order confirmed", slog.Int64("orderId", session.Confirmation.OrderID))
		}

		response.Success(w, http.StatusOK, session)
	}
}

// DELETE /api/v1/checkout drops the stored session; the next GET starts over.
func (h *CheckoutHandler) Discard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		sid, ok := sessionID(w, r)
		if !ok {
			return
		}

		if err := h.checkoutService.Discard(r.Context(), sid); err != nil {
			logger.Error("Failed to discard checkout", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
