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

type NotificationHandler struct {
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator.New(),
	}
}

func (h *NotificationHandler) Unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.UnsubscribeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.notificationService.Unsubscribe(r.Context(), &req); err != nil {
			logger.Error("Failed to unsubscribe", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		logger.Info("Email unsubscribed")
		response.Success(w, http.StatusOK, map[string]string{"message": "You have been unsubscribed"})
	}
}
