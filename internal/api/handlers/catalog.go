package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/bakery-storefront/internal/api/middleware"
	service "github.com/aaravmahajanofficial/bakery-storefront/internal/services"
	"github.com/aaravmahajanofficial/bakery-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GET /api/v1/menu
func (h *CatalogHandler) GetMenu() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		menu, err := h.catalogService.GetMenu(r.Context())
		if err != nil {
			logger.Error("Failed to load menu", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, menu)
	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathInt64(w, r, "id", "Invalid product ID")
		if !ok {
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) ListSpecials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		specials, err := h.catalogService.ListSpecials(r.Context())
		if err != nil {
			logger.Error("Failed to load specials", slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, specials)
	}
}

func (h *CatalogHandler) GetSpecial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, ok := pathInt64(w, r, "id", "Invalid special ID")
		if !ok {
			return
		}

		special, err := h.catalogService.GetSpecial(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to fetch special", slog.Int64("specialId", id), slog.Any("error", err))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, special)
	}
}
