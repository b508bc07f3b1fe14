package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// CreateProduct handles POST /products
// Returns 201 with the generated product ID, or 400 on validation failure.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyName),
			errors.Is(err, service.ErrNegativePrice),
			errors.Is(err, service.ErrNegativeQuantity):
			h.logger.Warn("invalid product request", "error", err)
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("failed to create product", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("product created", "product_id", id)
	WriteJSON(w, http.StatusCreated, IDResponse{ID: id}, h.logger)
}

// ListProducts handles GET /products
// Supports optional name (case-insensitive substring) and size (exact match)
// filters plus limit/offset pagination.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePageParams(r)
	if err != nil {
		h.logger.Warn("invalid pagination parameters", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	name := r.URL.Query().Get("name")
	size := r.URL.Query().Get("size")

	resp, err := h.service.ListProducts(r.Context(), name, size, limit, offset)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.logger)
}
