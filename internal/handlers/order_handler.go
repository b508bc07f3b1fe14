package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOrder handles POST /orders
// Returns 201 with the generated order ID, or 400 on validation failure.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUserID),
			errors.Is(err, service.ErrEmptyOrder),
			errors.Is(err, service.ErrInvalidQuantity):
			h.logger.Warn("invalid order request", "error", err)
			WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		default:
			h.logger.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	h.logger.Info("order created", "order_id", id, "items_count", len(req.Items))
	WriteJSON(w, http.StatusCreated, IDResponse{ID: id}, h.logger)
}

// ListUserOrders handles GET /orders/{userId}
// Returns the user's orders with items resolved against the product store
// and per-order totals. A user with no orders gets an empty data array.
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		h.logger.Warn("user ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid user ID", h.logger)
		return
	}

	limit, offset, err := parsePageParams(r)
	if err != nil {
		h.logger.Warn("invalid pagination parameters", "error", err)
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	resp, err := h.service.ListUserOrders(r.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("failed to list orders", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.logger)
}
