package memory

import (
	"context"
	"sync"

	"github.com/shopkart/catalog-service/internal/models"
)

// OrderRepository implements repository.OrderRepository with in-memory
// storage. Listing order is insertion order.
type OrderRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.Order
	ordered []string
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]models.Order),
	}
}

// Create persists an order.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[order.ID]; !exists {
		r.ordered = append(r.ordered, order.ID)
	}
	r.byID[order.ID] = order
	return nil
}

// ListByUser returns the user's orders in insertion order, bounded by limit
// and offset.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Order, 0)
	for _, id := range r.ordered {
		order := r.byID[id]
		if order.UserID != userID {
			continue
		}
		matched = append(matched, order)
	}

	return paginate(matched, limit, offset), nil
}
