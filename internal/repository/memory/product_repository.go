package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/repository"
)

// ProductRepository implements repository.ProductRepository with in-memory
// storage. Listing order is insertion order.
type ProductRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.Product
	ordered []string
}

// NewProductRepository creates an empty in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		byID: make(map[string]models.Product),
	}
}

// Create persists a product.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[product.ID]; !exists {
		r.ordered = append(r.ordered, product.ID)
	}
	r.byID[product.ID] = product
	return nil
}

// GetByID returns a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.byID[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

// List returns products matching the filter, in insertion order, bounded by
// the filter's limit and offset.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, id := range r.ordered {
		product := r.byID[id]
		if !matches(product, filter) {
			continue
		}
		matched = append(matched, product)
	}

	return paginate(matched, filter.Limit, filter.Offset), nil
}

func matches(product models.Product, filter repository.ProductFilter) bool {
	if filter.Name != "" {
		if !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Name)) {
			return false
		}
	}
	if filter.Size != "" {
		found := false
		for _, s := range product.Sizes {
			if s.Size == filter.Size {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// paginate bounds items to a page. A non-positive limit means no limit,
// matching the mongo backend's cursor semantics.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	if limit <= 0 {
		return items[offset:]
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
