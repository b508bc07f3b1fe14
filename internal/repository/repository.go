package repository

import (
	"context"
	"errors"

	"github.com/shopkart/catalog-service/internal/models"
)

var (
	// ErrProductNotFound signals a product lookup miss. Callers treat this
	// as an absent product, not a failure.
	ErrProductNotFound = errors.New("product not found")
)

// ProductFilter narrows a product listing. Name is a case-insensitive
// substring match, Size an exact match against any size variant; both are
// optional and combine with AND.
type ProductFilter struct {
	Name   string
	Size   string
	Limit  int
	Offset int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error)
}
