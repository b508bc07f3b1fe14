package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/repository"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeQuantity = errors.New("size quantity must not be negative")
)

// ProductService handles business logic for products.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct validates the request, assigns a fresh ID and persists the
// product. It returns the generated ID.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (string, error) {
	if req.Name == "" {
		return "", ErrEmptyName
	}
	if req.Price < 0 {
		return "", ErrNegativePrice
	}
	for _, size := range req.Sizes {
		if size.Quantity < 0 {
			return "", ErrNegativeQuantity
		}
	}

	product := models.Product{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Price: req.Price,
		Sizes: req.Sizes,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// ListProducts returns a filtered page of product summaries.
func (s *ProductService) ListProducts(ctx context.Context, name, size string, limit, offset int) (*models.ProductListResponse, error) {
	products, err := s.repo.List(ctx, repository.ProductFilter{
		Name:   name,
		Size:   size,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	data := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		data = append(data, models.ProductSummary{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}

	return &models.ProductListResponse{
		Data: data,
		Page: models.NewPageInfo(limit, offset, len(data)),
	}, nil
}
