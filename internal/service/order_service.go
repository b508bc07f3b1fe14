package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/repository"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyUserID     = errors.New("userId is required")
)

// unknownProductName is substituted when an item references a product that
// cannot be found.
const unknownProductName = "Unknown"

// maxConcurrentLookups bounds in-flight product lookups per order.
const maxConcurrentLookups = 8

// OrderService handles order creation and the order listing composition:
// joining stored orders against current product data and computing totals.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrder validates the request, assigns a fresh ID and persists the
// order. Product references are not checked: items may point at products
// that do not exist.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (string, error) {
	if req.UserID == "" {
		return "", ErrEmptyUserID
	}
	if len(req.Items) == 0 {
		return "", ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return "", ErrInvalidQuantity
		}
	}

	order := models.Order{
		ID:     uuid.New().String(),
		UserID: req.UserID,
		Items:  req.Items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

// ListUserOrders returns a page of the user's orders with each item resolved
// against the product store and a per-order total. A user with no orders
// yields an empty data array, not an error.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string, limit, offset int) (*models.OrderListResponse, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	data := make([]models.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		enriched, err := s.enrichOrder(ctx, order)
		if err != nil {
			return nil, err
		}
		data = append(data, *enriched)
	}

	return &models.OrderListResponse{
		Data: data,
		Page: models.NewPageInfo(limit, offset, len(data)),
	}, nil
}

// resolvedItem carries one item's lookup result back to its slot in the
// enriched order.
type resolvedItem struct {
	item     models.EnrichedOrderItem
	subtotal decimal.Decimal
}

// enrichOrder resolves every line item of an order concurrently and computes
// the order total. Items referencing a missing product get the "Unknown"
// sentinel and contribute nothing to the total. Results are written back by
// item index, so the enriched list preserves the submitted item order.
func (s *OrderService) enrichOrder(ctx context.Context, order models.Order) (*models.EnrichedOrder, error) {
	resolved := make([]resolvedItem, len(order.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for i, item := range order.Items {
		i, item := i, item
		g.Go(func() error {
			product, err := s.productRepo.GetByID(gctx, item.ProductID)
			if errors.Is(err, repository.ErrProductNotFound) {
				resolved[i] = resolvedItem{
					item: models.EnrichedOrderItem{
						ProductDetails: models.ProductDetails{
							ID:   item.ProductID,
							Name: unknownProductName,
						},
						Qty: item.Qty,
					},
					subtotal: decimal.Zero,
				}
				return nil
			}
			if err != nil {
				return err
			}

			resolved[i] = resolvedItem{
				item: models.EnrichedOrderItem{
					ProductDetails: models.ProductDetails{
						ID:   product.ID,
						Name: product.Name,
					},
					Qty: item.Qty,
				},
				subtotal: decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Qty))),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]models.EnrichedOrderItem, len(resolved))
	for i, r := range resolved {
		items[i] = r.item
		total = total.Add(r.subtotal)
	}

	return &models.EnrichedOrder{
		ID:    order.ID,
		Items: items,
		Total: total.Round(2).InexactFloat64(),
	}, nil
}
