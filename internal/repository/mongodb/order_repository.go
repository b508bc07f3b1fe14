package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/catalog-service/internal/models"
)

// OrderRepository implements repository.OrderRepository backed by a MongoDB
// collection.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository on the "orders" collection
// of db.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create persists an order document.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// ListByUser returns the user's orders in natural collection order, bounded
// by limit and offset.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
