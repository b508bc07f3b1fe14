package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/repository"
)

// ProductRepository implements repository.ProductRepository backed by a
// MongoDB collection. The application-generated product ID is stored as the
// document _id.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository on the "products"
// collection of db.
func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// Create persists a product document.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// GetByID returns a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// List returns products matching the filter in natural collection order,
// bounded by the filter's limit and offset.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": filter.Name, "$options": "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}

	opts := options.Find().
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
