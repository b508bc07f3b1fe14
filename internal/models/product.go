package models

// ProductSize represents a single size variant of a product.
type ProductSize struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Product represents a catalog product with its size variants.
// The ID is generated at creation time and stored as the document key.
type Product struct {
	ID    string        `json:"id" bson:"_id"`
	Name  string        `json:"name" bson:"name"`
	Price float64       `json:"price" bson:"price"`
	Sizes []ProductSize `json:"sizes" bson:"sizes"`
}

// CreateProductRequest represents an incoming product creation request.
type CreateProductRequest struct {
	Name  string        `json:"name"`
	Price float64       `json:"price"`
	Sizes []ProductSize `json:"sizes"`
}

// ProductSummary is the listing projection of a product (no sizes).
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductListResponse is the paginated product listing payload.
type ProductListResponse struct {
	Data []ProductSummary `json:"data"`
	Page PageInfo         `json:"page"`
}
