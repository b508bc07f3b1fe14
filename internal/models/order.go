package models

// OrderItem represents a single line item in an order.
// ProductID is a soft reference: the product it names may no longer exist.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Qty       int    `json:"qty" bson:"qty"`
}

// Order represents a stored order.
type Order struct {
	ID     string      `json:"id" bson:"_id"`
	UserID string      `json:"userId" bson:"userId"`
	Items  []OrderItem `json:"items" bson:"items"`
}

// CreateOrderRequest represents an incoming order creation request.
type CreateOrderRequest struct {
	UserID string      `json:"userId"`
	Items  []OrderItem `json:"items"`
}

// ProductDetails is the resolved product information attached to an
// enriched order item. Name is "Unknown" when the product cannot be found.
type ProductDetails struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnrichedOrderItem is an order line item joined with product details.
type EnrichedOrderItem struct {
	ProductDetails ProductDetails `json:"productDetails"`
	Qty            int            `json:"qty"`
}

// EnrichedOrder is an order with resolved items and a computed total.
type EnrichedOrder struct {
	ID    string              `json:"id"`
	Items []EnrichedOrderItem `json:"items"`
	Total float64             `json:"total"`
}

// OrderListResponse is the paginated enriched order listing payload.
type OrderListResponse struct {
	Data []EnrichedOrder `json:"data"`
	Page PageInfo        `json:"page"`
}
