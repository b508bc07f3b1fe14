package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopkart/catalog-service/internal/models"
	"github.com/shopkart/catalog-service/internal/repository/memory"
	"github.com/shopkart/catalog-service/internal/service"
	"github.com/shopkart/catalog-service/pkg/logger"
)

func newProductRouter(t *testing.T) (chi.Router, *service.ProductService) {
	t.Helper()

	repo := memory.NewProductRepository()
	svc := service.NewProductService(repo)
	log := logger.New("error")
	handler := NewProductHandler(svc, log)

	r := chi.NewRouter()
	r.Post("/products", handler.CreateProduct)
	r.Get("/products", handler.ListProducts)
	return r, svc
}

func TestCreateProduct_Success(t *testing.T) {
	r, _ := newProductRouter(t)

	body := `{"name":"Blue Shirt","price":19.99,"sizes":[{"size":"M","quantity":3},{"size":"L","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp IDResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a non-empty id")
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"name":`},
		{name: "empty name", body: `{"name":"","price":10}`},
		{name: "negative price", body: `{"name":"Shirt","price":-5}`},
		{name: "negative size quantity", body: `{"name":"Shirt","price":5,"sizes":[{"size":"M","quantity":-1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newProductRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp map[string]string
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp["error"] == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestListProducts_Pagination(t *testing.T) {
	r, svc := newProductRouter(t)

	for i := 0; i < 15; i++ {
		if _, err := svc.CreateProduct(context.Background(), models.CreateProductRequest{Name: "Blue Shirt", Price: 10}); err != nil {
			t.Fatalf("CreateProduct() unexpected error: %v", err)
		}
	}

	httpReq := httptest.NewRequest(http.MethodGet, "/products?limit=10&offset=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp models.ProductListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 10 {
		t.Errorf("expected 10 products, got %d", len(resp.Data))
	}
	if resp.Page.Next != 10 {
		t.Errorf("Page.Next = %d, want 10", resp.Page.Next)
	}
	if resp.Page.Limit != 10 {
		t.Errorf("Page.Limit = %d, want 10", resp.Page.Limit)
	}
	if resp.Page.Previous != -10 {
		t.Errorf("Page.Previous = %d, want -10", resp.Page.Previous)
	}
}

func TestListProducts_Defaults(t *testing.T) {
	r, svc := newProductRouter(t)

	for i := 0; i < 12; i++ {
		if _, err := svc.CreateProduct(context.Background(), models.CreateProductRequest{Name: "Widget", Price: 1}); err != nil {
			t.Fatalf("CreateProduct() unexpected error: %v", err)
		}
	}

	// No limit/offset supplied: defaults are 10 and 0
	httpReq := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	var resp models.ProductListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Errorf("expected 10 products with default limit, got %d", len(resp.Data))
	}
}

func TestListProducts_NameFilter(t *testing.T) {
	r, svc := newProductRouter(t)

	products := []models.CreateProductRequest{
		{Name: "Blue Shirt", Price: 10, Sizes: []models.ProductSize{{Size: "M", Quantity: 1}}},
		{Name: "Red Shirt", Price: 12, Sizes: []models.ProductSize{{Size: "L", Quantity: 1}}},
		{Name: "Blue Jeans", Price: 25, Sizes: []models.ProductSize{{Size: "M", Quantity: 1}}},
	}
	for _, p := range products {
		if _, err := svc.CreateProduct(context.Background(), p); err != nil {
			t.Fatalf("CreateProduct() unexpected error: %v", err)
		}
	}

	httpReq := httptest.NewRequest(http.MethodGet, "/products?name=blue&size=M", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	var resp models.ProductListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp.Data))
	}
	for _, p := range resp.Data {
		if !strings.Contains(strings.ToLower(p.Name), "blue") {
			t.Errorf("unexpected product in filtered result: %q", p.Name)
		}
	}
}

func TestListProducts_InvalidLimit(t *testing.T) {
	r, _ := newProductRouter(t)

	httpReq := httptest.NewRequest(http.MethodGet, "/products?limit=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
