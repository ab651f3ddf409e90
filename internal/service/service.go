package service

import (
	"context"

	"shopfront/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create validates the input and stores a new product.
	Create(ctx context.Context, in *model.ProductInput) (*model.Product, error)

	// Get retrieves a single product by id.
	Get(ctx context.Context, id int64) (*model.Product, error)

	// List retrieves all products.
	List(ctx context.Context) ([]model.Product, error)

	// Update validates and applies a partial update.
	Update(ctx context.Context, id int64, in *model.ProductUpdate) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id int64) error
}

// OrderService defines operations for order capture.
type OrderService interface {
	// Create validates the checkout payload, verifies the submitted
	// total and stores the order with its item snapshot.
	Create(ctx context.Context, in *model.OrderInput) (*model.Order, error)

	// List retrieves all captured orders.
	List(ctx context.Context) ([]model.Order, error)
}
