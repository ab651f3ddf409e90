package repository

import (
	"context"
	"strings"

	"shopfront/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access
// operations. Absent records are signalled with a nil result, not an
// error.
type ProductRepository interface {
	// CreateProduct assigns a new unique id, stores the product and
	// returns the stored record.
	CreateProduct(ctx context.Context, in *model.ProductInput) (*model.Product, error)

	// GetProduct retrieves a single product by its id. Returns nil
	// when no such product exists.
	GetProduct(ctx context.Context, id int64) (*model.Product, error)

	// GetAllProducts retrieves all products in insertion order.
	GetAllProducts(ctx context.Context) ([]model.Product, error)

	// UpdateProduct merges the supplied fields into the existing
	// record and returns the updated record. Returns nil when no such
	// product exists.
	UpdateProduct(ctx context.Context, id int64, in *model.ProductUpdate) (*model.Product, error)

	// DeleteProduct removes a product. Returns true when a record
	// existed and was removed.
	DeleteProduct(ctx context.Context, id int64) (bool, error)

	// CountProducts reports the number of stored products.
	CountProducts(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access
// operations.
type OrderRepository interface {
	// CreateOrder assigns a new unique id and a freshly generated
	// order number, snapshots the items as given, stores the order and
	// returns the stored record.
	CreateOrder(ctx context.Context, in *model.OrderInput) (*model.Order, error)

	// GetAllOrders retrieves all orders in insertion order.
	GetAllOrders(ctx context.Context) ([]model.Order, error)
}

// newOrderNumber generates the human-facing order identifier customers
// see on the confirmation screen, distinct from the numeric id.
func newOrderNumber() string {
	id := uuid.New()
	return "ORD-" + strings.ToUpper(id.String()[:8])
}
