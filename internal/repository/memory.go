package repository

import (
	"context"
	"sync"
	"time"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// MemoryStore keeps both collections in process memory. It backs the
// default deployment and honours the same storage contract as the
// Postgres driver: monotonic never-reused ids, snapshotted order items,
// no cross-entity coupling. A single mutex serialises id allocation and
// map mutation so two concurrent creates can never collide on an id.
type MemoryStore struct {
	mu           sync.Mutex
	products     map[int64]model.Product
	productIDs   []int64 // insertion order
	orders       []model.Order
	orderNumbers map[string]struct{}
	productSeq   int64
	orderSeq     int64
	logger       zerolog.Logger
}

var (
	_ ProductRepository = (*MemoryStore)(nil)
	_ OrderRepository   = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		products:     make(map[int64]model.Product),
		orderNumbers: make(map[string]struct{}),
		logger:       logger.With().Str("repository", "memory").Logger(),
	}
}

// CreateProduct assigns the next product id and stores the record.
func (s *MemoryStore) CreateProduct(ctx context.Context, in *model.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	p := model.Product{
		ID:          s.productSeq,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
	}
	s.products[p.ID] = p
	s.productIDs = append(s.productIDs, p.ID)

	s.logger.Debug().Int64("product_id", p.ID).Msg("product created")
	return &p, nil
}

// GetProduct retrieves a product, or nil when absent.
func (s *MemoryStore) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetAllProducts retrieves all products in insertion order.
func (s *MemoryStore) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// UpdateProduct merges the supplied fields into the stored record.
// Returns nil when no such product exists.
func (s *MemoryStore) UpdateProduct(ctx context.Context, id int64, in *model.ProductUpdate) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	s.products[id] = p

	s.logger.Debug().Int64("product_id", id).Msg("product updated")
	return &p, nil
}

// DeleteProduct removes a product. Deleted ids are never reassigned.
func (s *MemoryStore) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	for i, pid := range s.productIDs {
		if pid == id {
			s.productIDs = append(s.productIDs[:i], s.productIDs[i+1:]...)
			break
		}
	}

	s.logger.Debug().Int64("product_id", id).Msg("product deleted")
	return true, nil
}

// CountProducts reports the number of stored products.
func (s *MemoryStore) CountProducts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.products)), nil
}

// CreateOrder assigns the next order id, generates an order number and
// stores a snapshot of the submitted items.
func (s *MemoryStore) CreateOrder(ctx context.Context, in *model.OrderInput) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := newOrderNumber()
	for {
		if _, taken := s.orderNumbers[number]; !taken {
			break
		}
		number = newOrderNumber()
	}
	s.orderNumbers[number] = struct{}{}

	s.orderSeq++
	items := make([]model.OrderItem, len(in.Items))
	copy(items, in.Items)

	o := model.Order{
		ID:              s.orderSeq,
		OrderNumber:     number,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Items:           items,
		Total:           in.Total,
		CreatedAt:       time.Now().UTC(),
	}
	s.orders = append(s.orders, o)

	s.logger.Debug().
		Int64("order_id", o.ID).
		Str("order_number", o.OrderNumber).
		Int("item_count", len(o.Items)).
		Msg("order created")

	stored := o
	stored.Items = make([]model.OrderItem, len(o.Items))
	copy(stored.Items, o.Items)
	return &stored, nil
}

// GetAllOrders retrieves all orders in insertion order. Item slices
// are copied so callers can never mutate the stored snapshots.
func (s *MemoryStore) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, len(s.orders))
	for i, o := range s.orders {
		items := make([]model.OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		orders[i] = o
	}
	return orders, nil
}
