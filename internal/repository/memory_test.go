package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *MemoryStore {
	return NewMemoryStore(zerolog.Nop())
}

func mugInput() *model.ProductInput {
	return &model.ProductInput{
		Name:        "Mug",
		Description: "Ceramic mug",
		Price:       "9.99",
		Image:       "http://x/mug.png",
	}
}

func checkoutInput() *model.OrderInput {
	return &model.OrderInput{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "555-0100",
		CustomerAddress: "1 Main St",
		Items: []model.OrderItem{
			{ProductID: 1, ProductName: "Mug", Price: "10.00", Quantity: 2, Image: "http://x/mug.png"},
			{ProductID: 2, ProductName: "Coaster", Price: "5.00", Quantity: 1, Image: "http://x/coaster.png"},
		},
		Total: "25.00",
	}
}

func TestMemoryStore_CreateProduct_AssignsIncreasingIDs(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		p, err := store.CreateProduct(ctx, mugInput())
		require.NoError(t, err)
		assert.Greater(t, p.ID, last)
		last = p.ID
	}
}

func TestMemoryStore_IDsNeverReused(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	first, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)

	deleted, err := store.DeleteProduct(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	second, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := store.CreateProduct(ctx, mugInput())
			assert.NoError(t, err)
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestMemoryStore_GetProduct(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)

	got, err := store.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)

	absent, err := store.GetProduct(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemoryStore_GetAllProducts_InsertionOrder(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		in := mugInput()
		in.Name = fmt.Sprintf("Product %d", i)
		_, err := store.CreateProduct(ctx, in)
		require.NoError(t, err)
	}

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i, p := range products {
		assert.Equal(t, fmt.Sprintf("Product %d", i), p.Name)
	}
}

func TestMemoryStore_UpdateProduct_PartialMerge(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)

	price := "12.50"
	updated, err := store.UpdateProduct(ctx, created.ID, &model.ProductUpdate{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "12.50", updated.Price)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Image, updated.Image)
	assert.Equal(t, created.ID, updated.ID)
}

func TestMemoryStore_UpdateProduct_Absent(t *testing.T) {
	store := newStore()

	name := "Ghost"
	updated, err := store.UpdateProduct(context.Background(), 42, &model.ProductUpdate{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestMemoryStore_DeleteProduct_Idempotent(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	created, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)

	deleted, err := store.DeleteProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Repeating the delete always reports not-found, never an error.
	for i := 0; i < 2; i++ {
		deleted, err = store.DeleteProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	}

	deleted, err = store.DeleteProduct(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStore_CreateOrder(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	order, err := store.CreateOrder(ctx, checkoutInput())
	require.NoError(t, err)

	assert.Positive(t, order.ID)
	assert.NotEmpty(t, order.OrderNumber)
	assert.NotEqual(t, fmt.Sprint(order.ID), order.OrderNumber)
	assert.Equal(t, "25.00", order.Total)
	assert.Len(t, order.Items, 2)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestMemoryStore_OrderNumbersUnique(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		order, err := store.CreateOrder(ctx, checkoutInput())
		require.NoError(t, err)
		assert.False(t, seen[order.OrderNumber], "order number %s reused", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestMemoryStore_OrderSnapshotSurvivesProductDelete(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	product, err := store.CreateProduct(ctx, mugInput())
	require.NoError(t, err)

	in := checkoutInput()
	in.Items = []model.OrderItem{
		{ProductID: product.ID, ProductName: product.Name, Price: product.Price, Quantity: 1, Image: product.Image},
	}
	in.Total = product.Price

	order, err := store.CreateOrder(ctx, in)
	require.NoError(t, err)

	deleted, err := store.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	orders, err := store.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, order.Items[0], orders[0].Items[0])
	assert.Equal(t, "Mug", orders[0].Items[0].ProductName)
}

func TestMemoryStore_GetAllOrders_SnapshotIsolated(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	_, err := store.CreateOrder(ctx, checkoutInput())
	require.NoError(t, err)

	first, err := store.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating a returned snapshot must not leak into the store.
	first[0].Items[0].ProductName = "tampered"

	second, err := store.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mug", second[0].Items[0].ProductName)
}

func TestMemoryStore_CreateOrder_InputAliasing(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	in := checkoutInput()
	order, err := store.CreateOrder(ctx, in)
	require.NoError(t, err)

	// Mutating the caller's slice after creation must not alter the
	// stored snapshot.
	in.Items[0].Quantity = 99

	orders, err := store.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.Equal(t, 2, order.Items[0].Quantity)
}
