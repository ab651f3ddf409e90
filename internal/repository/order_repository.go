package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// CreateOrder inserts the order row and its item snapshot in one
// transaction. Order numbers are unique; on the rare collision the
// insert is retried with a fresh number.
func (r *orderRepository) CreateOrder(ctx context.Context, in *model.OrderInput) (*model.Order, error) {
	const maxAttempts = 3

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		order, err := r.createOrderOnce(ctx, in)
		if err == nil {
			return order, nil
		}
		lastErr = err

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			r.logger.Warn().Int("attempt", attempt+1).Msg("order number collision, retrying")
			continue
		}
		return nil, err
	}
	return nil, lastErr
}

func (r *orderRepository) createOrderOnce(ctx context.Context, in *model.OrderInput) (*model.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (order_number, customer_name, customer_email, customer_phone, customer_address, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	order := &model.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Total:           in.Total,
	}

	err = tx.QueryRow(ctx, orderQuery,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerPhone,
		order.CustomerAddress,
		order.Total,
		time.Now().UTC(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to insert order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, price, quantity, image)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, item := range in.Items {
		batch.Queue(itemQuery, order.ID, item.ProductID, item.ProductName, item.Price, item.Quantity, item.Image)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < len(in.Items); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().
				Err(err).
				Int64("order_id", order.ID).
				Int64("product_id", in.Items[i].ProductID).
				Msg("failed to insert order item")
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	order.Items = make([]model.OrderItem, len(in.Items))
	copy(order.Items, in.Items)

	r.logger.Debug().
		Int64("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(order.Items)).
		Msg("order created")

	return order, nil
}

// GetAllOrders retrieves all orders with their item snapshots in
// insertion order.
func (r *orderRepository) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orderQuery := `
		SELECT id, order_number, customer_name, customer_email, customer_phone, customer_address, total, created_at
		FROM orders
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, orderQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	index := make(map[int64]int)
	for rows.Next() {
		var o model.Order
		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.CustomerAddress,
			&o.Total,
			&o.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemQuery := `
		SELECT order_id, product_id, product_name, price, quantity, image
		FROM order_items
		ORDER BY order_id, id
	`

	itemRows, err := r.pool.Query(ctx, itemQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item model.OrderItem
		err := itemRows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Price, &item.Quantity, &item.Image)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return orders, nil
}
