package repository

import (
	"context"
	"fmt"
	"strings"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// CreateProduct inserts a product, letting the id sequence assign the
// unique monotonic id.
func (r *productRepository) CreateProduct(ctx context.Context, in *model.ProductInput) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, image
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, in.Name, in.Description, in.Price, in.Image).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image)
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")
	return &p, nil
}

// GetProduct retrieves a single product by its id.
func (r *productRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT id, name, description, price, image
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetAllProducts retrieves all products in insertion order.
func (r *productRepository) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, description, price, image
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// UpdateProduct merges the supplied fields into the existing record.
// Returns nil when no such product exists.
func (r *productRepository) UpdateProduct(ctx context.Context, id int64, in *model.ProductUpdate) (*model.Product, error) {
	set := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	appendSet := func(column string, value string) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if in.Name != nil {
		appendSet("name", *in.Name)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if in.Price != nil {
		appendSet("price", *in.Price)
	}
	if in.Image != nil {
		appendSet("image", *in.Image)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE products
		SET %s
		WHERE id = $%d
		RETURNING id, name, description, price, image
	`, strings.Join(set, ", "), len(args))

	var p model.Product
	err := r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Debug().Int64("product_id", id).Int("fields", len(set)).Msg("product updated")
	return &p, nil
}

// DeleteProduct removes a product. Historical order snapshots keep
// their copied line items regardless.
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	deleted := tag.RowsAffected() > 0
	r.logger.Debug().Int64("product_id", id).Bool("deleted", deleted).Msg("product delete")
	return deleted, nil
}

// CountProducts reports the number of stored products.
func (r *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
