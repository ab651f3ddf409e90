package service

import (
	"context"
	"fmt"

	"shopfront/internal/model"
	"shopfront/internal/repository"
	"shopfront/internal/validate"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Create validates the input and stores a new product.
func (s *productService) Create(ctx context.Context, in *model.ProductInput) (*model.Product, error) {
	if err := validate.Product(in); err != nil {
		s.logger.Warn().Err(err).Msg("product payload rejected")
		return nil, err
	}

	product, err := s.repo.CreateProduct(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// Get retrieves a single product by id.
func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// List retrieves all products.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}

// Update validates and applies a partial update. Omitted fields keep
// their stored values.
func (s *productService) Update(ctx context.Context, id int64, in *model.ProductUpdate) (*model.Product, error) {
	if err := validate.ProductPartial(in); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("product update rejected")
		return nil, err
	}

	product, err := s.repo.UpdateProduct(ctx, id, in)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product. Deleting an absent or already-deleted id
// reports not-found, never an internal error.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}
