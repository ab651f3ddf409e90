package seed

import (
	"context"
	"fmt"

	"shopfront/internal/repository"
	"shopfront/internal/validate"

	"github.com/rs/zerolog"
)

// Apply loads the catalogue and inserts its products when the store is
// empty. A non-empty store is left untouched so restarts never
// duplicate the catalogue. Invalid seed entries are skipped with a
// warning rather than aborting startup.
func Apply(ctx context.Context, loader Loader, repo repository.ProductRepository, logger zerolog.Logger) error {
	logger = logger.With().Str("component", "seeder").Logger()

	count, err := repo.CountProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalogue size: %w", err)
	}
	if count > 0 {
		logger.Info().Int64("products", count).Msg("catalogue already populated, skipping seed")
		return nil
	}

	catalog, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	seeded := 0
	for i := range catalog.Products {
		in := &catalog.Products[i]
		if err := validate.Product(in); err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("skipping invalid seed product")
			continue
		}
		if _, err := repo.CreateProduct(ctx, in); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", in.Name, err)
		}
		seeded++
	}

	logger.Info().Int("products", seeded).Msg("catalogue seeded")
	return nil
}
