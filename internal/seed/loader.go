// Package seed populates an empty catalogue from a JSON seed file,
// read from the local file system or from S3.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// Catalog is the shape of a seed file.
type Catalog struct {
	Products []model.ProductInput `json:"products"`
}

// Loader reads a seed catalogue from some backing source.
type Loader interface {
	// Load reads and decodes the catalogue.
	Load(ctx context.Context) (*Catalog, error)
}

// fileLoader implements Loader for local JSON files.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a file-based catalogue loader.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON catalogue file.
func (l *fileLoader) Load(ctx context.Context) (*Catalog, error) {
	l.logger.Info().Str("file", l.path).Msg("loading seed catalogue")

	file, err := os.Open(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", l.path, err)
	}
	defer file.Close()

	return decodeCatalog(file)
}

func decodeCatalog(r io.Reader) (*Catalog, error) {
	var catalog Catalog
	if err := json.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalogue: %w", err)
	}
	return &catalog, nil
}
