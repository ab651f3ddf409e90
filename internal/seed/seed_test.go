package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shopfront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCatalog = `{
	"products": [
		{"name": "Mug", "description": "Ceramic mug", "price": "9.99", "image": "http://x/mug.png"},
		{"name": "Coaster", "description": "Cork coaster", "price": "3.50", "image": "http://x/coaster.png"}
	]
}`

func TestFileLoader_Load(t *testing.T) {
	path := writeSeedFile(t, sampleCatalog)
	loader := NewFileLoader(path, zerolog.Nop())

	catalog, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Products, 2)
	assert.Equal(t, "Mug", catalog.Products[0].Name)
	assert.Equal(t, "3.50", catalog.Products[1].Price)
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())

	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestFileLoader_MalformedJSON(t *testing.T) {
	path := writeSeedFile(t, "{not json")
	loader := NewFileLoader(path, zerolog.Nop())

	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	path := writeSeedFile(t, sampleCatalog)
	loader := NewFileLoader(path, zerolog.Nop())
	store := repository.NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, Apply(ctx, loader, store, zerolog.Nop()))

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mug", products[0].Name)
}

func TestApply_SkipsPopulatedStore(t *testing.T) {
	path := writeSeedFile(t, sampleCatalog)
	loader := NewFileLoader(path, zerolog.Nop())
	store := repository.NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, Apply(ctx, loader, store, zerolog.Nop()))
	// A second run must not duplicate the catalogue.
	require.NoError(t, Apply(ctx, loader, store, zerolog.Nop()))

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestApply_SkipsInvalidProducts(t *testing.T) {
	path := writeSeedFile(t, `{
		"products": [
			{"name": "Mug", "description": "Ceramic mug", "price": "9.99", "image": "http://x/mug.png"},
			{"name": "", "description": "No name", "price": "1.00", "image": "http://x/none.png"},
			{"name": "Bad price", "description": "x", "price": "free", "image": "http://x/free.png"}
		]
	}`)
	loader := NewFileLoader(path, zerolog.Nop())
	store := repository.NewMemoryStore(zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, Apply(ctx, loader, store, zerolog.Nop()))

	products, err := store.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)
}
