package repositories

import (
	"cart-widget/models"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
categories:
  - id: 1
    name: Coffee
products:
  - id: espresso
    name: Espresso
    category_id: 1
    price: 500
  - id: flat-white
    name: Flat White
    category_id: 1
    price: 1200
`

func TestParseStaticProductRepository(t *testing.T) {
	repo, err := ParseStaticProductRepository([]byte(testCatalog))
	require.NoError(t, err)

	ctx := context.Background()

	categories, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: 1, Name: "Coffee"}}, categories)

	products, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "espresso", products[0].ID)
	assert.Equal(t, "flat-white", products[1].ID)
	assert.True(t, products[1].IsActive)

	p, err := repo.GetProductByID(ctx, "flat-white")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), p.Price)

	_, err = repo.GetProductByID(ctx, "latte")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestStaticProductRepository_ReturnsCopies(t *testing.T) {
	repo, err := ParseStaticProductRepository([]byte(testCatalog))
	require.NoError(t, err)
	ctx := context.Background()

	products, _ := repo.GetAllProducts(ctx)
	products[0].Name = "changed"

	p, _ := repo.GetProductByID(ctx, "espresso")
	p.Price = 1

	again, _ := repo.GetProductByID(ctx, "espresso")
	assert.Equal(t, "Espresso", again.Name)
	assert.Equal(t, int64(500), again.Price)
}

func TestNewStaticProductRepository_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		products []models.Product
	}{
		{name: "missing id", products: []models.Product{{Name: "Nameless", Price: 1}}},
		{name: "duplicate id", products: []models.Product{{ID: "a", Price: 1}, {ID: "a", Price: 2}}},
		{name: "negative price", products: []models.Product{{ID: "a", Price: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticProductRepository(nil, tt.products)
			assert.Error(t, err)
		})
	}

	_, err := NewStaticProductRepository(nil, []models.Product{{ID: "a", Price: -1}})
	assert.ErrorIs(t, err, models.ErrInvalidPrice)
}

func TestLoadStaticProductRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	repo, err := LoadStaticProductRepository(path)
	require.NoError(t, err)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = LoadStaticProductRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseStaticProductRepository([]byte("products: [unclosed"))
	assert.Error(t, err)
}

func TestLoadStaticProductRepository_SeedFile(t *testing.T) {
	repo, err := LoadStaticProductRepository("../database/seed/catalog.yaml")
	require.NoError(t, err)

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}
