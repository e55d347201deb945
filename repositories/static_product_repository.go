package repositories

import (
	"cart-widget/models"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type catalogFile struct {
	Categories []models.Category `yaml:"categories"`
	Products   []models.Product  `yaml:"products"`
}

// StaticProductRepository serves a catalog read once from a YAML seed file.
type StaticProductRepository struct {
	categories []models.Category
	products   []models.Product
	byID       map[string]int
}

func LoadStaticProductRepository(path string) (*StaticProductRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseStaticProductRepository(data)
}

func ParseStaticProductRepository(data []byte) (*StaticProductRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return NewStaticProductRepository(file.Categories, file.Products)
}

func NewStaticProductRepository(categories []models.Category, products []models.Product) (*StaticProductRepository, error) {
	repo := &StaticProductRepository{
		categories: append([]models.Category{}, categories...),
		products:   make([]models.Product, 0, len(products)),
		byID:       make(map[string]int, len(products)),
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has no id", p.Name)
		}
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: %w", p.ID, models.ErrInvalidPrice)
		}
		p.IsActive = true
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo, nil
}

func (r *StaticProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return append([]models.Category{}, r.categories...), nil
}

func (r *StaticProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product{}, r.products...), nil
}

func (r *StaticProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	pos, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	p := r.products[pos]
	return &p, nil
}
