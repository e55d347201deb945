package repositories

import (
	"cart-widget/models"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	categoriesCacheKey = "catalog:categories"
	productsCacheKey   = "catalog:products"
	productCachePrefix = "catalog:product:"
)

// ProductCache is the subset of *redis.Client the catalog cache needs.
type ProductCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedProductRepository reads through a Redis cache. Cache failures are
// logged and the underlying repository answers instead.
type CachedProductRepository struct {
	next   ProductRepository
	cache  ProductCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProductRepository(next ProductRepository, cache ProductCache, ttl time.Duration, logger *zap.Logger) *CachedProductRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProductRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if r.load(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	categories, err := r.next.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, categoriesCacheKey, categories)
	return categories, nil
}

func (r *CachedProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if r.load(ctx, productsCacheKey, &products) {
		return products, nil
	}

	products, err := r.next.GetAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, productsCacheKey, products)
	return products, nil
}

func (r *CachedProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	key := productCachePrefix + id

	var product models.Product
	if r.load(ctx, key, &product) {
		return &product, nil
	}

	p, err := r.next.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, p)
	return p, nil
}

func (r *CachedProductRepository) load(ctx context.Context, key string, dst interface{}) bool {
	cached, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		r.logger.Warn("catalog cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *CachedProductRepository) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, string(data), r.ttl).Err(); err != nil {
		r.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
