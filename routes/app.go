package routes

import (
	"cart-widget/config"
	"cart-widget/controllers"
	"cart-widget/middleware"
	"cart-widget/repositories"
	"cart-widget/services"
	"cart-widget/views"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewCatalog opens the product repository selected by CATALOG_SOURCE and
// wraps it in the Redis cache when one is reachable. The returned func
// releases the connections it opened.
func NewCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.ProductRepository, func(), error) {
	var (
		repo    repositories.ProductRepository
		closers []func()
	)

	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		pool, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
		repo = repositories.NewPostgresProductRepository(pool)
	case config.CatalogSourceFile, "":
		static, err := repositories.LoadStaticProductRepository(cfg.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
		repo = static
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	if client := config.ConnectRedis(ctx, cfg, logger); client != nil {
		closers = append(closers, func() { _ = client.Close() })
		repo = repositories.NewCachedProductRepository(repo, client, cfg.CacheTTL, logger)
	}

	logger.Info("catalog ready", zap.String("source", cfg.CatalogSource))

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return repo, cleanup, nil
}

// NewRouter wires the cart renderer on top of an already opened catalog.
func NewRouter(cfg *config.Config, catalog repositories.ProductRepository, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	productService := services.NewProductService(catalog)
	sessionService := services.NewSessionService(services.DefaultInteractions())
	presenter := controllers.CartPresenter{
		CurrencySymbol: cfg.CurrencySymbol,
		Locale:         cfg.Locale,
	}
	issuer := &controllers.SessionIssuer{
		Sessions:     sessionService,
		Secret:       cfg.SessionSecret,
		TTL:          cfg.SessionTTL,
		SecureCookie: cfg.IsProduction(),
		Logger:       logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	router.SetHTMLTemplate(views.Templates())

	SetupRoutes(router, Controllers{
		Page:     controllers.NewPageController(issuer, sessionService, productService, presenter, logger),
		Session:  controllers.NewSessionController(issuer, presenter),
		Cart:     controllers.NewCartController(sessionService, productService, presenter, logger),
		Product:  controllers.NewProductController(productService),
		Category: controllers.NewCategoryController(productService),
	}, cfg.SessionSecret)

	return router
}

func NewEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET is not set; session tokens use the default key")
	}

	catalog, cleanup, err := NewCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return NewRouter(cfg, catalog, logger), cleanup, nil
}
