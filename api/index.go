package api

import (
	"cart-widget/config"
	"cart-widget/libs"
	"cart-widget/routes"
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.FromEnv()
		logger, err := libs.NewLogger(cfg.AppEnv, cfg.LogLevel)
		if err != nil {
			initErr = err
			return
		}

		// Connections stay open for the lifetime of the function instance.
		router, _, initErr = routes.NewEngine(context.Background(), cfg, logger)
		if initErr != nil {
			logger.Error("failed to initialise handler", zap.Error(initErr))
		}
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	router.ServeHTTP(w, r)
}
