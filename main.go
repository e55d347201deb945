//go:generate swag init -g main.go -o docs

package main

import (
	"cart-widget/config"
	"cart-widget/libs"
	"cart-widget/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// @title Cart Widget API
// @version 1.0
// @description Cart renderer for the shop product grid: sessions, cart interactions and catalog.
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token as 'Bearer {token}'; the cart_session cookie is accepted too
func main() {
	cfg := config.LoadConfig()

	logger, err := libs.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, cleanup, err := routes.NewEngine(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to start application", zap.Error(err))
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
