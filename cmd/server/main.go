package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-service/internal/api"
	apihandlers "sales-service/internal/api/handlers"
	"sales-service/internal/cache"
	"sales-service/internal/database"
	"sales-service/internal/repository"
)

func main() {
	cfg, err := database.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		slog.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	var analyticsRepo repository.AnalyticsRepository = repository.NewAnalyticsRepository(pool)
	var invalidator apihandlers.AnalyticsInvalidator

	rdb, err := cache.ConnectRedis(cfg)
	if err != nil {
		slog.Warn("redis unavailable, analytics served uncached", "err", err)
	} else {
		defer rdb.Close()
		cached := cache.NewCachedAnalyticsRepository(analyticsRepo, rdb, cfg.CacheTTL)
		analyticsRepo = cached
		invalidator = cached
	}

	h := api.Handlers{
		Customers: apihandlers.NewCustomerHandler(repository.NewCustomerRepository(pool), invalidator),
		Products:  apihandlers.NewProductHandler(repository.NewProductRepository(pool)),
		Orders:    apihandlers.NewOrderHandler(repository.NewOrderRepository(pool), invalidator),
		Analytics: apihandlers.NewAnalyticsHandler(analyticsRepo),
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(h, api.TokenAuthorizer(cfg.WriteToken)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("HTTP server starting", "addr", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}
