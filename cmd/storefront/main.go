package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedKaif278/A1KababCorner/internal/handlers"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/config"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/kv"
	"github.com/MohammedKaif278/A1KababCorner/internal/platform/observability"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories/httpcatalog"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories/kvrepo"
	"github.com/MohammedKaif278/A1KababCorner/internal/repositories/memory"
	"github.com/MohammedKaif278/A1KababCorner/internal/services"
	"github.com/MohammedKaif278/A1KababCorner/internal/site"
	"github.com/MohammedKaif278/A1KababCorner/internal/views"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("storefront")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	settings, err := site.Load(cfg.Site.SettingsPath)
	if err != nil {
		logger.Fatal("failed to load site settings", zap.Error(err))
	}

	store, err := newStore(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialise cart storage", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("cart storage close error", zap.Error(err))
		}
	}()

	catalogRepo := memory.NewCatalogRepository()
	catalogSource, err := httpcatalog.NewSource(nil, cfg.Catalog.URL, cfg.Catalog.FetchTimeout)
	if err != nil {
		logger.Fatal("failed to initialise catalog source", zap.Error(err))
	}
	cartRepo, err := kvrepo.NewCartRepository(store, cfg.Storage.CartKey, observability.EventLogger(logger.Named("cart_storage")))
	if err != nil {
		logger.Fatal("failed to initialise cart repository", zap.Error(err))
	}

	catalogService, err := services.NewCatalogService(services.CatalogServiceDeps{
		Repository: catalogRepo,
		Source:     catalogSource,
		Logger:     observability.EventLogger(logger.Named("catalog")),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}

	cartService, err := services.NewCartService(services.CartServiceDeps{
		Repository: cartRepo,
		Catalog:    catalogService,
		Logger:     observability.EventLogger(logger.Named("cart")),
	})
	if err != nil {
		logger.Fatal("failed to initialise cart service", zap.Error(err))
	}

	checkoutService, err := services.NewCheckoutService(services.CheckoutServiceDeps{
		Settings: settings,
		Logger:   observability.EventLogger(logger.Named("checkout")),
	})
	if err != nil {
		logger.Fatal("failed to initialise checkout service", zap.Error(err))
	}

	// A failed catalog fetch leaves an empty grid; the store stays up
	// so the cart and a later reload keep working.
	if _, err := catalogService.Load(ctx); err != nil {
		logger.Warn("catalog load failed", zap.Error(err))
	}
	if err := cartService.Restore(ctx); err != nil {
		logger.Warn("cart restore failed", zap.Error(err))
	}

	builder := views.NewBuilder(settings)
	catalogHandlers := handlers.NewCatalogHandlers(catalogService, builder, settings)
	cartHandlers := handlers.NewCartHandlers(cartService, builder)
	checkoutHandlers := handlers.NewCheckoutHandlers(cartService, checkoutService)

	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.TraceMiddleware(),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(),
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithProductRoutes(catalogHandlers.Routes),
		handlers.WithCartRoutes(cartHandlers.Routes),
		handlers.WithCheckoutRoutes(checkoutHandlers.Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("storefront listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore selects the cart storage backend from configuration.
func newStore(ctx context.Context, cfg config.StorageConfig) (kv.Store, error) {
	switch cfg.Backend {
	case config.StorageSQLite:
		return kv.NewSQLiteStore(cfg.SQLitePath)
	case config.StorageRedis:
		client, err := kv.NewRedisClient(ctx, kv.RedisConfig{URL: cfg.RedisURL})
		if err != nil {
			return nil, err
		}
		return kv.NewRedisStore(client, "storefront"), nil
	default:
		return kv.NewMemoryStore(), nil
	}
}
