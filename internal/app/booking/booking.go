package booking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/linguaplay/booking/internal/cache"
	"github.com/linguaplay/booking/internal/catalog"
	"github.com/linguaplay/booking/internal/config"
	catalogservice "github.com/linguaplay/booking/internal/services/catalog"
	orderservice "github.com/linguaplay/booking/internal/services/order"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	gateway := catalog.New(cfg.CatalogAPI.BaseURL, cfg.CatalogAPI.APIKey, logger)

	catalogService := catalogservice.New(gateway, cacheRedis, cfg.CatalogAPI.CacheTTL, logger)
	orderService := orderservice.New(gateway, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, catalogService, orderService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.cache.Db.Close()
		return err
	}
}
