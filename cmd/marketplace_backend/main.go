package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/contractor_marketplace/internal/core/ports/repositories"
	"github.com/SscSPs/contractor_marketplace/internal/core/services"
	"github.com/SscSPs/contractor_marketplace/internal/handlers"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/SscSPs/contractor_marketplace/internal/platform/config"
	"github.com/SscSPs/contractor_marketplace/internal/platform/metrics"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/database/pgsql"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/memory"
	"github.com/SscSPs/contractor_marketplace/internal/repositories/seed"
	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/SscSPs/contractor_marketplace/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// @title Contractor Marketplace API
// @version 1.0
// @description Profiles, contracts, job payments, capped deposits and admin reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Money goes over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	r, err := newRouter(cfg, logger)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		closeStore()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// newRouter builds the gin engine with the global middleware chain.
func newRouter(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, metrics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), metrics.GinMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.ProfileIDHeader, "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if cfg.RateLimit != "" {
		var redisClient *redis.Client
		if cfg.RedisURL != "" {
			opts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
			}
			redisClient = redis.NewClient(opts)
			logger.Info("Rate limit counters stored in redis", slog.String("addr", opts.Addr))
		}
		lim, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(lim))
	}

	return r, nil
}

// openStore wires the configured store driver and returns a cleanup func that is safe to call twice.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			store.Load(seed.Demo())
			logger.Info("Loaded demo data into memory store")
		}
		return store.Repositories(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations || cfg.EnableDBCheck {
		if err := prepareSchema(ctx, cfg, logger); err != nil {
			dbPool.Close()
			return repositories.RepositoryProvider{}, nil, err
		}
	}

	if cfg.SeedDemoData {
		if err := pgsql.SeedDataset(ctx, dbPool, seed.Demo()); err != nil {
			dbPool.Close()
			return repositories.RepositoryProvider{}, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info("Demo data seeded")
	}

	closed := false
	return pgsql.NewRepositoryProvider(dbPool), func() {
		if !closed {
			closed = true
			database.ClosePgxPool(dbPool)
		}
	}, nil
}

// prepareSchema runs migrations and the optional table check over a short-lived database/sql handle.
func prepareSchema(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	migrationDB, err := database.OpenSQL(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if cfg.RunMigrations {
		logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
		if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	if cfg.EnableDBCheck {
		if err := database.VerifySchema(ctx, migrationDB, database.RequiredTables); err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		logger.Info("Database schema verified")
	}
	return nil
}
