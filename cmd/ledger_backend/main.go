package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_dashboard_app/internal/core/services"
	"github.com/SscSPs/ledger_dashboard_app/internal/handlers"
	"github.com/SscSPs/ledger_dashboard_app/internal/middleware"
	"github.com/SscSPs/ledger_dashboard_app/internal/platform/config"
	"github.com/SscSPs/ledger_dashboard_app/internal/repositories/database/memory"
	"github.com/SscSPs/ledger_dashboard_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_dashboard_app/internal/seed"
	"github.com/SscSPs/ledger_dashboard_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// @title Ledger Dashboard API
// @version 1.0
// @description Read-only aggregation and search over transaction records.

// @host localhost:7777
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Amounts go out as JSON numbers, as the dashboard expects
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	repos, cleanup, err := initRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize record store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.SeedOnStart {
		if err := seedStore(middleware.WithLogger(ctx, logger), cfg, serviceContainer.Seed); err != nil {
			logger.Error("Failed to seed record store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rateLimiter, err := middleware.NewMemoryRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// initRepositories builds the record store selected by STORE_DRIVER. The returned
// cleanup releases its resources.
func initRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory record store, data is not persisted")
		return portsrepo.RepositoryProvider{TransactionRepo: memory.New()}, func() {}, nil

	case config.StoreDriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
			StatementTimeout: cfg.StatementTimeout,
			Ping:             cfg.EnableDBCheck,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}

		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil

	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func seedStore(ctx context.Context, cfg *config.Config, seeder portssvc.SeedSvc) error {
	var (
		txns []domain.Transaction
		err  error
	)
	if cfg.SeedFile != "" {
		txns, err = seed.LoadFile(cfg.SeedFile)
	} else {
		txns, err = seed.Embedded()
	}
	if err != nil {
		return err
	}

	_, err = seeder.SeedIfEmpty(ctx, txns)
	return err
}
