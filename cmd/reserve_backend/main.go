package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/lukemcknight/reserve/internal/core/services"
	"github.com/lukemcknight/reserve/internal/dto"
	"github.com/lukemcknight/reserve/internal/handlers"
	"github.com/lukemcknight/reserve/internal/middleware"
	"github.com/lukemcknight/reserve/internal/platform/config"
	memoryrepo "github.com/lukemcknight/reserve/internal/repositories/memory"

	portsrepo "github.com/lukemcknight/reserve/internal/core/ports/repositories"
)

// @title NIL Tax Reserve API
// @version 1.0
// @description Estimates the cash reserve a self-employed NIL earner should set aside for taxes.

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

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The state rate table is seeded once and only ever replaced atomically.
	rateRepo, err := memoryrepo.NewStateRateRepository(memoryrepo.DefaultStateRates())
	if err != nil {
		logger.Error("Failed to initialize state rate table", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("State rate table initialized.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	// CORS for the browser client (Vite dev origins by default)
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	// Per-IP rate limiting with an in-memory store
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{StateRateRepo: rateRepo}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
