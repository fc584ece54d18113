package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Tinaglini/RV-Project/internal/handler"
	"github.com/Tinaglini/RV-Project/internal/identity"
	"github.com/Tinaglini/RV-Project/internal/middleware"
	"github.com/Tinaglini/RV-Project/internal/repository"
	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/Tinaglini/RV-Project/internal/validation"
	"github.com/Tinaglini/RV-Project/pkg/config"
	"github.com/Tinaglini/RV-Project/pkg/database"
	"github.com/Tinaglini/RV-Project/pkg/jwtutil"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/Tinaglini/RV-Project/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	serviceName = "clients"
	version     = "1.0.0"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	log := logger.GetLogger()
	log.Info("Starting client registry service...", cfg.LogConfig()...)

	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	ctx := context.Background()
	if cfg.DB.Seed {
		if err := database.Seed(ctx, db); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	defaultCategory, err := database.ResolveDefaultCategory(ctx, db, cfg.Auth.DefaultCategoryID)
	if err != nil {
		log.Fatal("Failed to resolve default category", zap.Error(err))
	}
	if defaultCategory == 0 {
		log.Warn("No default category, clients created without one stay uncategorized")
	}

	prometheus.InitMetrics(cfg.Metrics.Prefix, version)

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	contractRepo := repository.NewContractRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	itemRepo := repository.NewItemRepository(db)

	ids := identity.NewStore(clientRepo,
		identity.NewBcryptHasher(cfg.Auth.BcryptCost),
		identity.WithLockoutThreshold(cfg.Auth.LockoutThreshold),
	)

	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())

	handler.RegisterRoutes(e, handler.Handlers{
		Health:     handler.NewHealthHandler(db, serviceName),
		Clients:    handler.NewClientHandler(service.NewClientService(clientRepo, categoryRepo, ids, defaultCategory)),
		Categories: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, clientRepo)),
		Addresses:  handler.NewAddressHandler(service.NewAddressService(addressRepo, clientRepo)),
		Contracts:  handler.NewContractHandler(service.NewContractService(contractRepo, clientRepo)),
		Catalog:    handler.NewCatalogHandler(service.NewCatalogService(serviceRepo, itemRepo)),
		Items:      handler.NewItemHandler(service.NewItemService(itemRepo, contractRepo, serviceRepo)),
	}, middleware.AdminGuard(cfg.JWT.AdminAuthEnabled, jwtUtil))

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := database.Close(db); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}
}
