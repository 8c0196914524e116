package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	alertsapp "github.com/pos/backend/internal/application/alerts"
	billingapp "github.com/pos/backend/internal/application/billing"
	catalogapp "github.com/pos/backend/internal/application/catalog"
	identityapp "github.com/pos/backend/internal/application/identity"
	inventoryapp "github.com/pos/backend/internal/application/inventory"
	partnerapp "github.com/pos/backend/internal/application/partner"
	reportapp "github.com/pos/backend/internal/application/report"
	systemapp "github.com/pos/backend/internal/application/system"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/notification"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting POS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)

	// Report cache is optional. When Redis is unreachable the reports
	// aggregate on every request instead.
	var reportCache *cache.RedisReportCache
	if cfg.Redis.Host != "" {
		reportCache, err = cache.NewRedisReportCache(cfg.Redis,
			cache.WithReportTTL(cfg.Alerts.CacheTTL),
			cache.WithReportCacheLogger(log),
		)
		if err != nil {
			log.Warn("Report cache unavailable, continuing without it", zap.Error(err))
			reportCache = nil
		} else {
			defer func() {
				if err := reportCache.Close(); err != nil {
					log.Error("Error closing report cache", zap.Error(err))
				}
			}()
		}
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo)
	employeeService := identityapp.NewEmployeeService(employeeRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)

	checkoutOpts := []billingapp.CheckoutServiceOption{}
	if reportCache != nil {
		checkoutOpts = append(checkoutOpts, billingapp.WithReportCache(reportCache))
	}
	checkoutService := billingapp.NewCheckoutService(
		persistence.NewGormCheckoutScope(db.DB),
		transactionRepo,
		billingapp.PolicyFromConfig(cfg.Business),
		log,
		checkoutOpts...,
	)

	inventoryService := inventoryapp.NewInventoryService(
		persistence.NewGormStockScope(db.DB),
		movementRepo,
		log,
	)

	reportOpts := []reportapp.ReportServiceOption{}
	if reportCache != nil {
		reportOpts = append(reportOpts, reportapp.WithCache(reportCache))
	}
	reportService := reportapp.NewReportService(transactionRepo, productRepo, cfg.Business, log, reportOpts...)

	settingService := systemapp.NewSettingService(settingRepo, auditRepo, cfg.Business, log)
	auditService := systemapp.NewAuditService(auditRepo, log)

	// Background stock and expiry alerts
	if cfg.Alerts.Enabled {
		notifier := notification.NewSMSNotifier(cfg.Notification, log)
		alertJob := alertsapp.NewStockAlertJob(productRepo, notifier, cfg.Alerts, cfg.Business, log)
		if err := alertJob.Start(context.Background()); err != nil {
			log.Fatal("Failed to start stock alert job", zap.Error(err))
		}
		defer func() {
			if err := alertJob.Stop(context.Background()); err != nil {
				log.Error("Error stopping stock alert job", zap.Error(err))
			}
		}()
		log.Info("Stock alert job started",
			zap.Duration("check_interval", cfg.Alerts.CheckInterval),
			zap.String("manager_phone", cfg.Alerts.ManagerPhone),
		)
	}

	engine := router.New(cfg, jwtService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		User:        handler.NewUserHandler(userService),
		Employee:    handler.NewEmployeeHandler(employeeService),
		Product:     handler.NewProductHandler(productService, cfg.Business),
		Category:    handler.NewCategoryHandler(categoryService),
		Customer:    handler.NewCustomerHandler(customerService),
		Supplier:    handler.NewSupplierHandler(supplierService),
		Transaction: handler.NewTransactionHandler(checkoutService),
		Inventory:   handler.NewInventoryHandler(inventoryService),
		Report:      handler.NewReportHandler(reportService),
		System:      handler.NewSystemHandler(settingService, auditService, db, cfg.App),
	}, log)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
