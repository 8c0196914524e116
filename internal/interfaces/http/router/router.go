package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/identity"
	"github.com/pos/backend/internal/infrastructure/auth"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Employee    *handler.EmployeeHandler
	Product     *handler.ProductHandler
	Category    *handler.CategoryHandler
	Customer    *handler.CustomerHandler
	Supplier    *handler.SupplierHandler
	Transaction *handler.TransactionHandler
	Inventory   *handler.InventoryHandler
	Report      *handler.ReportHandler
	System      *handler.SystemHandler
}

// New builds the gin engine with the full middleware chain and all
// API routes mounted under /api/v1.
func New(cfg *config.Config, jwtService *auth.JWTService, handlers Handlers, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(log),
		middleware.RequestLogger(log),
		middleware.CORS(middleware.CORSFromConfig(cfg.HTTP)),
		middleware.Secure(),
	)
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", handlers.System.Health)

	api := engine.Group("/api/v1")
	api.POST("/auth/login", handlers.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(jwtService, log))

	adminOnly := middleware.RequireRole(string(identity.RoleAdmin))
	managers := middleware.RequireRole(string(identity.RoleAdmin), string(identity.RoleManager))

	authed.GET("/auth/me", handlers.Auth.Me)
	authed.POST("/auth/change-password", handlers.Auth.ChangePassword)

	users := authed.Group("/users", adminOnly)
	{
		users.POST("", handlers.User.Create)
		users.GET("", handlers.User.List)
		users.GET("/:id", handlers.User.Get)
		users.PUT("/:id", handlers.User.Update)
		users.DELETE("/:id", handlers.User.Deactivate)
		users.POST("/:id/activate", handlers.User.Activate)
	}

	employees := authed.Group("/employees", managers)
	{
		employees.POST("", handlers.Employee.Create)
		employees.GET("", handlers.Employee.List)
		employees.GET("/:id", handlers.Employee.Get)
		employees.PUT("/:id", handlers.Employee.Update)
		employees.DELETE("/:id", handlers.Employee.Deactivate)
		employees.POST("/:id/activate", handlers.Employee.Activate)
	}

	products := authed.Group("/products")
	{
		products.GET("", handlers.Product.List)
		products.GET("/low-stock", handlers.Product.LowStock)
		products.GET("/expiring", handlers.Product.Expiring)
		products.GET("/code/:code", handlers.Product.GetByCode)
		products.GET("/barcode/:barcode", handlers.Product.GetByBarcode)
		products.GET("/:id", handlers.Product.Get)

		products.POST("", managers, handlers.Product.Create)
		products.PUT("/:id", managers, handlers.Product.Update)
		products.DELETE("/:id", managers, handlers.Product.Deactivate)
		products.POST("/:id/activate", managers, handlers.Product.Activate)
	}

	categories := authed.Group("/categories")
	{
		categories.GET("", handlers.Category.List)
		categories.GET("/:id", handlers.Category.Get)

		categories.POST("", managers, handlers.Category.Create)
		categories.PUT("/:id", managers, handlers.Category.Update)
		categories.DELETE("/:id", managers, handlers.Category.Delete)
	}

	customers := authed.Group("/customers")
	{
		customers.POST("", handlers.Customer.Create)
		customers.GET("", handlers.Customer.List)
		customers.GET("/top", handlers.Customer.Top)
		customers.GET("/phone/:phone", handlers.Customer.GetByPhone)
		customers.GET("/:id", handlers.Customer.Get)
		customers.PUT("/:id", handlers.Customer.Update)
		customers.POST("/:id/redeem", handlers.Customer.RedeemPoints)

		customers.DELETE("/:id", managers, handlers.Customer.Deactivate)
		customers.POST("/:id/activate", managers, handlers.Customer.Activate)
	}

	suppliers := authed.Group("/suppliers", managers)
	{
		suppliers.POST("", handlers.Supplier.Create)
		suppliers.GET("", handlers.Supplier.List)
		suppliers.GET("/:id", handlers.Supplier.Get)
		suppliers.PUT("/:id", handlers.Supplier.Update)
		suppliers.DELETE("/:id", handlers.Supplier.Deactivate)
		suppliers.POST("/:id/activate", handlers.Supplier.Activate)
	}

	transactions := authed.Group("/transactions")
	{
		transactions.POST("", handlers.Transaction.Checkout)
		transactions.GET("", handlers.Transaction.List)
		transactions.GET("/number/:number", handlers.Transaction.GetByNumber)
		transactions.GET("/:id", handlers.Transaction.Get)

		transactions.POST("/:id/refund", managers, handlers.Transaction.Refund)
	}

	inventory := authed.Group("/inventory", managers)
	{
		inventory.POST("/adjustments", handlers.Inventory.Adjust)
		inventory.GET("/movements", handlers.Inventory.Movements)
	}

	reports := authed.Group("/reports", managers)
	{
		reports.GET("/daily", handlers.Report.Daily)
		reports.GET("/sales", handlers.Report.Sales)
		reports.GET("/top-products", handlers.Report.TopProducts)
		reports.GET("/valuation", handlers.Report.Valuation)
		reports.GET("/low-stock", handlers.Report.LowStock)
		reports.GET("/expiring", handlers.Report.Expiring)
	}

	settings := authed.Group("/settings")
	{
		settings.GET("", handlers.System.ListSettings)
		settings.GET("/:key", handlers.System.GetSetting)

		settings.PUT("/:key", adminOnly, handlers.System.UpdateSetting)
	}

	authed.GET("/audit-logs", adminOnly, handlers.System.ListAuditLogs)

	return engine
}
