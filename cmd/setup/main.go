package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/pos/backend/internal/application/catalog"
	identityapp "github.com/pos/backend/internal/application/identity"
	partnerapp "github.com/pos/backend/internal/application/partner"
	systemapp "github.com/pos/backend/internal/application/system"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/migration"
	"github.com/pos/backend/internal/infrastructure/persistence"
)

// setup prepares a fresh installation: it applies the schema, seeds the
// system settings, creates the bootstrap admin account and, with
// -sample, loads a small demo dataset to explore the API with.
func main() {
	var (
		migrationsPath string
		withSample     bool
	)
	flag.StringVar(&migrationsPath, "path", "migrations", "Path to migrations directory")
	flag.BoolVar(&withSample, "sample", false, "Load demo data after the schema is in place")
	flag.Parse()

	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}

	if err := applyMigrations(cfg, absPath, log); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	log.Info("Schema is up to date")

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()

	settingRepo := persistence.NewGormSettingRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)
	settingService := systemapp.NewSettingService(settingRepo, auditRepo, cfg.Business, log)
	if err := settingService.Seed(ctx); err != nil {
		log.Fatal("Failed to seed settings", zap.Error(err))
	}
	log.Info("Settings seeded")

	userRepo := persistence.NewGormUserRepository(db.DB)
	userService := identityapp.NewUserService(userRepo)
	created, err := seedAdmin(ctx, userService, cfg.Admin)
	if err != nil {
		log.Fatal("Failed to create admin account", zap.Error(err))
	}
	if created {
		log.Info("Admin account created", zap.String("username", cfg.Admin.Username))
	} else {
		log.Info("Admin account already exists", zap.String("username", cfg.Admin.Username))
	}

	if withSample {
		if err := loadSampleData(ctx, db, log); err != nil {
			log.Fatal("Failed to load sample data", zap.Error(err))
		}
		log.Info("Sample data loaded")
	}

	log.Info("Setup complete")
}

func applyMigrations(cfg *config.Config, migrationsPath string, log *zap.Logger) error {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return err
	}

	m, err := migration.New(db, migrationsPath, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Up()
}

func seedAdmin(ctx context.Context, users *identityapp.UserService, admin config.AdminConfig) (bool, error) {
	_, err := users.Create(ctx, identityapp.CreateUserRequest{
		Username: admin.Username,
		Password: admin.Password,
		Role:     "admin",
	})
	if err != nil {
		if isAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isAlreadyExists(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "ALREADY_EXISTS"
}

// loadSampleData inserts a handful of rows per table so a fresh install
// has something to look at. Rows that already exist are skipped.
func loadSampleData(ctx context.Context, db *persistence.Database, log *zap.Logger) error {
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	employeeService := identityapp.NewEmployeeService(employeeRepo)
	userService := identityapp.NewUserService(userRepo)

	users := []identityapp.CreateUserRequest{
		{Username: "manager1", Password: "manager123", Role: "manager", Email: "manager@supermart.example", Phone: "9000000002"},
		{Username: "cashier1", Password: "cashier123", Role: "cashier", Email: "cashier1@supermart.example", Phone: "9000000003"},
	}
	for _, req := range users {
		if _, err := userService.Create(ctx, req); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("user %s: %w", req.Username, err)
		}
	}

	suppliers := []partnerapp.CreateSupplierRequest{
		{Code: "SUP001", Name: "Agro Foods Pvt Ltd", ContactPerson: "Rajesh Kumar", Phone: "9012345678", City: "Mumbai", State: "Maharashtra", GSTNumber: "GST123456789"},
		{Code: "SUP002", Name: "Daily Dairy Co-operative", ContactPerson: "Manoj Sharma", Phone: "9088776655", City: "Pune", State: "Maharashtra", GSTNumber: "GST987654321"},
	}
	for _, req := range suppliers {
		if _, err := supplierService.Create(ctx, req); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("supplier %s: %w", req.Code, err)
		}
	}

	employees := []identityapp.CreateEmployeeRequest{
		{Code: "EMP001", Name: "Priya Gupta", Phone: "9010000002", Email: "priya@supermart.example", Position: "Store Manager", Department: "Operations", Salary: decimal.NewFromInt(55000), HireDate: time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC)},
		{Code: "EMP002", Name: "Amit Kumar", Phone: "9010000003", Email: "amit@supermart.example", Position: "Cashier", Department: "Sales", Salary: decimal.NewFromInt(35000), HireDate: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, req := range employees {
		if _, err := employeeService.Create(ctx, req); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("employee %s: %w", req.Code, err)
		}
	}

	categories := []catalogapp.CreateCategoryRequest{
		{Name: "Groceries", Description: "Essential food items and daily necessities"},
		{Name: "Dairy & Eggs", Description: "Milk, cheese, yogurt and eggs"},
		{Name: "Beverages", Description: "Drinks, juices and beverages"},
		{Name: "Snacks", Description: "Biscuits, chips and confectionery"},
	}
	categoryIDs := map[string]*catalogapp.CategoryResponse{}
	for _, req := range categories {
		resp, err := categoryService.Create(ctx, req)
		if err != nil {
			if isAlreadyExists(err) {
				continue
			}
			return fmt.Errorf("category %s: %w", req.Name, err)
		}
		categoryIDs[req.Name] = resp
	}

	customers := []partnerapp.CreateCustomerRequest{
		{Name: "Ramesh Gupta", Phone: "9988111122", Email: "ramesh@email.example", Address: "M1 East Market Road, Mumbai"},
		{Name: "Priya Sharma", Phone: "9988111144", Email: "priya@email.example", Address: "Andheri West, Plot 15, Mumbai"},
	}
	for _, req := range customers {
		if _, err := customerService.Create(ctx, req); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("customer %s: %w", req.Phone, err)
		}
	}

	price := func(v string) decimal.Decimal { return decimal.RequireFromString(v) }
	ptr := func(d decimal.Decimal) *decimal.Decimal { return &d }

	products := []catalogapp.CreateProductRequest{
		{Code: "PRD00001", Barcode: "8901001000011", Name: "Basmati Rice 1kg", Brand: "India Gate", Unit: "kg", UnitPrice: price("120.0000"), CostPrice: ptr(price("95.0000")), MRP: ptr(price("135.0000")), QuantityInStock: 80},
		{Code: "PRD00002", Barcode: "8901001000028", Name: "Full Cream Milk 1L", Brand: "Amul", Unit: "litre", UnitPrice: price("66.0000"), CostPrice: ptr(price("58.0000")), MRP: ptr(price("68.0000")), QuantityInStock: 50},
		{Code: "PRD00003", Barcode: "8901001000035", Name: "Green Tea 100g", Brand: "Lipton", Unit: "piece", UnitPrice: price("145.0000"), CostPrice: ptr(price("110.0000")), MRP: ptr(price("160.0000")), QuantityInStock: 25},
		{Code: "PRD00004", Barcode: "8901001000042", Name: "Potato Chips 90g", Brand: "Lays", Unit: "piece", UnitPrice: price("30.0000"), CostPrice: ptr(price("22.0000")), MRP: ptr(price("30.0000")), QuantityInStock: 120},
	}
	productCategory := map[string]string{
		"PRD00001": "Groceries",
		"PRD00002": "Dairy & Eggs",
		"PRD00003": "Beverages",
		"PRD00004": "Snacks",
	}
	for _, req := range products {
		if cat, ok := categoryIDs[productCategory[req.Code]]; ok {
			id := cat.ID
			req.CategoryID = &id
		}
		if _, err := productService.Create(ctx, req); err != nil && !isAlreadyExists(err) {
			return fmt.Errorf("product %s: %w", req.Code, err)
		}
	}

	log.Info("Demo rows inserted",
		zap.Int("users", len(users)),
		zap.Int("suppliers", len(suppliers)),
		zap.Int("employees", len(employees)),
		zap.Int("categories", len(categories)),
		zap.Int("customers", len(customers)),
		zap.Int("products", len(products)),
	)
	return nil
}
