package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/pos/backend/internal/application/inventory"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
)

// GormStockScope implements StockScope using GORM transactions
type GormStockScope struct {
	db *gorm.DB
}

// NewGormStockScope creates a new GormStockScope
func NewGormStockScope(db *gorm.DB) *GormStockScope {
	return &GormStockScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormStockScope) Execute(ctx context.Context, fn func(repos appinventory.StockRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStockRepositories{tx: tx})
	})
}

type gormStockRepositories struct {
	tx *gorm.DB
}

func (r *gormStockRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormStockRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

// Ensure the scope satisfies the application contracts
var (
	_ appinventory.StockScope        = (*GormStockScope)(nil)
	_ appinventory.StockRepositories = (*gormStockRepositories)(nil)
)
