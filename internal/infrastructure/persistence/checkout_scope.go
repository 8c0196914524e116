package persistence

import (
	"context"

	"gorm.io/gorm"

	appbilling "github.com/pos/backend/internal/application/billing"
	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/partner"
)

// GormCheckoutScope implements CheckoutScope using GORM transactions
type GormCheckoutScope struct {
	db *gorm.DB
}

// NewGormCheckoutScope creates a new GormCheckoutScope
func NewGormCheckoutScope(db *gorm.DB) *GormCheckoutScope {
	return &GormCheckoutScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormCheckoutScope) Execute(ctx context.Context, fn func(repos appbilling.CheckoutRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutRepositories{tx: tx})
	})
}

type gormCheckoutRepositories struct {
	tx *gorm.DB
}

func (r *gormCheckoutRepositories) TransactionRepo() billing.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

func (r *gormCheckoutRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormCheckoutRepositories) MovementRepo() inventory.MovementRepository {
	return NewGormMovementRepository(r.tx)
}

func (r *gormCheckoutRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// Ensure the scope satisfies the application contracts
var (
	_ appbilling.CheckoutScope        = (*GormCheckoutScope)(nil)
	_ appbilling.CheckoutRepositories = (*gormCheckoutRepositories)(nil)
)
