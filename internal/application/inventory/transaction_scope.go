package inventory

import (
	"context"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
)

// StockScope provides transactional access to the repositories a stock
// change touches, so the product quantity and its movement row commit
// or roll back together.
type StockScope interface {
	Execute(ctx context.Context, fn func(repos StockRepositories) error) error
}

// StockRepositories exposes the repositories scoped to the current transaction
type StockRepositories interface {
	ProductRepo() catalog.ProductRepository
	MovementRepo() inventory.MovementRepository
}

// NoOpStockScope runs the function without a real transaction
type NoOpStockScope struct {
	productRepo  catalog.ProductRepository
	movementRepo inventory.MovementRepository
}

// NewNoOpStockScope creates a NoOpStockScope over the given repositories
func NewNoOpStockScope(productRepo catalog.ProductRepository, movementRepo inventory.MovementRepository) *NoOpStockScope {
	return &NoOpStockScope{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpStockScope) Execute(_ context.Context, fn func(repos StockRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpStockScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// MovementRepo returns the movement repository
func (s *NoOpStockScope) MovementRepo() inventory.MovementRepository {
	return s.movementRepo
}

// Ensure NoOpStockScope implements both interfaces
var (
	_ StockScope        = (*NoOpStockScope)(nil)
	_ StockRepositories = (*NoOpStockScope)(nil)
)
