package billing

import (
	"context"

	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/partner"
)

// CheckoutScope provides transactional access to the repositories a
// checkout touches. Everything executed within the scope commits or
// rolls back as one database transaction.
type CheckoutScope interface {
	Execute(ctx context.Context, fn func(repos CheckoutRepositories) error) error
}

// CheckoutRepositories exposes the repositories scoped to the current
// transaction. The sale header and items, the stock decrements, the
// movement rows and the loyalty update all ride the same transaction.
type CheckoutRepositories interface {
	TransactionRepo() billing.TransactionRepository
	ProductRepo() catalog.ProductRepository
	MovementRepo() inventory.MovementRepository
	CustomerRepo() partner.CustomerRepository
}

// NoOpCheckoutScope runs the function without a real transaction.
// Useful in tests where the repositories are mocks anyway.
type NoOpCheckoutScope struct {
	transactionRepo billing.TransactionRepository
	productRepo     catalog.ProductRepository
	movementRepo    inventory.MovementRepository
	customerRepo    partner.CustomerRepository
}

// NewNoOpCheckoutScope creates a NoOpCheckoutScope over the given repositories
func NewNoOpCheckoutScope(
	transactionRepo billing.TransactionRepository,
	productRepo catalog.ProductRepository,
	movementRepo inventory.MovementRepository,
	customerRepo partner.CustomerRepository,
) *NoOpCheckoutScope {
	return &NoOpCheckoutScope{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		movementRepo:    movementRepo,
		customerRepo:    customerRepo,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpCheckoutScope) Execute(_ context.Context, fn func(repos CheckoutRepositories) error) error {
	return fn(s)
}

// TransactionRepo returns the transaction repository
func (s *NoOpCheckoutScope) TransactionRepo() billing.TransactionRepository {
	return s.transactionRepo
}

// ProductRepo returns the product repository
func (s *NoOpCheckoutScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// MovementRepo returns the movement repository
func (s *NoOpCheckoutScope) MovementRepo() inventory.MovementRepository {
	return s.movementRepo
}

// CustomerRepo returns the customer repository
func (s *NoOpCheckoutScope) CustomerRepo() partner.CustomerRepository {
	return s.customerRepo
}

// Ensure NoOpCheckoutScope implements both interfaces
var (
	_ CheckoutScope        = (*NoOpCheckoutScope)(nil)
	_ CheckoutRepositories = (*NoOpCheckoutScope)(nil)
)
