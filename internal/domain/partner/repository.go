package partner

import (
	"context"

	"github.com/pos/backend/internal/domain/shared"
)

// CustomerRepository persists customers
type CustomerRepository interface {
	shared.Repository[Customer]
	FindByPhone(ctx context.Context, phone string) (*Customer, error)
	Search(ctx context.Context, term string, filter shared.Filter) ([]Customer, error)
	TopByPurchases(ctx context.Context, limit int) ([]Customer, error)
}

// SupplierRepository persists suppliers
type SupplierRepository interface {
	shared.Repository[Supplier]
	FindByCode(ctx context.Context, code string) (*Supplier, error)
	Search(ctx context.Context, term string, filter shared.Filter) ([]Supplier, error)
	NextSequence(ctx context.Context) (int64, error)
}
