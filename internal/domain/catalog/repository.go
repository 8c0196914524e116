package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// ProductRepository persists products
type ProductRepository interface {
	shared.Repository[Product]
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)
	FindLowStock(ctx context.Context, threshold int) ([]Product, error)
	FindExpiringWithin(ctx context.Context, days int) ([]Product, error)
	NextSequence(ctx context.Context) (int64, error)
}

// CategoryRepository persists categories
type CategoryRepository interface {
	shared.Repository[Category]
	FindByName(ctx context.Context, name string) (*Category, error)
}
