package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// TransactionRepository persists sale headers and their items
type TransactionRepository interface {
	shared.Repository[Transaction]
	FindByNumber(ctx context.Context, number string) (*Transaction, error)
	FindByDateRange(ctx context.Context, from, to time.Time, filter shared.Filter) ([]Transaction, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Transaction, error)
}
