package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// MovementRepository persists the append-only stock audit trail
type MovementRepository interface {
	Save(ctx context.Context, movement *Movement) error
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Movement, error)
	FindByDateRange(ctx context.Context, from, to time.Time, filter shared.Filter) ([]Movement, error)
}
