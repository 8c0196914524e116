package system

import (
	"context"

	"github.com/pos/backend/internal/domain/shared"
)

// SettingRepository persists system settings
type SettingRepository interface {
	shared.Repository[Setting]
	FindByKey(ctx context.Context, key string) (*Setting, error)
	FindByCategory(ctx context.Context, category string) ([]Setting, error)
}

// AuditLogRepository persists the append-only action trail
type AuditLogRepository interface {
	Save(ctx context.Context, log *AuditLog) error
	FindAll(ctx context.Context, filter shared.Filter) ([]AuditLog, error)
}
