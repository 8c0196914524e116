package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
// Audit entries are append only.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GormAuditLogRepository
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Save records a new audit log entry
func (r *GormAuditLogRepository) Save(ctx context.Context, log *system.AuditLog) error {
	var model models.AuditLogModel
	model.FromDomain(log)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindAll finds audit log entries matching the filter, newest first
func (r *GormAuditLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.AuditLog, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if action, ok := filter.Filters["action"]; ok {
		query = query.Where("action = ?", action)
	}
	if table, ok := filter.Filters["table_name"]; ok {
		query = query.Where("table_name = ?", table)
	}
	if userID, ok := filter.Filters["user_id"]; ok {
		query = query.Where("user_id = ?", userID)
	}
	if from, ok := filter.Filters["from"]; ok {
		query = query.Where("created_at >= ?", from)
	}
	if to, ok := filter.Filters["to"]; ok {
		query = query.Where("created_at < ?", to)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	query = query.Order("created_at DESC")

	var logModels []models.AuditLogModel
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]system.AuditLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Ensure GormAuditLogRepository implements AuditLogRepository
var _ system.AuditLogRepository = (*GormAuditLogRepository)(nil)
