package system

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
)

// AuditService writes and queries the append-only action trail
type AuditService struct {
	auditRepo system.AuditLogRepository
	logger    *zap.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(auditRepo system.AuditLogRepository, logger *zap.Logger) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{auditRepo: auditRepo, logger: logger}
}

// Record writes one audit entry. Old and new values are serialized to
// JSON; a failed write is logged, never surfaced, so auditing cannot
// break the operation it describes.
func (s *AuditService) Record(ctx context.Context, userID *uuid.UUID, action, table string, recordID *uuid.UUID, oldValue, newValue interface{}) {
	entry, err := system.NewAuditLog(userID, action, table, recordID,
		marshalSnapshot(oldValue), marshalSnapshot(newValue))
	if err != nil {
		s.logger.Warn("Invalid audit entry", zap.String("action", action), zap.Error(err))
		return
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit record",
			zap.String("action", action),
			zap.String("table", table),
			zap.Error(err))
	}
}

func marshalSnapshot(value interface{}) string {
	if value == nil {
		return ""
	}
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

// List queries the audit trail with filtering and pagination
func (s *AuditService) List(ctx context.Context, filter AuditListFilter) ([]AuditLogResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Action != "" {
		domainFilter.Filters["action"] = filter.Action
	}
	if filter.Table != "" {
		domainFilter.Filters["table_name"] = filter.Table
	}
	if filter.UserID != nil {
		domainFilter.Filters["user_id"] = *filter.UserID
	}
	if filter.From != nil {
		domainFilter.Filters["from"] = *filter.From
	}
	if filter.To != nil {
		// Exclusive upper bound so a date covers its whole day.
		domainFilter.Filters["to"] = filter.To.AddDate(0, 0, 1)
	}

	logs, err := s.auditRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToAuditLogResponses(logs), nil
}
