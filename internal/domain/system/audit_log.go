package system

import (
	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
)

// AuditLog is one append-only record of a user action
type AuditLog struct {
	shared.BaseEntity
	UserID    *uuid.UUID
	Action    string
	TableName string
	RecordID  *uuid.UUID
	OldValues string
	NewValues string
	IPAddress string
	UserAgent string
}

// NewAuditLog records a user action. Old and new values are JSON
// snapshots serialized by the caller.
func NewAuditLog(userID *uuid.UUID, action, tableName string, recordID *uuid.UUID, oldValues, newValues string) (*AuditLog, error) {
	if action == "" {
		return nil, shared.NewDomainError("INVALID_AUDIT", "Audit action cannot be empty")
	}

	return &AuditLog{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Action:     action,
		TableName:  tableName,
		RecordID:   recordID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}, nil
}
