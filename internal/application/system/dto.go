package system

import (
	"time"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/system"
)

// UpdateSettingRequest changes one setting's value
type UpdateSettingRequest struct {
	Value     string     `json:"value" binding:"required"`
	UpdatedBy *uuid.UUID `json:"updated_by"`
}

// SettingResponse represents a setting in API responses
type SettingResponse struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsEditable  bool      `json:"is_editable"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToSettingResponse converts a domain Setting to a SettingResponse
func ToSettingResponse(s *system.Setting) SettingResponse {
	return SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Type:        string(s.Type),
		Description: s.Description,
		Category:    s.Category,
		IsEditable:  s.IsEditable,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSettingResponses converts a slice of domain Settings
func ToSettingResponses(settings []system.Setting) []SettingResponse {
	responses := make([]SettingResponse, len(settings))
	for i := range settings {
		responses[i] = ToSettingResponse(&settings[i])
	}
	return responses
}

// AuditListFilter represents filtering options for the audit trail
type AuditListFilter struct {
	Page     int        `form:"page"`
	PageSize int        `form:"page_size"`
	Action   string     `form:"action"`
	Table    string     `form:"table"`
	UserID   *uuid.UUID `form:"user_id"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// AuditLogResponse represents one audit record in API responses
type AuditLogResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	Action    string     `json:"action"`
	Table     string     `json:"table"`
	RecordID  *uuid.UUID `json:"record_id"`
	OldValues string     `json:"old_values,omitempty"`
	NewValues string     `json:"new_values,omitempty"`
	IPAddress string     `json:"ip_address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToAuditLogResponse converts a domain AuditLog to an AuditLogResponse
func ToAuditLogResponse(l *system.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:        l.ID,
		UserID:    l.UserID,
		Action:    l.Action,
		Table:     l.TableName,
		RecordID:  l.RecordID,
		OldValues: l.OldValues,
		NewValues: l.NewValues,
		IPAddress: l.IPAddress,
		CreatedAt: l.CreatedAt,
	}
}

// ToAuditLogResponses converts a slice of domain AuditLogs
func ToAuditLogResponses(logs []system.AuditLog) []AuditLogResponse {
	responses := make([]AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToAuditLogResponse(&logs[i])
	}
	return responses
}
