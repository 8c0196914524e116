package models

import (
	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/system"
)

// SettingModel is the persistence model for a system setting.
type SettingModel struct {
	BaseModel
	Key         string             `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string             `gorm:"type:text;not null"`
	Type        system.SettingType `gorm:"type:varchar(20);not null;default:'string'"`
	Description string             `gorm:"type:text"`
	Category    string             `gorm:"type:varchar(50);index"`
	IsEditable  bool               `gorm:"not null;default:true"`
	UpdatedBy   *uuid.UUID         `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "system_settings"
}

// ToDomain converts the persistence model to a domain Setting entity.
func (m *SettingModel) ToDomain() *system.Setting {
	return &system.Setting{
		BaseEntity:  m.BaseModel.ToDomain(),
		Key:         m.Key,
		Value:       m.Value,
		Type:        m.Type,
		Description: m.Description,
		Category:    m.Category,
		IsEditable:  m.IsEditable,
		UpdatedBy:   m.UpdatedBy,
	}
}

// FromDomain populates the persistence model from a domain Setting entity.
func (m *SettingModel) FromDomain(s *system.Setting) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Key = s.Key
	m.Value = s.Value
	m.Type = s.Type
	m.Description = s.Description
	m.Category = s.Category
	m.IsEditable = s.IsEditable
	m.UpdatedBy = s.UpdatedBy
}

// AuditLogModel is the persistence model for an audit log entry.
type AuditLogModel struct {
	BaseModel
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Action    string     `gorm:"type:varchar(50);not null;index"`
	Table     string     `gorm:"type:varchar(50);column:table_name"`
	RecordID  *uuid.UUID `gorm:"type:uuid"`
	OldValues string     `gorm:"type:jsonb"`
	NewValues string     `gorm:"type:jsonb"`
	IPAddress string     `gorm:"type:varchar(45)"`
	UserAgent string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// ToDomain converts the persistence model to a domain AuditLog entity.
func (m *AuditLogModel) ToDomain() *system.AuditLog {
	return &system.AuditLog{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Action:     m.Action,
		TableName:  m.Table,
		RecordID:   m.RecordID,
		OldValues:  m.OldValues,
		NewValues:  m.NewValues,
		IPAddress:  m.IPAddress,
		UserAgent:  m.UserAgent,
	}
}

// FromDomain populates the persistence model from a domain AuditLog entity.
func (m *AuditLogModel) FromDomain(a *system.AuditLog) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.UserID = a.UserID
	m.Action = a.Action
	m.Table = a.TableName
	m.RecordID = a.RecordID
	m.OldValues = a.OldValues
	m.NewValues = a.NewValues
	m.IPAddress = a.IPAddress
	m.UserAgent = a.UserAgent
}
