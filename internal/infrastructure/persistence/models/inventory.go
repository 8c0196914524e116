package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/inventory"
)

// MovementModel is the persistence model for an inventory movement.
type MovementModel struct {
	BaseModel
	ProductID     uuid.UUID               `gorm:"type:uuid;not null;index"`
	Type          inventory.MovementType  `gorm:"type:varchar(20);not null"`
	Quantity      int                     `gorm:"not null"`
	ReferenceType inventory.ReferenceType `gorm:"type:varchar(20)"`
	ReferenceID   *uuid.UUID              `gorm:"type:uuid;index"`
	Reason        string                  `gorm:"type:text"`
	EmployeeID    *uuid.UUID              `gorm:"type:uuid"`
	MovementDate  time.Time               `gorm:"not null;index"`
	CostPerUnit   decimal.Decimal         `gorm:"type:decimal(12,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (MovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the persistence model to a domain Movement entity.
func (m *MovementModel) ToDomain() *inventory.Movement {
	return &inventory.Movement{
		BaseEntity:    m.BaseModel.ToDomain(),
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		EmployeeID:    m.EmployeeID,
		MovementDate:  m.MovementDate,
		CostPerUnit:   m.CostPerUnit,
	}
}

// FromDomain populates the persistence model from a domain Movement entity.
func (m *MovementModel) FromDomain(mv *inventory.Movement) {
	m.FromDomainBaseEntity(mv.BaseEntity)
	m.ProductID = mv.ProductID
	m.Type = mv.Type
	m.Quantity = mv.Quantity
	m.ReferenceType = mv.ReferenceType
	m.ReferenceID = mv.ReferenceID
	m.Reason = mv.Reason
	m.EmployeeID = mv.EmployeeID
	m.MovementDate = mv.MovementDate
	m.CostPerUnit = mv.CostPerUnit
}
