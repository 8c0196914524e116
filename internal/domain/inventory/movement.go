package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType is the direction or nature of a stock change
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementDamaged    MovementType = "damaged"
	MovementExpired    MovementType = "expired"
)

// ValidMovementType reports whether the movement type is known
func ValidMovementType(t MovementType) bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment, MovementDamaged, MovementExpired:
		return true
	}
	return false
}

// ReferenceType names the business event that caused a movement
type ReferenceType string

const (
	ReferencePurchase   ReferenceType = "purchase"
	ReferenceSale       ReferenceType = "sale"
	ReferenceReturn     ReferenceType = "return"
	ReferenceAdjustment ReferenceType = "adjustment"
	ReferenceWaste      ReferenceType = "waste"
)

// Movement is one append-only stock audit row. Movements are never
// updated or deleted after being written.
type Movement struct {
	shared.BaseEntity
	ProductID     uuid.UUID
	Type          MovementType
	Quantity      int
	ReferenceType ReferenceType
	ReferenceID   *uuid.UUID
	Reason        string
	EmployeeID    *uuid.UUID
	MovementDate  time.Time
	CostPerUnit   decimal.Decimal
}

// NewMovement records a stock change
func NewMovement(productID uuid.UUID, movementType MovementType, quantity int, refType ReferenceType, refID, employeeID *uuid.UUID, reason string) (*Movement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MOVEMENT", "Movement requires a product")
	}
	if !ValidMovementType(movementType) {
		return nil, shared.NewDomainError("INVALID_MOVEMENT", "Unknown movement type")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_MOVEMENT", "Movement quantity must be positive")
	}

	base := shared.NewBaseEntity()
	return &Movement{
		BaseEntity:    base,
		ProductID:     productID,
		Type:          movementType,
		Quantity:      quantity,
		ReferenceType: refType,
		ReferenceID:   refID,
		Reason:        reason,
		EmployeeID:    employeeID,
		MovementDate:  base.CreatedAt,
		CostPerUnit:   decimal.Zero,
	}, nil
}

// Delta returns the signed stock effect of the movement
func (m *Movement) Delta() int {
	switch m.Type {
	case MovementIn:
		return m.Quantity
	case MovementOut, MovementDamaged, MovementExpired:
		return -m.Quantity
	default:
		// adjustments carry their sign in the reason and are applied
		// explicitly by the caller
		return 0
	}
}
