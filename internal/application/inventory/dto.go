package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/inventory"
)

// StockAdjustmentRequest represents a manual stock change
type StockAdjustmentRequest struct {
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=in out adjustment damaged expired"`
	Quantity   int        `json:"quantity" binding:"required,gt=0"`
	NewStock   *int       `json:"new_stock"`
	Reason     string     `json:"reason" binding:"max=500"`
	EmployeeID *uuid.UUID `json:"employee_id"`
}

// MovementListFilter represents filtering options for listing movements
type MovementListFilter struct {
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	ProductID     *uuid.UUID `form:"product_id"`
	From          *time.Time `form:"from"`
	To            *time.Time `form:"to"`
	Type          string     `form:"type"`
	ReferenceType string     `form:"reference_type"`
}

// MovementResponse represents a stock movement in API responses
type MovementResponse struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      int             `json:"quantity"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   *uuid.UUID      `json:"reference_id"`
	Reason        string          `json:"reason"`
	EmployeeID    *uuid.UUID      `json:"employee_id"`
	MovementDate  time.Time       `json:"movement_date"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
}

// ToMovementResponse converts a domain Movement to a MovementResponse
func ToMovementResponse(m *inventory.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Type:          string(m.Type),
		Quantity:      m.Quantity,
		ReferenceType: string(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		EmployeeID:    m.EmployeeID,
		MovementDate:  m.MovementDate,
		CostPerUnit:   m.CostPerUnit,
	}
}

// ToMovementResponses converts a slice of domain Movements
func ToMovementResponses(movements []inventory.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToMovementResponse(&movements[i])
	}
	return responses
}
