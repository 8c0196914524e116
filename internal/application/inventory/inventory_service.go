package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
)

// InventoryService handles manual stock changes and the movement ledger
type InventoryService struct {
	scope        StockScope
	movementRepo inventory.MovementRepository
	logger       *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(scope StockScope, movementRepo inventory.MovementRepository, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		scope:        scope,
		movementRepo: movementRepo,
		logger:       logger,
	}
}

// referenceFor maps a manual movement type to the business event it records
func referenceFor(t inventory.MovementType) inventory.ReferenceType {
	switch t {
	case inventory.MovementIn:
		return inventory.ReferencePurchase
	case inventory.MovementDamaged, inventory.MovementExpired:
		return inventory.ReferenceWaste
	default:
		return inventory.ReferenceAdjustment
	}
}

// Adjust applies a manual stock change and records its movement in the
// same transaction. An "adjustment" sets the stock to NewStock; every
// other type shifts it by Quantity in the type's direction.
func (s *InventoryService) Adjust(ctx context.Context, req StockAdjustmentRequest) (*MovementResponse, error) {
	movementType := inventory.MovementType(req.Type)
	if !inventory.ValidMovementType(movementType) {
		return nil, shared.NewDomainError("INVALID_MOVEMENT", "Unknown movement type")
	}

	var response MovementResponse
	err := s.scope.Execute(ctx, func(repos StockRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, req.ProductID)
		if err != nil {
			return err
		}

		quantity := req.Quantity
		reason := req.Reason
		if movementType == inventory.MovementAdjustment {
			if req.NewStock == nil {
				return shared.NewDomainError("INVALID_MOVEMENT", "Adjustment requires new_stock")
			}
			diff := *req.NewStock - product.QuantityInStock
			if diff == 0 {
				return shared.NewDomainError("INVALID_MOVEMENT", "Stock is already at the requested level")
			}
			quantity = diff
			if quantity < 0 {
				quantity = -quantity
			}
			reason = fmt.Sprintf("set stock %d -> %d; %s", product.QuantityInStock, *req.NewStock, req.Reason)
			if err := product.SetStock(*req.NewStock); err != nil {
				return err
			}
		}

		movement, err := inventory.NewMovement(product.ID, movementType, quantity,
			referenceFor(movementType), nil, req.EmployeeID, reason)
		if err != nil {
			return err
		}
		movement.CostPerUnit = product.CostPrice

		if delta := movement.Delta(); delta != 0 {
			if err := product.AdjustStock(delta); err != nil {
				return err
			}
		}

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		if err := repos.MovementRepo().Save(ctx, movement); err != nil {
			return err
		}

		s.logger.Info("Stock adjusted",
			zap.String("product", product.Code),
			zap.String("type", string(movementType)),
			zap.Int("quantity", movement.Quantity),
			zap.Int("stock_after", product.QuantityInStock))

		response = ToMovementResponse(movement)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Movements lists the movement ledger for a product or a date range
func (s *InventoryService) Movements(ctx context.Context, filter MovementListFilter) ([]MovementResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.ReferenceType != "" {
		domainFilter.Filters["reference_type"] = filter.ReferenceType
	}

	var (
		movements []inventory.Movement
		err       error
	)
	switch {
	case filter.ProductID != nil && *filter.ProductID != uuid.Nil:
		movements, err = s.movementRepo.FindByProduct(ctx, *filter.ProductID, domainFilter)
	default:
		from := time.Time{}
		to := time.Now().Add(24 * time.Hour)
		if filter.From != nil {
			from = *filter.From
		}
		if filter.To != nil {
			to = *filter.To
		}
		movements, err = s.movementRepo.FindByDateRange(ctx, from, to, domainFilter)
	}
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}
