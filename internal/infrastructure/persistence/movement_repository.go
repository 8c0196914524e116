package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
)

// GormMovementRepository implements MovementRepository using GORM.
// Movements are append only, so there is no update or delete path.
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Save records a new inventory movement
func (r *GormMovementRepository) Save(ctx context.Context, movement *inventory.Movement) error {
	var model models.MovementModel
	model.FromDomain(movement)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByProduct finds movements for a product, newest first
func (r *GormMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).Model(&models.MovementModel{}).
		Where("product_id = ?", productID)
	return r.find(query, filter)
}

// FindByDateRange finds movements within [from, to)
func (r *GormMovementRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.Filter) ([]inventory.Movement, error) {
	query := r.db.WithContext(ctx).Model(&models.MovementModel{}).
		Where("movement_date >= ? AND movement_date < ?", from, to)
	return r.find(query, filter)
}

func (r *GormMovementRepository) find(query *gorm.DB, filter shared.Filter) ([]inventory.Movement, error) {
	if mt, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", mt)
	}
	if rt, ok := filter.Filters["reference_type"]; ok {
		query = query.Where("reference_type = ?", rt)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	query = query.Order("movement_date DESC")

	var movementModels []models.MovementModel
	if err := query.Find(&movementModels).Error; err != nil {
		return nil, err
	}

	movements := make([]inventory.Movement, len(movementModels))
	for i, model := range movementModels {
		movements[i] = *model.ToDomain()
	}
	return movements, nil
}

// Ensure GormMovementRepository implements MovementRepository
var _ inventory.MovementRepository = (*GormMovementRepository)(nil)
