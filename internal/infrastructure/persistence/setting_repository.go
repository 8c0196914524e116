package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
)

// GormSettingRepository implements SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// FindByID finds a setting by its ID
func (r *GormSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*system.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByKey finds a setting by its key
func (r *GormSettingRepository) FindByKey(ctx context.Context, key string) (*system.Setting, error) {
	var model models.SettingModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory finds all settings in a category
func (r *GormSettingRepository) FindByCategory(ctx context.Context, category string) ([]system.Setting, error) {
	var settingModels []models.SettingModel
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]system.Setting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = *model.ToDomain()
	}
	return settings, nil
}

// FindAll finds all settings matching the filter
func (r *GormSettingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.Setting, error) {
	var settingModels []models.SettingModel
	query := r.db.WithContext(ctx).Model(&models.SettingModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("key ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	query = query.Order("category ASC, key ASC")

	if err := query.Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]system.Setting, len(settingModels))
	for i, model := range settingModels {
		settings[i] = *model.ToDomain()
	}
	return settings, nil
}

// Save creates or updates a setting
func (r *GormSettingRepository) Save(ctx context.Context, setting *system.Setting) error {
	var model models.SettingModel
	model.FromDomain(setting)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a setting
func (r *GormSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SettingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts settings matching the filter
func (r *GormSettingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SettingModel{})
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSettingRepository implements SettingRepository
var _ system.SettingRepository = (*GormSettingRepository)(nil)
