package system

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
	"github.com/pos/backend/internal/infrastructure/config"
)

// MockSettingRepository is a mock implementation of SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*system.Setting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.Setting, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindByKey(ctx context.Context, key string) (*system.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*system.Setting), args.Error(1)
}

func (m *MockSettingRepository) FindByCategory(ctx context.Context, category string) ([]system.Setting, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]system.Setting), args.Error(1)
}

func (m *MockSettingRepository) Save(ctx context.Context, setting *system.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSettingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Save(ctx context.Context, log *system.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]system.AuditLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]system.AuditLog), args.Error(1)
}

func businessConfig() config.BusinessConfig {
	return config.BusinessConfig{
		TaxRate:           18,
		DiscountThreshold: 1000,
		DiscountRate:      0.10,
		LowStockThreshold: 10,
		ExpiryAlertDays:   30,
	}
}

func TestSettingService_Get(t *testing.T) {
	t.Run("returns the stored row", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil, businessConfig(), nil)

		stored, err := system.NewSetting("tax_rate", "12", system.SettingDecimal, "", "billing")
		assert.NoError(t, err)
		settingRepo.On("FindByKey", mock.Anything, "tax_rate").Return(stored, nil)

		resp, err := service.Get(context.Background(), "tax_rate")

		assert.NoError(t, err)
		assert.Equal(t, "12", resp.Value)
	})

	t.Run("falls back to the configured default", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil, businessConfig(), nil)

		settingRepo.On("FindByKey", mock.Anything, "tax_rate").Return(nil, shared.ErrNotFound)

		resp, err := service.Get(context.Background(), "tax_rate")

		assert.NoError(t, err)
		assert.Equal(t, "18", resp.Value)
	})

	t.Run("unknown key is not found", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil, businessConfig(), nil)

		settingRepo.On("FindByKey", mock.Anything, "no_such_key").Return(nil, shared.ErrNotFound)

		_, err := service.Get(context.Background(), "no_such_key")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSettingService_Seed(t *testing.T) {
	settingRepo := new(MockSettingRepository)
	service := NewSettingService(settingRepo, nil, businessConfig(), nil)

	existing, err := system.NewSetting("tax_rate", "18", system.SettingDecimal, "", "billing")
	assert.NoError(t, err)
	settingRepo.On("FindByKey", mock.Anything, "tax_rate").Return(existing, nil)
	settingRepo.On("FindByKey", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	settingRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err = service.Seed(context.Background())

	assert.NoError(t, err)
	settingRepo.AssertNumberOfCalls(t, "Save", 6)
}

func TestSettingService_Update(t *testing.T) {
	t.Run("validates the value against the setting type", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		service := NewSettingService(settingRepo, nil, businessConfig(), nil)

		stored, err := system.NewSetting("low_stock_threshold", "10", system.SettingInteger, "", "inventory")
		assert.NoError(t, err)
		settingRepo.On("FindByKey", mock.Anything, "low_stock_threshold").Return(stored, nil)

		_, err = service.Update(context.Background(), "low_stock_threshold", UpdateSettingRequest{Value: "lots"})

		assert.Error(t, err)
		settingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("writes the change and its audit record", func(t *testing.T) {
		settingRepo := new(MockSettingRepository)
		auditRepo := new(MockAuditLogRepository)
		service := NewSettingService(settingRepo, auditRepo, businessConfig(), nil)

		stored, err := system.NewSetting("store_name", "My Store", system.SettingString, "", "store")
		assert.NoError(t, err)
		settingRepo.On("FindByKey", mock.Anything, "store_name").Return(stored, nil)
		settingRepo.On("Save", mock.Anything, stored).Return(nil)
		auditRepo.On("Save", mock.Anything, mock.MatchedBy(func(l *system.AuditLog) bool {
			return l.Action == "update" && l.TableName == "system_settings"
		})).Return(nil)

		resp, err := service.Update(context.Background(), "store_name", UpdateSettingRequest{Value: "Corner Mart"})

		assert.NoError(t, err)
		assert.Equal(t, "Corner Mart", resp.Value)
		auditRepo.AssertExpectations(t)
	})
}
