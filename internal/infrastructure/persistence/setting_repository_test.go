package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
)

// setupSettingTestDB creates an in-memory SQLite database for testing
func setupSettingTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE system_settings (
			id TEXT PRIMARY KEY,
			key TEXT NOT NULL UNIQUE,
			value TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'string',
			description TEXT,
			category TEXT,
			is_editable INTEGER NOT NULL DEFAULT 1,
			updated_by TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`).Error
	require.NoError(t, err)

	return db
}

func mustNewSetting(t *testing.T, key, value string, settingType system.SettingType, category string) *system.Setting {
	t.Helper()
	setting, err := system.NewSetting(key, value, settingType, "", category)
	require.NoError(t, err)
	return setting
}

func TestGormSettingRepository_SaveAndFindByKey(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	setting := mustNewSetting(t, "store.name", "Corner Mart", system.SettingString, "store")

	err := repo.Save(ctx, setting)
	require.NoError(t, err)

	retrieved, err := repo.FindByKey(ctx, "store.name")
	require.NoError(t, err)
	assert.Equal(t, setting.ID, retrieved.ID)
	assert.Equal(t, "Corner Mart", retrieved.Value)
	assert.Equal(t, system.SettingString, retrieved.Type)
	assert.True(t, retrieved.IsEditable)
}

func TestGormSettingRepository_FindByKeyTrimsWhitespace(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	setting := mustNewSetting(t, "billing.tax_rate", "18", system.SettingDecimal, "billing")
	require.NoError(t, repo.Save(ctx, setting))

	retrieved, err := repo.FindByKey(ctx, "  billing.tax_rate  ")
	require.NoError(t, err)
	assert.Equal(t, setting.ID, retrieved.ID)
}

func TestGormSettingRepository_FindByKeyNotFound(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	_, err := repo.FindByKey(ctx, "missing.key")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormSettingRepository_UpdateValue(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	setting := mustNewSetting(t, "billing.discount_rate", "0.05", system.SettingDecimal, "billing")
	require.NoError(t, repo.Save(ctx, setting))

	updatedBy := uuid.New()
	require.NoError(t, setting.UpdateValue("0.10", &updatedBy))
	require.NoError(t, repo.Save(ctx, setting))

	retrieved, err := repo.FindByID(ctx, setting.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.10", retrieved.Value)
	require.NotNil(t, retrieved.UpdatedBy)
	assert.Equal(t, updatedBy, *retrieved.UpdatedBy)
}

func TestGormSettingRepository_FindByCategory(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "store.name", "Corner Mart", system.SettingString, "store")))
	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "store.address", "12 Market Road", system.SettingString, "store")))
	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "billing.tax_rate", "18", system.SettingDecimal, "billing")))

	settings, err := repo.FindByCategory(ctx, "store")
	require.NoError(t, err)
	require.Len(t, settings, 2)
	// Ordered by key
	assert.Equal(t, "store.address", settings[0].Key)
	assert.Equal(t, "store.name", settings[1].Key)
}

func TestGormSettingRepository_CountByCategory(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "alerts.low_stock_threshold", "10", system.SettingInteger, "alerts")))
	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "alerts.expiry_days", "30", system.SettingInteger, "alerts")))
	require.NoError(t, repo.Save(ctx, mustNewSetting(t, "store.name", "Corner Mart", system.SettingString, "store")))

	count, err := repo.Count(ctx, shared.Filter{Filters: map[string]interface{}{"category": "alerts"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormSettingRepository_Delete(t *testing.T) {
	db := setupSettingTestDB(t)
	repo := NewGormSettingRepository(db)
	ctx := context.Background()

	setting := mustNewSetting(t, "store.phone", "9876543210", system.SettingString, "store")
	require.NoError(t, repo.Save(ctx, setting))

	require.NoError(t, repo.Delete(ctx, setting.ID))

	_, err := repo.FindByID(ctx, setting.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = repo.Delete(ctx, setting.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
