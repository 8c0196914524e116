package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/identity"
	"github.com/pos/backend/internal/domain/shared"
)

// setupUserTestDB creates an in-memory SQLite database whose users table
// mirrors the migrated schema column for column.
func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'cashier',
			email TEXT,
			phone TEXT,
			is_active INTEGER NOT NULL DEFAULT 1,
			last_login DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func mustNewUser(t *testing.T, username string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, "secret123", role)
	require.NoError(t, err)
	return user
}

func TestUserRepositorySaveAndFindByUsername(t *testing.T) {
	repo := NewGormUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "admin", identity.RoleAdmin)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, identity.RoleAdmin, found.Role)
	assert.True(t, found.IsActive)
	assert.Nil(t, found.LastLogin)
}

func TestUserRepositoryPersistsLastLogin(t *testing.T) {
	repo := NewGormUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	user := mustNewUser(t, "cashier1", identity.RoleCashier)
	require.NoError(t, repo.Save(ctx, user))

	loginAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	user.RecordLogin(loginAt)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByUsername(ctx, "cashier1")
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.True(t, found.LastLogin.Equal(loginAt))
}

func TestUserRepositoryFindByUsernameNotFound(t *testing.T) {
	repo := NewGormUserRepository(setupUserTestDB(t))

	_, err := repo.FindByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
