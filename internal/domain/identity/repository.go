package identity

import (
	"context"

	"github.com/pos/backend/internal/domain/shared"
)

// UserRepository persists login accounts
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// EmployeeRepository persists HR records
type EmployeeRepository interface {
	shared.Repository[Employee]
	FindByCode(ctx context.Context, code string) (*Employee, error)
	Search(ctx context.Context, term string, filter shared.Filter) ([]Employee, error)
	NextSequence(ctx context.Context) (int64, error)
}
