package identity

import (
	"strings"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role controls which parts of the system a login account can reach
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// ValidRole reports whether the role is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// User is a login account, distinct from the Employee HR record
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	Role         Role
	Email        string
	Phone        string
	IsActive     bool
	LastLogin    *time.Time
}

// NewUser creates an active user with a bcrypt password hash
func NewUser(username, password string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if !ValidRole(role) {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be admin, manager or cashier")
	}

	u := &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Role:       role,
		IsActive:   true,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword verifies a candidate password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangeRole assigns a new role
func (u *User) ChangeRole(role Role) error {
	if !ValidRole(role) {
		return shared.NewDomainError("INVALID_ROLE", "Role must be admin, manager or cashier")
	}
	u.Role = role
	u.Touch()
	return nil
}

// RecordLogin stamps the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLogin = &at
	u.UpdatedAt = at
}

// Deactivate disables the login account
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}

// Activate re-enables the login account
func (u *User) Activate() {
	u.IsActive = true
	u.Touch()
}
