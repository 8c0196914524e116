package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/identity"
	"github.com/pos/backend/internal/infrastructure/auth"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the issued token and the authenticated user
type LoginResponse struct {
	Token *auth.Token  `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest represents a password change for the current user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// CreateUserRequest represents a request to create a login account
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin manager cashier"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"max=20"`
}

// UpdateUserRequest represents a request to update a login account
type UpdateUserRequest struct {
	Role  *string `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	Email *string `json:"email" binding:"omitempty,email,max=200"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToUserResponse converts a domain User to a UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Email:     u.Email,
		Phone:     u.Phone,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain Users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// CreateEmployeeRequest represents a request to register an employee
type CreateEmployeeRequest struct {
	Code       string          `json:"code" binding:"max=50"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Email      string          `json:"email" binding:"omitempty,email,max=200"`
	Phone      string          `json:"phone" binding:"max=20"`
	Position   string          `json:"position" binding:"required"`
	Department string          `json:"department" binding:"required"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hire_date" binding:"required"`
}

// UpdateEmployeeRequest represents a request to update an employee
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Email      *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone      *string          `json:"phone" binding:"omitempty,max=20"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *decimal.Decimal `json:"salary"`
}

// EmployeeListFilter represents filtering options for listing employees
type EmployeeListFilter struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir"`
	Search     string `form:"search"`
	Position   string `form:"position"`
	Department string `form:"department"`
	// Soft-deleted rows are hidden unless explicitly requested.
	IncludeInactive bool `form:"include_inactive"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   time.Time       `json:"hire_date"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToEmployeeResponse converts a domain Employee to an EmployeeResponse
func ToEmployeeResponse(e *identity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   string(e.Position),
		Department: string(e.Department),
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToEmployeeResponses converts a slice of domain Employees
func ToEmployeeResponses(employees []identity.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}
