package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username     string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'cashier'"`
	Email        string        `gorm:"type:varchar(200)"`
	Phone        string        `gorm:"type:varchar(20)"`
	IsActive     bool          `gorm:"not null;default:true;index"`
	LastLogin    *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		Email:        m.Email,
		Phone:        m.Phone,
		IsActive:     m.IsActive,
		LastLogin:    m.LastLogin,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.Email = u.Email
	m.Phone = u.Phone
	m.IsActive = u.IsActive
	m.LastLogin = u.LastLogin
}

// EmployeeModel is the persistence model for the Employee domain entity.
type EmployeeModel struct {
	BaseModel
	Code       string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name       string              `gorm:"type:varchar(200);not null;index"`
	Email      string              `gorm:"type:varchar(200)"`
	Phone      string              `gorm:"type:varchar(20)"`
	Position   identity.Position   `gorm:"type:varchar(30);not null"`
	Department identity.Department `gorm:"type:varchar(30);not null"`
	Salary     decimal.Decimal     `gorm:"type:decimal(12,4);not null;default:0"`
	HireDate   time.Time           `gorm:"type:date;not null"`
	IsActive   bool                `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee entity.
func (m *EmployeeModel) ToDomain() *identity.Employee {
	return &identity.Employee{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Position:   m.Position,
		Department: m.Department,
		Salary:     m.Salary,
		HireDate:   m.HireDate,
		IsActive:   m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Employee entity.
func (m *EmployeeModel) FromDomain(e *identity.Employee) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Code = e.Code
	m.Name = e.Name
	m.Email = e.Email
	m.Phone = e.Phone
	m.Position = e.Position
	m.Department = e.Department
	m.Salary = e.Salary
	m.HireDate = e.HireDate
	m.IsActive = e.IsActive
}
