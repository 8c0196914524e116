package identity

import (
	"fmt"
	"strings"
	"time"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Position is an employee's job title
type Position string

const (
	PositionManager    Position = "manager"
	PositionSupervisor Position = "supervisor"
	PositionCashier    Position = "cashier"
	PositionStockClerk Position = "stock_clerk"
	PositionSecurity   Position = "security"
	PositionCleaner    Position = "cleaner"
)

// ValidPosition reports whether the position is a known job title
func ValidPosition(p Position) bool {
	switch p {
	case PositionManager, PositionSupervisor, PositionCashier,
		PositionStockClerk, PositionSecurity, PositionCleaner:
		return true
	}
	return false
}

// Department is the organizational unit an employee belongs to
type Department string

const (
	DepartmentSales          Department = "sales"
	DepartmentInventory      Department = "inventory"
	DepartmentAdministration Department = "administration"
	DepartmentSecurity       Department = "security"
	DepartmentMaintenance    Department = "maintenance"
)

// ValidDepartment reports whether the department is known
func ValidDepartment(d Department) bool {
	switch d {
	case DepartmentSales, DepartmentInventory, DepartmentAdministration,
		DepartmentSecurity, DepartmentMaintenance:
		return true
	}
	return false
}

// Employee is an HR record. A login account for the same person is a
// separate User entity.
type Employee struct {
	shared.BaseEntity
	Code       string
	Name       string
	Email      string
	Phone      string
	Position   Position
	Department Department
	Salary     decimal.Decimal
	HireDate   time.Time
	IsActive   bool
}

// NewEmployee creates an active employee
func NewEmployee(code, name string, position Position, department Department, salary decimal.Decimal, hireDate time.Time) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NAME", "Employee name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_CODE", "Employee code cannot be empty")
	}
	if !ValidPosition(position) {
		return nil, shared.NewDomainError("INVALID_POSITION", "Unknown position")
	}
	if !ValidDepartment(department) {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Unknown department")
	}
	if salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}

	return &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Code:       strings.ToUpper(code),
		Name:       name,
		Position:   position,
		Department: department,
		Salary:     salary,
		HireDate:   hireDate,
		IsActive:   true,
	}, nil
}

// GenerateEmployeeCode formats a sequential employee code, e.g. EMP00001
func GenerateEmployeeCode(seq int64) string {
	return fmt.Sprintf("EMP%05d", seq)
}

// Update changes contact and assignment details
func (e *Employee) Update(name, email, phone string, position Position, department Department) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_EMPLOYEE_NAME", "Employee name cannot be empty")
	}
	if !ValidPosition(position) {
		return shared.NewDomainError("INVALID_POSITION", "Unknown position")
	}
	if !ValidDepartment(department) {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Unknown department")
	}

	e.Name = name
	e.Email = email
	e.Phone = phone
	e.Position = position
	e.Department = department
	e.Touch()
	return nil
}

// UpdateSalary changes the salary
func (e *Employee) UpdateSalary(salary decimal.Decimal) error {
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_SALARY", "Salary cannot be negative")
	}
	e.Salary = salary
	e.Touch()
	return nil
}

// Deactivate soft-deletes the employee
func (e *Employee) Deactivate() {
	e.IsActive = false
	e.Touch()
}

// Activate restores a soft-deleted employee
func (e *Employee) Activate() {
	e.IsActive = true
	e.Touch()
}
