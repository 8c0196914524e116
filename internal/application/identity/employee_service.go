package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/identity"
	"github.com/pos/backend/internal/domain/shared"
)

// EmployeeService handles employee record management
type EmployeeService struct {
	employeeRepo identity.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo identity.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
	}
}

// Create registers a new employee. An empty code is generated from the
// next sequence number.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		seq, err := s.employeeRepo.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		code = identity.GenerateEmployeeCode(seq)
	} else {
		if _, err := s.employeeRepo.FindByCode(ctx, code); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Employee with this code already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	employee, err := identity.NewEmployee(code, req.Name,
		identity.Position(req.Position), identity.Department(req.Department),
		req.Salary, req.HireDate)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" {
		if err := employee.Update(employee.Name, req.Email, req.Phone,
			employee.Position, employee.Department); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByCode retrieves an employee by code
func (s *EmployeeService) GetByCode(ctx context.Context, code string) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees with filtering and pagination
func (s *EmployeeService) List(ctx context.Context, filter EmployeeListFilter) (shared.Paginated[EmployeeResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = filter.OrderBy
	domainFilter.OrderDir = filter.OrderDir
	domainFilter.Search = filter.Search

	if filter.Position != "" {
		domainFilter.Filters["position"] = filter.Position
	}
	if filter.Department != "" {
		domainFilter.Filters["department"] = filter.Department
	}
	if !filter.IncludeInactive {
		domainFilter.Filters["is_active"] = true
	}

	employees, err := s.employeeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[EmployeeResponse]{}, err
	}
	total, err := s.employeeRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[EmployeeResponse]{}, err
	}

	return shared.NewPaginated(ToEmployeeResponses(employees), total, domainFilter.Page, domainFilter.PageSize), nil
}

// Update updates an employee's details
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, email, phone := employee.Name, employee.Email, employee.Phone
	position, department := employee.Position, employee.Department
	if req.Name != nil {
		name = *req.Name
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Position != nil {
		position = identity.Position(*req.Position)
	}
	if req.Department != nil {
		department = identity.Department(*req.Department)
	}
	if err := employee.Update(name, email, phone, position, department); err != nil {
		return nil, err
	}

	if req.Salary != nil {
		if err := employee.UpdateSalary(*req.Salary); err != nil {
			return nil, err
		}
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Deactivate soft deletes an employee, keeping their sales history
func (s *EmployeeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employee.Deactivate()
	return s.employeeRepo.Save(ctx, employee)
}

// Activate re-enables a deactivated employee
func (s *EmployeeService) Activate(ctx context.Context, id uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	employee.Activate()
	return s.employeeRepo.Save(ctx, employee)
}
