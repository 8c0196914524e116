package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create registers a new customer. Phone numbers are unique, so an
// existing number is rejected rather than silently merged.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	if _, err := s.customerRepo.FindByPhone(ctx, req.Phone); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this phone already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err := partner.NewCustomer(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Address != "" {
		if err := customer.Update(customer.Name, customer.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}
	customer.DateOfBirth = req.DateOfBirth

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByPhone retrieves a customer by phone number, the lookup used at the till
func (s *CustomerService) GetByPhone(ctx context.Context, phone string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) (shared.Paginated[CustomerResponse], error) {
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

	if filter.Tier != "" {
		domainFilter.Filters["tier"] = filter.Tier
	}
	if !filter.IncludeInactive {
		domainFilter.Filters["is_active"] = true
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[CustomerResponse]{}, err
	}

	return shared.NewPaginated(ToCustomerResponses(customers), total, domainFilter.Page, domainFilter.PageSize), nil
}

// TopCustomers lists the highest-spending active customers
func (s *CustomerService) TopCustomers(ctx context.Context, limit int) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.TopByPurchases(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Update updates a customer's contact details
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil && *req.Phone != customer.Phone {
		if existing, err := s.customerRepo.FindByPhone(ctx, *req.Phone); err == nil && existing.ID != id {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this phone already exists")
		} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	name, phone, email, address := customer.Name, customer.Phone, customer.Email, customer.Address
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Address != nil {
		address = *req.Address
	}
	if err := customer.Update(name, phone, email, address); err != nil {
		return nil, err
	}
	if req.DateOfBirth != nil {
		customer.DateOfBirth = req.DateOfBirth
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// RedeemPoints deducts loyalty points from a customer's balance
func (s *CustomerService) RedeemPoints(ctx context.Context, id uuid.UUID, req RedeemPointsRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.RedeemPoints(req.Points); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Deactivate soft deletes a customer, keeping their purchase history
func (s *CustomerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Deactivate()
	return s.customerRepo.Save(ctx, customer)
}

// Activate re-enables a deactivated customer
func (s *CustomerService) Activate(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	customer.Activate()
	return s.customerRepo.Save(ctx, customer)
}
