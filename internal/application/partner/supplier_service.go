package partner

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/shared/valueobject"
)

// SupplierService handles supplier-related business operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
	}
}

// Create registers a new supplier. An empty code is generated from the
// next sequence number.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		seq, err := s.supplierRepo.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		code = partner.GenerateSupplierCode(seq)
	} else {
		if _, err := s.supplierRepo.FindByCode(ctx, code); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this code already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	supplier, err := partner.NewSupplier(code, req.Name, req.ContactPerson, req.Phone)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Address != "" || req.City != "" || req.State != "" || req.Pincode != "" {
		if err := supplier.Update(supplier.Name, supplier.ContactPerson, supplier.Phone,
			req.Email, req.Address, req.City, req.State, req.Pincode); err != nil {
			return nil, err
		}
	}
	if req.GSTNumber != "" || req.TaxID != "" || req.PaymentTerms != "" {
		if err := supplier.UpdateTerms(req.GSTNumber, req.TaxID, req.PaymentTerms, supplier.CreditLimit); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) (shared.Paginated[SupplierResponse], error) {
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

	if filter.City != "" {
		domainFilter.Filters["city"] = filter.City
	}
	if filter.State != "" {
		domainFilter.Filters["state"] = filter.State
	}
	if !filter.IncludeInactive {
		domainFilter.Filters["is_active"] = true
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}
	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[SupplierResponse]{}, err
	}

	return shared.NewPaginated(ToSupplierResponses(suppliers), total, domainFilter.Page, domainFilter.PageSize), nil
}

// Update updates a supplier's details and trade terms
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := supplier.Name
	contactPerson, phone := supplier.ContactPerson, supplier.Phone
	email, address := supplier.Email, supplier.Address
	city, state, pincode := supplier.City, supplier.State, supplier.Pincode
	if req.Name != nil {
		name = *req.Name
	}
	if req.ContactPerson != nil {
		contactPerson = *req.ContactPerson
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
	if req.City != nil {
		city = *req.City
	}
	if req.State != nil {
		state = *req.State
	}
	if req.Pincode != nil {
		pincode = *req.Pincode
	}
	if err := supplier.Update(name, contactPerson, phone, email, address, city, state, pincode); err != nil {
		return nil, err
	}

	if req.GSTNumber != nil || req.TaxID != nil || req.PaymentTerms != nil || req.CreditLimit != nil {
		gst, taxID, terms, limit := supplier.GSTNumber, supplier.TaxID, supplier.PaymentTerms, supplier.CreditLimit
		if req.GSTNumber != nil {
			gst = *req.GSTNumber
		}
		if req.TaxID != nil {
			taxID = *req.TaxID
		}
		if req.PaymentTerms != nil {
			terms = *req.PaymentTerms
		}
		if req.CreditLimit != nil {
			limit = valueobject.NewMoneyINR(*req.CreditLimit)
		}
		if err := supplier.UpdateTerms(gst, taxID, terms, limit); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Deactivate soft deletes a supplier
func (s *SupplierService) Deactivate(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}

// Activate re-enables a deactivated supplier
func (s *SupplierService) Activate(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	supplier.Activate()
	return s.supplierRepo.Save(ctx, supplier)
}
