package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product. An empty code is generated from the
// next sequence number.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		seq, err := s.productRepo.NextSequence(ctx)
		if err != nil {
			return nil, err
		}
		code = catalog.GenerateProductCode(seq)
	} else {
		if _, err := s.productRepo.FindByCode(ctx, code); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this code already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	if req.Barcode != "" {
		if _, err := s.productRepo.FindByBarcode(ctx, req.Barcode); err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this barcode already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category does not exist")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(code, req.Name, req.UnitPrice, req.QuantityInStock)
	if err != nil {
		return nil, err
	}

	product.Barcode = req.Barcode
	product.Description = req.Description
	product.CategoryID = req.CategoryID
	product.SupplierID = req.SupplierID
	product.BatchNumber = req.BatchNumber
	product.RackLocation = req.RackLocation
	product.ExpiryDate = req.ExpiryDate
	product.ManufacturingDate = req.ManufacturingDate

	if req.Brand != "" || req.Unit != "" {
		unit := product.Unit
		if req.Unit != "" {
			unit = req.Unit
		}
		if err := product.Update(product.Name, product.Description, req.Brand, unit); err != nil {
			return nil, err
		}
	}

	costPrice := product.CostPrice
	if req.CostPrice != nil {
		costPrice = *req.CostPrice
	}
	mrp := product.MRP
	if req.MRP != nil {
		mrp = *req.MRP
	}
	discount := product.DiscountPercentage
	if req.DiscountPercentage != nil {
		discount = *req.DiscountPercentage
	}
	taxRate := product.TaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	if err := product.UpdatePricing(product.UnitPrice, costPrice, mrp, discount, taxRate); err != nil {
		return nil, err
	}

	if req.MinStockLevel != nil || req.MaxStockLevel != nil || req.ReorderLevel != nil {
		minLevel, maxLevel, reorder := product.MinStockLevel, product.MaxStockLevel, product.ReorderLevel
		if req.MinStockLevel != nil {
			minLevel = *req.MinStockLevel
		}
		if req.MaxStockLevel != nil {
			maxLevel = *req.MaxStockLevel
		}
		if req.ReorderLevel != nil {
			reorder = *req.ReorderLevel
		}
		if err := product.UpdateStockLevels(minLevel, maxLevel, reorder); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByCode retrieves a product by code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetByBarcode retrieves a product by barcode, the fast path at the till
func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (shared.Paginated[ProductResponse], error) {
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

	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.Brand != "" {
		domainFilter.Filters["brand"] = filter.Brand
	}
	if !filter.IncludeInactive {
		domainFilter.Filters["is_active"] = true
	}
	if filter.InStock != nil {
		domainFilter.Filters["in_stock"] = *filter.InStock
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	return shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize), nil
}

// Update updates a product's details
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category does not exist")
			}
			return nil, err
		}
		product.CategoryID = req.CategoryID
	}
	if req.SupplierID != nil {
		product.SupplierID = req.SupplierID
	}

	name, description, brand, unit := product.Name, product.Description, product.Brand, product.Unit
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Brand != nil {
		brand = *req.Brand
	}
	if req.Unit != nil {
		unit = *req.Unit
	}
	if err := product.Update(name, description, brand, unit); err != nil {
		return nil, err
	}

	if req.UnitPrice != nil || req.CostPrice != nil || req.MRP != nil || req.DiscountPercentage != nil || req.TaxRate != nil {
		unitPrice, costPrice, mrp := product.UnitPrice, product.CostPrice, product.MRP
		discount, taxRate := product.DiscountPercentage, product.TaxRate
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		if req.CostPrice != nil {
			costPrice = *req.CostPrice
		}
		if req.MRP != nil {
			mrp = *req.MRP
		}
		if req.DiscountPercentage != nil {
			discount = *req.DiscountPercentage
		}
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		if err := product.UpdatePricing(unitPrice, costPrice, mrp, discount, taxRate); err != nil {
			return nil, err
		}
	}

	if req.MinStockLevel != nil || req.MaxStockLevel != nil || req.ReorderLevel != nil {
		minLevel, maxLevel, reorder := product.MinStockLevel, product.MaxStockLevel, product.ReorderLevel
		if req.MinStockLevel != nil {
			minLevel = *req.MinStockLevel
		}
		if req.MaxStockLevel != nil {
			maxLevel = *req.MaxStockLevel
		}
		if req.ReorderLevel != nil {
			reorder = *req.ReorderLevel
		}
		if err := product.UpdateStockLevels(minLevel, maxLevel, reorder); err != nil {
			return nil, err
		}
	}

	if req.ExpiryDate != nil {
		product.ExpiryDate = req.ExpiryDate
	}
	if req.BatchNumber != nil {
		product.BatchNumber = *req.BatchNumber
	}
	if req.RackLocation != nil {
		product.RackLocation = *req.RackLocation
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Deactivate soft deletes a product so it stays on historical receipts
func (s *ProductService) Deactivate(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deactivate()
	return s.productRepo.Save(ctx, product)
}

// Activate re-enables a deactivated product
func (s *ProductService) Activate(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.Activate()
	return s.productRepo.Save(ctx, product)
}

// LowStock lists active products at or below the stock threshold
func (s *ProductService) LowStock(ctx context.Context, threshold int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ExpiringWithin lists active products whose expiry date falls within
// the given number of days
func (s *ProductService) ExpiringWithin(ctx context.Context, days int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindExpiringWithin(ctx, days)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}
