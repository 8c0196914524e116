package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code               string           `json:"code" binding:"max=50"`
	Barcode            string           `json:"barcode" binding:"max=50"`
	Name               string           `json:"name" binding:"required,min=1,max=200"`
	Description        string           `json:"description"`
	CategoryID         *uuid.UUID       `json:"category_id"`
	SupplierID         *uuid.UUID       `json:"supplier_id"`
	Brand              string           `json:"brand" binding:"max=100"`
	Unit               string           `json:"unit" binding:"max=20"`
	UnitPrice          decimal.Decimal  `json:"unit_price" binding:"required"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	MRP                *decimal.Decimal `json:"mrp"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	TaxRate            *decimal.Decimal `json:"tax_rate"`
	QuantityInStock    int              `json:"quantity_in_stock" binding:"min=0"`
	MinStockLevel      *int             `json:"min_stock_level"`
	MaxStockLevel      *int             `json:"max_stock_level"`
	ReorderLevel       *int             `json:"reorder_level"`
	ExpiryDate         *time.Time       `json:"expiry_date"`
	ManufacturingDate  *time.Time       `json:"manufacturing_date"`
	BatchNumber        string           `json:"batch_number" binding:"max=50"`
	RackLocation       string           `json:"rack_location" binding:"max=50"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name               *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description        *string          `json:"description"`
	CategoryID         *uuid.UUID       `json:"category_id"`
	SupplierID         *uuid.UUID       `json:"supplier_id"`
	Brand              *string          `json:"brand" binding:"omitempty,max=100"`
	Unit               *string          `json:"unit" binding:"omitempty,max=20"`
	UnitPrice          *decimal.Decimal `json:"unit_price"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	MRP                *decimal.Decimal `json:"mrp"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	TaxRate            *decimal.Decimal `json:"tax_rate"`
	MinStockLevel      *int             `json:"min_stock_level"`
	MaxStockLevel      *int             `json:"max_stock_level"`
	ReorderLevel       *int             `json:"reorder_level"`
	ExpiryDate         *time.Time       `json:"expiry_date"`
	BatchNumber        *string          `json:"batch_number" binding:"omitempty,max=50"`
	RackLocation       *string          `json:"rack_location" binding:"omitempty,max=50"`
}

// ProductListFilter represents filtering options for listing products
type ProductListFilter struct {
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir"`
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Brand      string     `form:"brand"`
	// Soft-deleted rows are hidden unless explicitly requested.
	IncludeInactive bool  `form:"include_inactive"`
	InStock         *bool `form:"in_stock"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Code               string          `json:"code"`
	Barcode            string          `json:"barcode"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	CategoryID         *uuid.UUID      `json:"category_id"`
	SupplierID         *uuid.UUID      `json:"supplier_id"`
	Brand              string          `json:"brand"`
	Unit               string          `json:"unit"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	CostPrice          decimal.Decimal `json:"cost_price"`
	MRP                decimal.Decimal `json:"mrp"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	DiscountedPrice    decimal.Decimal `json:"discounted_price"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	QuantityInStock    int             `json:"quantity_in_stock"`
	MinStockLevel      int             `json:"min_stock_level"`
	MaxStockLevel      int             `json:"max_stock_level"`
	ReorderLevel       int             `json:"reorder_level"`
	ExpiryDate         *time.Time      `json:"expiry_date"`
	ManufacturingDate  *time.Time      `json:"manufacturing_date"`
	BatchNumber        string          `json:"batch_number"`
	RackLocation       string          `json:"rack_location"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain Product to a ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Code:               p.Code,
		Barcode:            p.Barcode,
		Name:               p.Name,
		Description:        p.Description,
		CategoryID:         p.CategoryID,
		SupplierID:         p.SupplierID,
		Brand:              p.Brand,
		Unit:               p.Unit,
		UnitPrice:          p.UnitPrice,
		CostPrice:          p.CostPrice,
		MRP:                p.MRP,
		DiscountPercentage: p.DiscountPercentage,
		DiscountedPrice:    p.DiscountedUnitPrice(),
		TaxRate:            p.TaxRate,
		QuantityInStock:    p.QuantityInStock,
		MinStockLevel:      p.MinStockLevel,
		MaxStockLevel:      p.MaxStockLevel,
		ReorderLevel:       p.ReorderLevel,
		ExpiryDate:         p.ExpiryDate,
		ManufacturingDate:  p.ManufacturingDate,
		BatchNumber:        p.BatchNumber,
		RackLocation:       p.RackLocation,
		IsActive:           p.IsActive,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain Category to a CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain Categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
