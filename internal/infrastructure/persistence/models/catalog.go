package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos/backend/internal/domain/catalog"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Description = c.Description
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Code               string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Barcode            string          `gorm:"type:varchar(50);index"`
	Name               string          `gorm:"type:varchar(200);not null;index"`
	Description        string          `gorm:"type:text"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	SupplierID         *uuid.UUID      `gorm:"type:uuid;index"`
	Brand              string          `gorm:"type:varchar(100)"`
	Unit               string          `gorm:"type:varchar(20);not null;default:'piece'"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	CostPrice          decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	MRP                decimal.Decimal `gorm:"type:decimal(12,4);not null;default:0"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TaxRate            decimal.Decimal `gorm:"type:decimal(5,2);not null;default:18"`
	QuantityInStock    int             `gorm:"not null;default:0"`
	MinStockLevel      int             `gorm:"not null;default:0"`
	MaxStockLevel      int             `gorm:"not null;default:1000"`
	ReorderLevel       int             `gorm:"not null;default:0"`
	ExpiryDate         *time.Time      `gorm:"index"`
	ManufacturingDate  *time.Time
	BatchNumber        string `gorm:"type:varchar(50)"`
	RackLocation       string `gorm:"type:varchar(50)"`
	IsActive           bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:         m.BaseModel.ToDomain(),
		Code:               m.Code,
		Barcode:            m.Barcode,
		Name:               m.Name,
		Description:        m.Description,
		CategoryID:         m.CategoryID,
		SupplierID:         m.SupplierID,
		Brand:              m.Brand,
		Unit:               m.Unit,
		UnitPrice:          m.UnitPrice,
		CostPrice:          m.CostPrice,
		MRP:                m.MRP,
		DiscountPercentage: m.DiscountPercentage,
		TaxRate:            m.TaxRate,
		QuantityInStock:    m.QuantityInStock,
		MinStockLevel:      m.MinStockLevel,
		MaxStockLevel:      m.MaxStockLevel,
		ReorderLevel:       m.ReorderLevel,
		ExpiryDate:         m.ExpiryDate,
		ManufacturingDate:  m.ManufacturingDate,
		BatchNumber:        m.BatchNumber,
		RackLocation:       m.RackLocation,
		IsActive:           m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Code = p.Code
	m.Barcode = p.Barcode
	m.Name = p.Name
	m.Description = p.Description
	m.CategoryID = p.CategoryID
	m.SupplierID = p.SupplierID
	m.Brand = p.Brand
	m.Unit = p.Unit
	m.UnitPrice = p.UnitPrice
	m.CostPrice = p.CostPrice
	m.MRP = p.MRP
	m.DiscountPercentage = p.DiscountPercentage
	m.TaxRate = p.TaxRate
	m.QuantityInStock = p.QuantityInStock
	m.MinStockLevel = p.MinStockLevel
	m.MaxStockLevel = p.MaxStockLevel
	m.ReorderLevel = p.ReorderLevel
	m.ExpiryDate = p.ExpiryDate
	m.ManufacturingDate = p.ManufacturingDate
	m.BatchNumber = p.BatchNumber
	m.RackLocation = p.RackLocation
	m.IsActive = p.IsActive
}
