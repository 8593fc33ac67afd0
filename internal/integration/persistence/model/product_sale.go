// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// ProductSaleModel represents the product_sales table in the database.
// Product name and prices are denormalized on purpose; sale history must
// survive catalog edits and deletions.
type ProductSaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProductName   string          `gorm:"type:varchar(255);not null"`
	CustomerName  string          `gorm:"type:varchar(255);index"`
	CustomerPhone string          `gorm:"type:varchar(32);index"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ProductSaleModel.
func (ProductSaleModel) TableName() string {
	return "product_sales"
}

// ToEntity converts a ProductSaleModel to a domain ProductSale entity.
func (m *ProductSaleModel) ToEntity() *entity.ProductSale {
	return &entity.ProductSale{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		UnitCost:      m.UnitCost,
		CreatedAt:     m.CreatedAt,
	}
}

// ProductSaleFromEntity creates a ProductSaleModel from a domain ProductSale entity.
func ProductSaleFromEntity(sale *entity.ProductSale) *ProductSaleModel {
	return &ProductSaleModel{
		ID:            sale.ID,
		ProductID:     sale.ProductID,
		ProductName:   sale.ProductName,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		Quantity:      sale.Quantity,
		UnitPrice:     sale.UnitPrice,
		UnitCost:      sale.UnitCost,
		CreatedAt:     sale.CreatedAt,
	}
}
