// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item in the shop's retail catalog.
type Product struct {
	ID        uuid.UUID
	Name      string
	Barcode   string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a new Product entity.
func NewProduct(name, barcode string, costPrice, salePrice decimal.Decimal, stock int) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Barcode:   barcode,
		CostPrice: costPrice,
		SalePrice: salePrice,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
