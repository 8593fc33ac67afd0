// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSale represents a retail counter sale. Product name and prices are
// snapshotted so later catalog edits do not rewrite sale history.
type ProductSale struct {
	ID            uuid.UUID
	ProductID     *uuid.UUID
	ProductName   string
	CustomerName  string
	CustomerPhone string
	Quantity      int
	UnitPrice     decimal.Decimal
	UnitCost      decimal.Decimal
	CreatedAt     time.Time
}

// NewProductSale creates a new ProductSale record.
func NewProductSale(
	productID *uuid.UUID,
	productName, customerName, customerPhone string,
	quantity int,
	unitPrice, unitCost decimal.Decimal,
) *ProductSale {
	return &ProductSale{
		ID:            uuid.New(),
		ProductID:     productID,
		ProductName:   productName,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		UnitCost:      unitCost,
		CreatedAt:     time.Now().UTC(),
	}
}

// TotalPrice returns quantity times unit price.
func (s *ProductSale) TotalPrice() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// TotalProfit returns the margin over the whole quantity.
func (s *ProductSale) TotalProfit() decimal.Decimal {
	return s.UnitPrice.Sub(s.UnitCost).Mul(decimal.NewFromInt(int64(s.Quantity)))
}
