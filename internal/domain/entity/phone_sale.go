// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PhoneSale represents the resale of a second-hand phone. Like repairs, the
// customer fields are an immutable snapshot captured at sale time.
type PhoneSale struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	Brand         string
	Model         string
	IMEI          string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPhoneSale creates a new PhoneSale record.
func NewPhoneSale(
	customerName, customerPhone, brand, model, imei string,
	purchasePrice, salePrice decimal.Decimal,
) *PhoneSale {
	now := time.Now().UTC()

	return &PhoneSale{
		ID:            uuid.New(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Brand:         brand,
		Model:         model,
		IMEI:          imei,
		PurchasePrice: purchasePrice,
		SalePrice:     salePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Profit returns the sale price minus the purchase price.
func (s *PhoneSale) Profit() decimal.Decimal {
	return s.SalePrice.Sub(s.PurchasePrice)
}
