// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// SaleFilter defines filter options for listing sales.
type SaleFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive customer name match
}

// PhoneSaleRepository defines the interface for phone sale persistence.
type PhoneSaleRepository interface {
	// Create creates a new phone sale record.
	Create(ctx context.Context, sale *entity.PhoneSale) error

	// FindByID retrieves a phone sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PhoneSale, error)

	// FindByFilter retrieves phone sales matching the filter, newest first.
	FindByFilter(ctx context.Context, filter SaleFilter) ([]*entity.PhoneSale, error)

	// Delete removes a phone sale record.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductSaleRepository defines the interface for product sale persistence.
type ProductSaleRepository interface {
	// Create creates a product sale and decrements the product's stock in
	// the same database transaction. Stock clamps at zero.
	Create(ctx context.Context, sale *entity.ProductSale) error

	// FindByFilter retrieves product sales matching the filter, newest first.
	FindByFilter(ctx context.Context, filter SaleFilter) ([]*entity.ProductSale, error)

	// Delete removes a product sale record.
	Delete(ctx context.Context, id uuid.UUID) error
}
