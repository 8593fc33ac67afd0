// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// ProductPatch carries optional field updates for a catalog product.
// Nil fields are left untouched.
type ProductPatch struct {
	Name      *string
	Barcode   *string
	CostPrice *decimal.Decimal
	SalePrice *decimal.Decimal
	Stock     *int
}

// ProductRepository defines the interface for product catalog persistence.
type ProductRepository interface {
	// Create creates a new catalog product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves all catalog products ordered by name.
	List(ctx context.Context) ([]*entity.Product, error)

	// Update applies a patch to an existing product.
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (*entity.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}
