// Package product contains catalog product use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
)

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
	}
}

// Execute removes a product from the catalog. Past sales keep their
// snapshotted name and prices.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
