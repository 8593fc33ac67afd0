// Package product contains catalog product use cases.
package product

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update.
// Nil fields are left untouched.
type UpdateProductInput struct {
	ProductID uuid.UUID
	Patch     adapter.ProductPatch
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	if input.Patch.Name != nil && strings.TrimSpace(*input.Patch.Name) == "" {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptyProductName,
			"product name cannot be empty",
			domainerror.ErrEmptyProductName,
		)
	}

	if (input.Patch.CostPrice != nil && input.Patch.CostPrice.IsNegative()) ||
		(input.Patch.SalePrice != nil && input.Patch.SalePrice.IsNegative()) {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNegativePrice,
			"prices cannot be negative",
			domainerror.ErrNegativePrice,
		)
	}

	product, err := uc.productRepo.Update(ctx, input.ProductID, input.Patch)
	if err != nil {
		return nil, err
	}

	return &UpdateProductOutput{Product: product}, nil
}
