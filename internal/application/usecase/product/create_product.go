// Package product contains catalog product use cases.
package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name      string
	Barcode   string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Stock     int
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeEmptyProductName,
			"product name cannot be empty",
			domainerror.ErrEmptyProductName,
		)
	}

	if input.CostPrice.IsNegative() || input.SalePrice.IsNegative() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNegativePrice,
			"prices cannot be negative",
			domainerror.ErrNegativePrice,
		)
	}

	stock := input.Stock
	if stock < 0 {
		stock = 0
	}

	product := entity.NewProduct(name, input.Barcode, input.CostPrice, input.SalePrice, stock)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: product}, nil
}
