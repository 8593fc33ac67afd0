// Package sale contains phone sale and product sale use cases.
package sale

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreateProductSaleInput represents the input for product sale creation.
// The product's name and prices are snapshotted onto the sale record.
type CreateProductSaleInput struct {
	ProductID     uuid.UUID
	CustomerName  string
	CustomerPhone string
	Quantity      int
}

// CreateProductSaleOutput represents the output of product sale creation.
type CreateProductSaleOutput struct {
	Sale *entity.ProductSale
}

// CreateProductSaleUseCase handles product sale creation logic.
type CreateProductSaleUseCase struct {
	productRepo     adapter.ProductRepository
	productSaleRepo adapter.ProductSaleRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateProductSaleUseCase creates a new CreateProductSaleUseCase instance.
func NewCreateProductSaleUseCase(
	productRepo adapter.ProductRepository,
	productSaleRepo adapter.ProductSaleRepository,
	summaryCache adapter.SummaryCache,
) *CreateProductSaleUseCase {
	return &CreateProductSaleUseCase{
		productRepo:     productRepo,
		productSaleRepo: productSaleRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the product sale creation and decrements catalog stock.
func (uc *CreateProductSaleUseCase) Execute(ctx context.Context, input CreateProductSaleInput) (*CreateProductSaleOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNonPositiveQuantity,
			"quantity must be positive",
			domainerror.ErrNonPositiveQuantity,
		)
	}

	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	productID := product.ID
	sale := entity.NewProductSale(
		&productID,
		product.Name,
		strings.TrimSpace(input.CustomerName),
		input.CustomerPhone,
		input.Quantity,
		product.SalePrice,
		product.CostPrice,
	)

	if err := uc.productSaleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create product sale: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)

	return &CreateProductSaleOutput{Sale: sale}, nil
}
