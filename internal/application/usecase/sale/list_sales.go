// Package sale contains phone sale and product sale use cases.
package sale

import (
	"context"
	"fmt"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
)

// ListSalesInput represents the input for listing sales of either kind.
type ListSalesInput struct {
	Filter adapter.SaleFilter
}

// ListPhoneSalesOutput represents the output of listing phone sales.
type ListPhoneSalesOutput struct {
	Sales []*entity.PhoneSale
}

// ListProductSalesOutput represents the output of listing product sales.
type ListProductSalesOutput struct {
	Sales []*entity.ProductSale
}

// ListPhoneSalesUseCase handles phone sale listing logic.
type ListPhoneSalesUseCase struct {
	phoneSaleRepo adapter.PhoneSaleRepository
}

// NewListPhoneSalesUseCase creates a new ListPhoneSalesUseCase instance.
func NewListPhoneSalesUseCase(phoneSaleRepo adapter.PhoneSaleRepository) *ListPhoneSalesUseCase {
	return &ListPhoneSalesUseCase{
		phoneSaleRepo: phoneSaleRepo,
	}
}

// Execute retrieves phone sales matching the filter, newest first.
func (uc *ListPhoneSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListPhoneSalesOutput, error) {
	sales, err := uc.phoneSaleRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list phone sales: %w", err)
	}

	return &ListPhoneSalesOutput{Sales: sales}, nil
}

// ListProductSalesUseCase handles product sale listing logic.
type ListProductSalesUseCase struct {
	productSaleRepo adapter.ProductSaleRepository
}

// NewListProductSalesUseCase creates a new ListProductSalesUseCase instance.
func NewListProductSalesUseCase(productSaleRepo adapter.ProductSaleRepository) *ListProductSalesUseCase {
	return &ListProductSalesUseCase{
		productSaleRepo: productSaleRepo,
	}
}

// Execute retrieves product sales matching the filter, newest first.
func (uc *ListProductSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListProductSalesOutput, error) {
	sales, err := uc.productSaleRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list product sales: %w", err)
	}

	return &ListProductSalesOutput{Sales: sales}, nil
}
