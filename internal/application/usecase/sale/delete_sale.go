// Package sale contains phone sale and product sale use cases.
package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
)

// DeletePhoneSaleUseCase handles phone sale deletion logic.
type DeletePhoneSaleUseCase struct {
	phoneSaleRepo adapter.PhoneSaleRepository
	summaryCache  adapter.SummaryCache
}

// NewDeletePhoneSaleUseCase creates a new DeletePhoneSaleUseCase instance.
func NewDeletePhoneSaleUseCase(phoneSaleRepo adapter.PhoneSaleRepository, summaryCache adapter.SummaryCache) *DeletePhoneSaleUseCase {
	return &DeletePhoneSaleUseCase{
		phoneSaleRepo: phoneSaleRepo,
		summaryCache:  summaryCache,
	}
}

// Execute deletes a phone sale record.
func (uc *DeletePhoneSaleUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.phoneSaleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete phone sale: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)
	return nil
}

// DeleteProductSaleUseCase handles product sale deletion logic.
type DeleteProductSaleUseCase struct {
	productSaleRepo adapter.ProductSaleRepository
	summaryCache    adapter.SummaryCache
}

// NewDeleteProductSaleUseCase creates a new DeleteProductSaleUseCase instance.
func NewDeleteProductSaleUseCase(productSaleRepo adapter.ProductSaleRepository, summaryCache adapter.SummaryCache) *DeleteProductSaleUseCase {
	return &DeleteProductSaleUseCase{
		productSaleRepo: productSaleRepo,
		summaryCache:    summaryCache,
	}
}

// Execute deletes a product sale record. Stock is not restored; returns are
// recorded through the ledger, not by rewriting sale history.
func (uc *DeleteProductSaleUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.productSaleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product sale: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)
	return nil
}
