// Package sale contains phone sale and product sale use cases.
package sale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreatePhoneSaleInput represents the input for phone sale creation.
type CreatePhoneSaleInput struct {
	CustomerName  string
	CustomerPhone string
	Brand         string
	Model         string
	IMEI          string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
}

// CreatePhoneSaleOutput represents the output of phone sale creation.
type CreatePhoneSaleOutput struct {
	Sale *entity.PhoneSale
}

// CreatePhoneSaleUseCase handles phone sale creation logic.
type CreatePhoneSaleUseCase struct {
	phoneSaleRepo adapter.PhoneSaleRepository
	summaryCache  adapter.SummaryCache
}

// NewCreatePhoneSaleUseCase creates a new CreatePhoneSaleUseCase instance.
func NewCreatePhoneSaleUseCase(phoneSaleRepo adapter.PhoneSaleRepository, summaryCache adapter.SummaryCache) *CreatePhoneSaleUseCase {
	return &CreatePhoneSaleUseCase{
		phoneSaleRepo: phoneSaleRepo,
		summaryCache:  summaryCache,
	}
}

// Execute performs the phone sale creation.
func (uc *CreatePhoneSaleUseCase) Execute(ctx context.Context, input CreatePhoneSaleInput) (*CreatePhoneSaleOutput, error) {
	if input.PurchasePrice.IsNegative() || input.SalePrice.IsNegative() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNegativePrice,
			"prices cannot be negative",
			domainerror.ErrNegativePrice,
		)
	}

	sale := entity.NewPhoneSale(
		strings.TrimSpace(input.CustomerName),
		input.CustomerPhone,
		input.Brand,
		input.Model,
		input.IMEI,
		input.PurchasePrice,
		input.SalePrice,
	)

	if err := uc.phoneSaleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create phone sale: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)

	return &CreatePhoneSaleOutput{Sale: sale}, nil
}

// invalidateSummaries drops cached dashboard summaries after a write that
// changes their inputs. Best-effort: a cache failure never fails the write.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
}
