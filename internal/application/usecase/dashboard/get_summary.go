// Package dashboard contains the summary use case backing the main screen.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/domain/valueobject"
)

// DefaultCacheTTL is how long a computed summary stays valid in the cache.
const DefaultCacheTTL = 5 * time.Minute

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	Window valueobject.DateWindow
}

// GetSummaryOutput is the aggregated view of the shop's activity for a
// window. Revenue counts repair fees, phone sale prices and product sale
// totals; cancelled repairs are excluded throughout.
type GetSummaryOutput struct {
	RepairCount      int             `json:"repairCount"`
	PhoneSaleCount   int             `json:"phoneSaleCount"`
	ProductSaleCount int             `json:"productSaleCount"`
	Revenue          decimal.Decimal `json:"revenue"`
	GrossProfit      decimal.Decimal `json:"grossProfit"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	CustomerDebt     decimal.Decimal `json:"customerDebt"`
	SupplierDebt     decimal.Decimal `json:"supplierDebt"`
}

// GetSummaryUseCase computes the dashboard summary, with a cache in front.
type GetSummaryUseCase struct {
	repairRepo      adapter.RepairRepository
	phoneSaleRepo   adapter.PhoneSaleRepository
	productSaleRepo adapter.ProductSaleRepository
	expenseRepo     adapter.ExpenseRepository
	partyRepo       adapter.PartyRepository
	cache           adapter.SummaryCache
	cacheTTL        time.Duration
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	repairRepo adapter.RepairRepository,
	phoneSaleRepo adapter.PhoneSaleRepository,
	productSaleRepo adapter.ProductSaleRepository,
	expenseRepo adapter.ExpenseRepository,
	partyRepo adapter.PartyRepository,
	cache adapter.SummaryCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		repairRepo:      repairRepo,
		phoneSaleRepo:   phoneSaleRepo,
		productSaleRepo: productSaleRepo,
		expenseRepo:     expenseRepo,
		partyRepo:       partyRepo,
		cache:           cache,
		cacheTTL:        DefaultCacheTTL,
	}
}

// Execute returns the summary for the window, serving from cache when a
// fresh copy exists. Cache failures degrade to a direct computation.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	key := cacheKey(input.Window)

	if uc.cache != nil {
		var cached GetSummaryOutput
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("summary cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	output, err := uc.compute(ctx, input.Window)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
			slog.Warn("summary cache write failed", "error", err)
		}
	}

	return output, nil
}

func (uc *GetSummaryUseCase) compute(ctx context.Context, window valueobject.DateWindow) (*GetSummaryOutput, error) {
	repairs, err := uc.repairRepo.FindByFilter(ctx, adapter.RepairFilter{
		StartDate: window.Start,
		EndDate:   window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load repairs: %w", err)
	}

	saleFilter := adapter.SaleFilter{StartDate: window.Start, EndDate: window.End}

	phoneSales, err := uc.phoneSaleRepo.FindByFilter(ctx, saleFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load phone sales: %w", err)
	}

	productSales, err := uc.productSaleRepo.FindByFilter(ctx, saleFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load product sales: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: window.Start,
		EndDate:   window.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	output := &GetSummaryOutput{
		Revenue:      decimal.Zero,
		GrossProfit:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
		NetProfit:    decimal.Zero,
		CustomerDebt: decimal.Zero,
		SupplierDebt: decimal.Zero,
	}

	for _, r := range repairs {
		if r.IsCancelled() {
			continue
		}
		output.RepairCount++
		output.Revenue = output.Revenue.Add(r.RepairCost)
		output.GrossProfit = output.GrossProfit.Add(r.Profit())
	}

	for _, s := range phoneSales {
		output.PhoneSaleCount++
		output.Revenue = output.Revenue.Add(s.SalePrice)
		output.GrossProfit = output.GrossProfit.Add(s.Profit())
	}

	for _, s := range productSales {
		output.ProductSaleCount++
		output.Revenue = output.Revenue.Add(s.TotalPrice())
		output.GrossProfit = output.GrossProfit.Add(s.TotalProfit())
	}

	for _, e := range expenses {
		output.ExpenseTotal = output.ExpenseTotal.Add(e.Amount)
	}

	output.NetProfit = output.GrossProfit.Sub(output.ExpenseTotal)

	// Open balances are point-in-time, not windowed.
	customers, err := uc.partyRepo.ListByKind(ctx, entity.PartyKindCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	for _, p := range customers {
		output.CustomerDebt = output.CustomerDebt.Add(p.Debt)
	}

	suppliers, err := uc.partyRepo.ListByKind(ctx, entity.PartyKindSupplier)
	if err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}
	for _, p := range suppliers {
		output.SupplierDebt = output.SupplierDebt.Add(p.Debt)
	}

	return output, nil
}

func cacheKey(window valueobject.DateWindow) string {
	start, end := "open", "open"
	if window.Start != nil {
		start = window.Start.UTC().Format("2006-01-02")
	}
	if window.End != nil {
		end = window.End.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("summary:%s:%s", start, end)
}
