// Package attribution resolves transaction customer snapshots to directory
// parties and aggregates per-party activity.
package attribution

import (
	"context"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/domain/valueobject"
)

// Aggregate computes per-party activity over the three transaction kinds
// inside an inclusive date window. It is a pure function: identical inputs
// always produce identical totals, and the result does not depend on
// iteration order beyond commutative sum/max operations.
//
// Transactions that resolve to no party are skipped silently; cancelled
// repairs contribute nothing regardless of amount.
func Aggregate(
	parties []*entity.Party,
	repairs []*entity.Repair,
	phoneSales []*entity.PhoneSale,
	productSales []*entity.ProductSale,
	window valueobject.DateWindow,
) map[uuid.UUID]*valueobject.PartyActivity {
	ix := NewPartyIndex(parties)
	result := make(map[uuid.UUID]*valueobject.PartyActivity)

	activityFor := func(id uuid.UUID) *valueobject.PartyActivity {
		a, ok := result[id]
		if !ok {
			a = valueobject.NewPartyActivity()
			result[id] = a
		}
		return a
	}

	for _, r := range repairs {
		if r.IsCancelled() || !window.Contains(r.CreatedAt) {
			continue
		}
		p := ix.Resolve(r.CustomerName, r.CustomerPhone)
		if p == nil {
			continue
		}
		a := activityFor(p.ID)
		a.Record(r.RepairCost, r.Profit(), r.CreatedAt)
		a.RepairCount++
		a.Repairs = append(a.Repairs, r)
	}

	for _, s := range phoneSales {
		if !window.Contains(s.CreatedAt) {
			continue
		}
		p := ix.Resolve(s.CustomerName, s.CustomerPhone)
		if p == nil {
			continue
		}
		a := activityFor(p.ID)
		a.Record(s.SalePrice, s.Profit(), s.CreatedAt)
		a.PhoneSaleCount++
		a.PhoneSales = append(a.PhoneSales, s)
	}

	for _, s := range productSales {
		if !window.Contains(s.CreatedAt) {
			continue
		}
		p := ix.Resolve(s.CustomerName, s.CustomerPhone)
		if p == nil {
			continue
		}
		a := activityFor(p.ID)
		a.Record(s.TotalPrice(), s.TotalProfit(), s.CreatedAt)
		a.ProductSaleCount++
		a.ProductSales = append(a.ProductSales, s)
	}

	return result
}

// AggregateActivityInput represents the input for the activity aggregation.
type AggregateActivityInput struct {
	Window valueobject.DateWindow
}

// AggregateActivityOutput represents the aggregated activity keyed by party.
type AggregateActivityOutput struct {
	Parties    []*entity.Party
	Activities map[uuid.UUID]*valueobject.PartyActivity
}

// AggregateActivityUseCase loads customers and transactions and runs the
// pure aggregation over them.
type AggregateActivityUseCase struct {
	partyRepo       adapter.PartyRepository
	repairRepo      adapter.RepairRepository
	phoneSaleRepo   adapter.PhoneSaleRepository
	productSaleRepo adapter.ProductSaleRepository
}

// NewAggregateActivityUseCase creates a new AggregateActivityUseCase instance.
func NewAggregateActivityUseCase(
	partyRepo adapter.PartyRepository,
	repairRepo adapter.RepairRepository,
	phoneSaleRepo adapter.PhoneSaleRepository,
	productSaleRepo adapter.ProductSaleRepository,
) *AggregateActivityUseCase {
	return &AggregateActivityUseCase{
		partyRepo:       partyRepo,
		repairRepo:      repairRepo,
		phoneSaleRepo:   phoneSaleRepo,
		productSaleRepo: productSaleRepo,
	}
}

// Execute performs the aggregation for all registered customers.
func (uc *AggregateActivityUseCase) Execute(ctx context.Context, input AggregateActivityInput) (*AggregateActivityOutput, error) {
	parties, err := uc.partyRepo.ListByKind(ctx, entity.PartyKindCustomer)
	if err != nil {
		return nil, err
	}

	// The window is applied in the pure aggregation, not pushed into the
	// repository queries: cancelled-status filtering and attribution need
	// the same inputs the import/backfill scan sees.
	repairs, err := uc.repairRepo.FindByFilter(ctx, adapter.RepairFilter{})
	if err != nil {
		return nil, err
	}
	phoneSales, err := uc.phoneSaleRepo.FindByFilter(ctx, adapter.SaleFilter{})
	if err != nil {
		return nil, err
	}
	productSales, err := uc.productSaleRepo.FindByFilter(ctx, adapter.SaleFilter{})
	if err != nil {
		return nil, err
	}

	return &AggregateActivityOutput{
		Parties:    parties,
		Activities: Aggregate(parties, repairs, phoneSales, productSales, input.Window),
	}, nil
}
