// Package party contains party directory use cases.
package party

import (
	"context"
	"log/slog"
	"strings"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/domain/valueobject"
)

// ImportPartiesOutput represents the result of the historical backfill.
// An empty Created slice is the "nothing to import" condition, not an error.
type ImportPartiesOutput struct {
	Created []*entity.Party
	Skipped int
}

// ImportPartiesUseCase scans historical transactions for customer names
// absent from the directory and registers them. The import is best-effort:
// a single entry's persistence failure drops that entry and the batch
// continues.
type ImportPartiesUseCase struct {
	partyRepo       adapter.PartyRepository
	repairRepo      adapter.RepairRepository
	phoneSaleRepo   adapter.PhoneSaleRepository
	productSaleRepo adapter.ProductSaleRepository
}

// NewImportPartiesUseCase creates a new ImportPartiesUseCase instance.
func NewImportPartiesUseCase(
	partyRepo adapter.PartyRepository,
	repairRepo adapter.RepairRepository,
	phoneSaleRepo adapter.PhoneSaleRepository,
	productSaleRepo adapter.ProductSaleRepository,
) *ImportPartiesUseCase {
	return &ImportPartiesUseCase{
		partyRepo:       partyRepo,
		repairRepo:      repairRepo,
		phoneSaleRepo:   phoneSaleRepo,
		productSaleRepo: productSaleRepo,
	}
}

// candidate is one unique normalized name found in the transaction history.
type candidate struct {
	name  string // Display form from the first occurrence
	phone string // Phone from the first occurrence bearing this name
}

// Execute performs the backfill. Transactions are scanned in a fixed order
// (repairs, then phone sales, then product sales); the first occurrence of a
// name wins its display form and phone number. Deduplication happens before
// any create is dispatched, so re-running the import creates nothing new.
func (uc *ImportPartiesUseCase) Execute(ctx context.Context) (*ImportPartiesOutput, error) {
	existing, err := uc.partyRepo.ListByKind(ctx, entity.PartyKindCustomer)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[valueobject.NormalizeName(p.Name)] = struct{}{}
	}

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

	var order []string
	candidates := make(map[string]candidate)

	collect := func(name, phone string) {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return
		}
		key := valueobject.NormalizeName(trimmed)
		if _, exists := known[key]; exists {
			return
		}
		if _, exists := candidates[key]; exists {
			return
		}
		candidates[key] = candidate{name: trimmed, phone: phone}
		order = append(order, key)
	}

	for _, r := range repairs {
		collect(r.CustomerName, r.CustomerPhone)
	}
	for _, s := range phoneSales {
		collect(s.CustomerName, s.CustomerPhone)
	}
	for _, s := range productSales {
		collect(s.CustomerName, s.CustomerPhone)
	}

	output := &ImportPartiesOutput{}

	for _, key := range order {
		c := candidates[key]
		party := entity.NewParty(entity.PartyKindCustomer, c.name, c.phone, "", "", "")

		if err := uc.partyRepo.Create(ctx, party); err != nil {
			slog.Warn("Skipping party during import",
				"name", c.name,
				"error", err,
			)
			output.Skipped++
			continue
		}

		output.Created = append(output.Created, party)
	}

	return output, nil
}
