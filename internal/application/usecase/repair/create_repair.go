// Package repair contains repair ticket use cases.
package repair

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreateRepairInput represents the input for repair ticket creation.
type CreateRepairInput struct {
	CustomerName  string
	CustomerPhone string
	Brand         string
	Model         string
	Fault         string
	Parts         []string
	RepairCost    decimal.Decimal
	PartsCost     decimal.Decimal
	SupplierID    *uuid.UUID
	Notes         string
}

// CreateRepairOutput represents the output of repair ticket creation.
type CreateRepairOutput struct {
	Repair *entity.Repair
}

// CreateRepairUseCase handles repair creation logic, including the automatic
// parts-purchase posting against a linked supplier.
type CreateRepairUseCase struct {
	repairRepo   adapter.RepairRepository
	ledgerRepo   adapter.LedgerRepository
	summaryCache adapter.SummaryCache
}

// NewCreateRepairUseCase creates a new CreateRepairUseCase instance.
func NewCreateRepairUseCase(repairRepo adapter.RepairRepository, ledgerRepo adapter.LedgerRepository, summaryCache adapter.SummaryCache) *CreateRepairUseCase {
	return &CreateRepairUseCase{
		repairRepo:   repairRepo,
		ledgerRepo:   ledgerRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the repair creation. A new repair with a supplier link and
// a positive parts cost posts a purchase adjustment to that supplier. The
// posting is best-effort: a failure is logged and the saved repair stands.
func (uc *CreateRepairUseCase) Execute(ctx context.Context, input CreateRepairInput) (*CreateRepairOutput, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, domainerror.NewRepairError(
			domainerror.ErrCodeEmptyCustomerName,
			"customer name cannot be empty",
			domainerror.ErrEmptyCustomerName,
		)
	}

	if input.RepairCost.IsNegative() || input.PartsCost.IsNegative() {
		return nil, domainerror.NewRepairError(
			domainerror.ErrCodeNegativeRepairCost,
			"repair and parts costs cannot be negative",
			domainerror.ErrNegativeRepairCost,
		)
	}

	repair := entity.NewRepair(
		strings.TrimSpace(input.CustomerName),
		input.CustomerPhone,
		input.Brand,
		input.Model,
		input.Fault,
		input.Parts,
		input.RepairCost,
		input.PartsCost,
		input.SupplierID,
		input.Notes,
	)

	if err := uc.repairRepo.Create(ctx, repair); err != nil {
		return nil, fmt.Errorf("failed to create repair: %w", err)
	}

	postSupplierPurchase(ctx, uc.ledgerRepo, repair)
	invalidateSummaries(ctx, uc.summaryCache)

	return &CreateRepairOutput{Repair: repair}, nil
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

// postSupplierPurchase posts the parts cost as supplier debt when the repair
// carries a supplier link and a positive parts cost.
func postSupplierPurchase(ctx context.Context, ledgerRepo adapter.LedgerRepository, repair *entity.Repair) {
	if repair.SupplierID == nil || !repair.PartsCost.IsPositive() {
		return
	}

	description := fmt.Sprintf("parts for repair %s (%s %s)", repair.ID, repair.Brand, repair.Model)

	if _, err := ledgerRepo.Post(ctx, *repair.SupplierID, entity.AdjustmentPurchase, repair.PartsCost, description); err != nil {
		slog.Warn("Failed to post supplier purchase for repair",
			"repair_id", repair.ID,
			"supplier_id", *repair.SupplierID,
			"parts_cost", repair.PartsCost,
			"error", err,
		)
	}
}
