// Package repair contains repair ticket use cases.
package repair

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// UpdateRepairInput represents the input for repair ticket update.
// Nil fields are left untouched.
type UpdateRepairInput struct {
	RepairID      uuid.UUID
	CustomerName  *string
	CustomerPhone *string
	Brand         *string
	Model         *string
	Fault         *string
	Parts         []string // Nil leaves untouched; empty slice clears
	RepairCost    *decimal.Decimal
	PartsCost     *decimal.Decimal
	Status        *entity.RepairStatus
	SupplierID    *uuid.UUID
	ClearSupplier bool
	Notes         *string
}

// UpdateRepairOutput represents the output of repair ticket update.
type UpdateRepairOutput struct {
	Repair *entity.Repair
}

// UpdateRepairUseCase handles repair update logic.
type UpdateRepairUseCase struct {
	repairRepo   adapter.RepairRepository
	ledgerRepo   adapter.LedgerRepository
	summaryCache adapter.SummaryCache
}

// NewUpdateRepairUseCase creates a new UpdateRepairUseCase instance.
func NewUpdateRepairUseCase(repairRepo adapter.RepairRepository, ledgerRepo adapter.LedgerRepository, summaryCache adapter.SummaryCache) *UpdateRepairUseCase {
	return &UpdateRepairUseCase{
		repairRepo:   repairRepo,
		ledgerRepo:   ledgerRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the repair update. The supplier purchase is re-posted only
// when the supplier assignment changed and the parts cost is positive; a
// parts-cost change alone does not re-post. This mirrors the dashboard's
// observed trigger and deliberately stays that way.
func (uc *UpdateRepairUseCase) Execute(ctx context.Context, input UpdateRepairInput) (*UpdateRepairOutput, error) {
	repair, err := uc.repairRepo.FindByID(ctx, input.RepairID)
	if err != nil {
		return nil, err
	}

	priorSupplierID := repair.SupplierID

	if input.CustomerName != nil {
		if strings.TrimSpace(*input.CustomerName) == "" {
			return nil, domainerror.NewRepairError(
				domainerror.ErrCodeEmptyCustomerName,
				"customer name cannot be empty",
				domainerror.ErrEmptyCustomerName,
			)
		}
		repair.CustomerName = strings.TrimSpace(*input.CustomerName)
	}
	if input.CustomerPhone != nil {
		repair.CustomerPhone = *input.CustomerPhone
	}
	if input.Brand != nil {
		repair.Brand = *input.Brand
	}
	if input.Model != nil {
		repair.Model = *input.Model
	}
	if input.Fault != nil {
		repair.Fault = *input.Fault
	}
	if input.Parts != nil {
		repair.Parts = input.Parts
	}
	if input.RepairCost != nil {
		if input.RepairCost.IsNegative() {
			return nil, negativeCostError()
		}
		repair.RepairCost = *input.RepairCost
	}
	if input.PartsCost != nil {
		if input.PartsCost.IsNegative() {
			return nil, negativeCostError()
		}
		repair.PartsCost = *input.PartsCost
	}
	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, domainerror.NewRepairError(
				domainerror.ErrCodeInvalidRepairStatus,
				"invalid repair status",
				domainerror.ErrInvalidRepairStatus,
			)
		}
		repair.Status = *input.Status
	}
	if input.ClearSupplier {
		repair.SupplierID = nil
	} else if input.SupplierID != nil {
		repair.SupplierID = input.SupplierID
	}
	if input.Notes != nil {
		repair.Notes = *input.Notes
	}

	if err := uc.repairRepo.Update(ctx, repair); err != nil {
		return nil, fmt.Errorf("failed to update repair: %w", err)
	}

	if supplierChanged(priorSupplierID, repair.SupplierID) {
		postSupplierPurchase(ctx, uc.ledgerRepo, repair)
	}
	invalidateSummaries(ctx, uc.summaryCache)

	return &UpdateRepairOutput{Repair: repair}, nil
}

// supplierChanged reports whether the supplier assignment moved to a
// different (non-nil) supplier.
func supplierChanged(prior, current *uuid.UUID) bool {
	if current == nil {
		return false
	}
	return prior == nil || *prior != *current
}

func isValidStatus(status entity.RepairStatus) bool {
	switch status {
	case entity.RepairStatusReceived,
		entity.RepairStatusInProgress,
		entity.RepairStatusCompleted,
		entity.RepairStatusDelivered,
		entity.RepairStatusCancelled:
		return true
	default:
		return false
	}
}

func negativeCostError() error {
	return domainerror.NewRepairError(
		domainerror.ErrCodeNegativeRepairCost,
		"repair and parts costs cannot be negative",
		domainerror.ErrNegativeRepairCost,
	)
}
