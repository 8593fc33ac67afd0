// Package repair contains repair ticket use cases.
package repair

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
)

// DeleteRepairInput represents the input for repair deletion.
type DeleteRepairInput struct {
	RepairID uuid.UUID
}

// DeleteRepairUseCase handles repair deletion logic.
type DeleteRepairUseCase struct {
	repairRepo   adapter.RepairRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteRepairUseCase creates a new DeleteRepairUseCase instance.
func NewDeleteRepairUseCase(repairRepo adapter.RepairRepository, summaryCache adapter.SummaryCache) *DeleteRepairUseCase {
	return &DeleteRepairUseCase{
		repairRepo:   repairRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the repair deletion. Any supplier debt already posted for
// the repair's parts stays on the ledger; deleting a ticket is not a refund.
func (uc *DeleteRepairUseCase) Execute(ctx context.Context, input DeleteRepairInput) error {
	if err := uc.repairRepo.Delete(ctx, input.RepairID); err != nil {
		return fmt.Errorf("failed to delete repair: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)
	return nil
}
