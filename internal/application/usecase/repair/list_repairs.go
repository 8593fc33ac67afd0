// Package repair contains repair ticket use cases.
package repair

import (
	"context"
	"fmt"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
)

// ListRepairsInput represents the input for listing repairs.
type ListRepairsInput struct {
	Filter adapter.RepairFilter
}

// ListRepairsOutput represents the output of listing repairs.
type ListRepairsOutput struct {
	Repairs []*entity.Repair
}

// ListRepairsUseCase handles repair listing logic.
type ListRepairsUseCase struct {
	repairRepo adapter.RepairRepository
}

// NewListRepairsUseCase creates a new ListRepairsUseCase instance.
func NewListRepairsUseCase(repairRepo adapter.RepairRepository) *ListRepairsUseCase {
	return &ListRepairsUseCase{
		repairRepo: repairRepo,
	}
}

// Execute retrieves repairs matching the filter, newest first.
func (uc *ListRepairsUseCase) Execute(ctx context.Context, input ListRepairsInput) (*ListRepairsOutput, error) {
	repairs, err := uc.repairRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list repairs: %w", err)
	}

	return &ListRepairsOutput{Repairs: repairs}, nil
}
