// Package party contains party directory use cases.
package party

import (
	"context"
	"fmt"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
)

// ListPartiesInput represents the input for listing parties.
type ListPartiesInput struct {
	Kind entity.PartyKind
}

// ListPartiesOutput represents the output of listing parties.
type ListPartiesOutput struct {
	Parties []*entity.Party
}

// ListPartiesUseCase handles party listing logic.
type ListPartiesUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewListPartiesUseCase creates a new ListPartiesUseCase instance.
func NewListPartiesUseCase(partyRepo adapter.PartyRepository) *ListPartiesUseCase {
	return &ListPartiesUseCase{
		partyRepo: partyRepo,
	}
}

// Execute retrieves all parties of the requested kind in registration order.
func (uc *ListPartiesUseCase) Execute(ctx context.Context, input ListPartiesInput) (*ListPartiesOutput, error) {
	parties, err := uc.partyRepo.ListByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	return &ListPartiesOutput{Parties: parties}, nil
}
