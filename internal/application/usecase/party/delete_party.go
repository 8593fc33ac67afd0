// Package party contains party directory use cases.
package party

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
)

// DeletePartyInput represents the input for party deletion.
type DeletePartyInput struct {
	PartyID uuid.UUID
}

// DeletePartyUseCase handles party deletion logic.
type DeletePartyUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewDeletePartyUseCase creates a new DeletePartyUseCase instance.
func NewDeletePartyUseCase(partyRepo adapter.PartyRepository) *DeletePartyUseCase {
	return &DeletePartyUseCase{
		partyRepo: partyRepo,
	}
}

// Execute performs the party deletion. Deleting a non-existent id is a
// no-op. Transactions previously attributed to the party become
// unattributed on the next aggregation; they are not an error.
func (uc *DeletePartyUseCase) Execute(ctx context.Context, input DeletePartyInput) error {
	if err := uc.partyRepo.Delete(ctx, input.PartyID); err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	return nil
}
