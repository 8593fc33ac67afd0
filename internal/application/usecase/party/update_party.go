// Package party contains party directory use cases.
package party

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// UpdatePartyInput represents the input for party update. Nil fields are
// left untouched. The id and the running balances cannot be patched;
// balances move only through ledger posting.
type UpdatePartyInput struct {
	PartyID uuid.UUID
	Patch   adapter.PartyPatch
}

// UpdatePartyOutput represents the output of party update.
type UpdatePartyOutput struct {
	Party *entity.Party
}

// UpdatePartyUseCase handles party update logic.
type UpdatePartyUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewUpdatePartyUseCase creates a new UpdatePartyUseCase instance.
func NewUpdatePartyUseCase(partyRepo adapter.PartyRepository) *UpdatePartyUseCase {
	return &UpdatePartyUseCase{
		partyRepo: partyRepo,
	}
}

// Execute performs the party update. Renaming a party never relabels
// historical transaction snapshots.
func (uc *UpdatePartyUseCase) Execute(ctx context.Context, input UpdatePartyInput) (*UpdatePartyOutput, error) {
	if input.Patch.Name != nil && strings.TrimSpace(*input.Patch.Name) == "" {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeEmptyPartyName,
			"party name cannot be empty",
			domainerror.ErrEmptyPartyName,
		)
	}

	party, err := uc.partyRepo.Update(ctx, input.PartyID, input.Patch)
	if err != nil {
		return nil, err
	}

	return &UpdatePartyOutput{Party: party}, nil
}
