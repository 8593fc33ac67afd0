// Package ledger contains ledger posting use cases.
package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// ListEntriesInput represents the input for listing a party's ledger entries.
type ListEntriesInput struct {
	PartyID uuid.UUID
}

// ListEntriesOutput represents a party's ledger history.
type ListEntriesOutput struct {
	Party   *entity.Party
	Entries []*entity.LedgerEntry
}

// ListEntriesUseCase handles ledger history retrieval.
type ListEntriesUseCase struct {
	partyRepo  adapter.PartyRepository
	ledgerRepo adapter.LedgerRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(partyRepo adapter.PartyRepository, ledgerRepo adapter.LedgerRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		partyRepo:  partyRepo,
		ledgerRepo: ledgerRepo,
	}
}

// Execute retrieves the party and its ledger entries, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	party, err := uc.partyRepo.FindByID(ctx, input.PartyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPartyNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerPartyNotFound,
				"party not found",
				domainerror.ErrPartyNotFound,
			)
		}
		return nil, err
	}

	entries, err := uc.ledgerRepo.ListByParty(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}

	return &ListEntriesOutput{
		Party:   party,
		Entries: entries,
	}, nil
}
