// Package party contains party directory use cases.
package party

import (
	"context"
	"fmt"
	"strings"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreatePartyInput represents the input for party creation.
type CreatePartyInput struct {
	Kind    entity.PartyKind
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// CreatePartyOutput represents the output of party creation.
type CreatePartyOutput struct {
	Party *entity.Party
}

// CreatePartyUseCase handles party creation logic.
type CreatePartyUseCase struct {
	partyRepo adapter.PartyRepository
}

// NewCreatePartyUseCase creates a new CreatePartyUseCase instance.
func NewCreatePartyUseCase(partyRepo adapter.PartyRepository) *CreatePartyUseCase {
	return &CreatePartyUseCase{
		partyRepo: partyRepo,
	}
}

// Execute performs the party creation.
func (uc *CreatePartyUseCase) Execute(ctx context.Context, input CreatePartyInput) (*CreatePartyOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeEmptyPartyName,
			"party name cannot be empty",
			domainerror.ErrEmptyPartyName,
		)
	}

	if input.Kind != entity.PartyKindCustomer && input.Kind != entity.PartyKindSupplier {
		return nil, domainerror.NewPartyError(
			domainerror.ErrCodeInvalidPartyKind,
			"party kind must be 'customer' or 'supplier'",
			domainerror.ErrInvalidPartyKind,
		)
	}

	party := entity.NewParty(input.Kind, strings.TrimSpace(input.Name), input.Phone, input.Email, input.Address, input.Notes)

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	return &CreatePartyOutput{Party: party}, nil
}
