// Package ledger contains ledger posting use cases.
package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// PostAdjustmentInput represents the input for posting a ledger adjustment.
type PostAdjustmentInput struct {
	PartyID     uuid.UUID
	Kind        entity.AdjustmentKind
	Amount      decimal.Decimal
	Description string
}

// PostAdjustmentOutput represents the output of a ledger posting.
type PostAdjustmentOutput struct {
	Party *entity.Party
}

// PostAdjustmentUseCase handles ledger posting logic. Posting is the only
// legal way to move a party's debt/credit balances.
type PostAdjustmentUseCase struct {
	partyRepo    adapter.PartyRepository
	ledgerRepo   adapter.LedgerRepository
	summaryCache adapter.SummaryCache
}

// NewPostAdjustmentUseCase creates a new PostAdjustmentUseCase instance.
func NewPostAdjustmentUseCase(partyRepo adapter.PartyRepository, ledgerRepo adapter.LedgerRepository, summaryCache adapter.SummaryCache) *PostAdjustmentUseCase {
	return &PostAdjustmentUseCase{
		partyRepo:    partyRepo,
		ledgerRepo:   ledgerRepo,
		summaryCache: summaryCache,
	}
}

// Execute validates and posts the adjustment. The entry and the balance
// update persist together; on any failure no state changes.
func (uc *PostAdjustmentUseCase) Execute(ctx context.Context, input PostAdjustmentInput) (*PostAdjustmentOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNonPositiveAmount,
			"adjustment amount must be positive",
			domainerror.ErrNonPositiveAdjustmentAmount,
		)
	}

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

	if !input.Kind.AllowedFor(party.Kind) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeKindNotAllowed,
			"adjustment kind not allowed for this party",
			domainerror.ErrAdjustmentKindNotAllowed,
		)
	}

	updated, err := uc.ledgerRepo.Post(ctx, input.PartyID, input.Kind, input.Amount, input.Description)
	if err != nil {
		return nil, err
	}

	// The dashboard reports open debt totals; a posting makes any cached
	// summary stale. Best-effort: a cache failure never fails the posting.
	if uc.summaryCache != nil {
		if err := uc.summaryCache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate summary cache", "error", err)
		}
	}

	return &PostAdjustmentOutput{Party: updated}, nil
}
