// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// LedgerRepository defines the interface for ledger posting persistence.
type LedgerRepository interface {
	// Post appends a ledger entry and updates the party's balances in one
	// database transaction. Balance columns are moved with atomic SQL
	// expressions so concurrent posts against the same party never lose
	// updates. Returns the party with its new balances.
	Post(ctx context.Context, partyID uuid.UUID, kind entity.AdjustmentKind, amount decimal.Decimal, description string) (*entity.Party, error)

	// ListByParty retrieves a party's ledger entries, newest first.
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]*entity.LedgerEntry, error)
}
