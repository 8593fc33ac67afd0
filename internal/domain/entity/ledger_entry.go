// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry records a single applied adjustment against a party.
// Entries are append-only; the party's balances are the running result.
type LedgerEntry struct {
	ID          uuid.UUID
	PartyID     uuid.UUID
	Kind        AdjustmentKind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// NewLedgerEntry creates a new LedgerEntry for a party.
func NewLedgerEntry(partyID uuid.UUID, kind AdjustmentKind, amount decimal.Decimal, description string) *LedgerEntry {
	return &LedgerEntry{
		ID:          uuid.New(),
		PartyID:     partyID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
