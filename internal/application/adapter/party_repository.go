// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// PartyPatch carries optional field updates for a party. Nil fields are left
// untouched; the id and the running balances are never patched directly.
type PartyPatch struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Notes   *string
}

// PartyRepository defines the interface for party directory persistence.
type PartyRepository interface {
	// Create creates a new party in the directory.
	Create(ctx context.Context, party *entity.Party) error

	// FindByID retrieves a party by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)

	// ListByKind retrieves all parties of the given kind, oldest first.
	// Insertion order matters: attribution resolves name/phone collisions
	// to the first-registered party.
	ListByKind(ctx context.Context, kind entity.PartyKind) ([]*entity.Party, error)

	// Update applies a patch to an existing party.
	Update(ctx context.Context, id uuid.UUID, patch PartyPatch) (*entity.Party, error)

	// Delete removes a party. Deleting a non-existent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
