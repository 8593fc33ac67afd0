// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

// partyRepository implements the adapter.PartyRepository interface.
type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository instance.
func NewPartyRepository(db *gorm.DB) adapter.PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// Create creates a new party in the database.
func (r *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	partyModel := model.PartyFromEntity(party)
	result := r.db.WithContext(ctx).Create(partyModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a party by its ID.
func (r *partyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var partyModel model.PartyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&partyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPartyNotFound
		}
		return nil, result.Error
	}
	return partyModel.ToEntity(), nil
}

// ListByKind retrieves all parties of the given kind, oldest first. The
// ordering is load-bearing: attribution resolves name and phone collisions
// to the first-registered party.
func (r *partyRepository) ListByKind(ctx context.Context, kind entity.PartyKind) ([]*entity.Party, error) {
	var partyModels []model.PartyModel
	result := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("created_at ASC, id ASC").
		Find(&partyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	parties := make([]*entity.Party, len(partyModels))
	for i, pm := range partyModels {
		parties[i] = pm.ToEntity()
	}
	return parties, nil
}

// Update applies a patch to an existing party. Balances are never patched
// here; they move only through the ledger.
func (r *partyRepository) Update(ctx context.Context, id uuid.UUID, patch adapter.PartyPatch) (*entity.Party, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		result := r.db.WithContext(ctx).
			Model(&model.PartyModel{}).
			Where("id = ?", id).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, domainerror.ErrPartyNotFound
		}
	}

	return r.FindByID(ctx, id)
}

// Delete removes a party. Deleting a non-existent id is a no-op.
func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PartyModel{})
	return result.Error
}
