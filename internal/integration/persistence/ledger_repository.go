// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Post appends a ledger entry and moves the party's balances in a single
// transaction. Balance columns are updated with SQL expressions rather than
// read-modify-write so concurrent posts against the same party serialize in
// the database. Subtractions clamp at zero via CASE WHEN, which works on
// both PostgreSQL and SQLite.
func (r *ledgerRepository) Post(ctx context.Context, partyID uuid.UUID, kind entity.AdjustmentKind, amount decimal.Decimal, description string) (*entity.Party, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := entity.NewLedgerEntry(partyID, kind, amount, description)
		if err := tx.Create(model.LedgerEntryFromEntity(entry)).Error; err != nil {
			return err
		}

		updates := balanceUpdates(kind, amount)
		updates["updated_at"] = time.Now().UTC()

		result := tx.Model(&model.PartyModel{}).
			Where("id = ?", partyID).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPartyNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var partyModel model.PartyModel
	result := r.db.WithContext(ctx).Where("id = ?", partyID).First(&partyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPartyNotFound
		}
		return nil, result.Error
	}
	return partyModel.ToEntity(), nil
}

// balanceUpdates maps an adjustment kind to the SQL expressions that move
// the party's balance columns.
func balanceUpdates(kind entity.AdjustmentKind, amount decimal.Decimal) map[string]any {
	updates := map[string]any{}
	switch kind {
	case entity.AdjustmentDebtAdd:
		updates["debt"] = gorm.Expr("debt + ?", amount)
	case entity.AdjustmentCreditAdd:
		updates["credit"] = gorm.Expr("credit + ?", amount)
	case entity.AdjustmentPaymentReceived:
		updates["debt"] = gorm.Expr("CASE WHEN debt > ? THEN debt - ? ELSE 0 END", amount, amount)
	case entity.AdjustmentPaymentMade:
		updates["credit"] = gorm.Expr("CASE WHEN credit > ? THEN credit - ? ELSE 0 END", amount, amount)
	case entity.AdjustmentPurchase:
		updates["debt"] = gorm.Expr("debt + ?", amount)
		updates["total_purchased"] = gorm.Expr("total_purchased + ?", amount)
	case entity.AdjustmentPayment:
		updates["debt"] = gorm.Expr("CASE WHEN debt > ? THEN debt - ? ELSE 0 END", amount, amount)
		updates["total_paid"] = gorm.Expr("total_paid + ?", amount)
	}
	return updates
}

// ListByParty retrieves a party's ledger entries, newest first.
func (r *ledgerRepository) ListByParty(ctx context.Context, partyID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var entryModels []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at DESC, id DESC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}
