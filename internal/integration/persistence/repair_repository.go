// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

// repairRepository implements the adapter.RepairRepository interface.
type repairRepository struct {
	db *gorm.DB
}

// NewRepairRepository creates a new repair repository instance.
func NewRepairRepository(db *gorm.DB) adapter.RepairRepository {
	return &repairRepository{
		db: db,
	}
}

// Create creates a new repair ticket in the database.
func (r *repairRepository) Create(ctx context.Context, repair *entity.Repair) error {
	repairModel := model.RepairFromEntity(repair)
	result := r.db.WithContext(ctx).Create(repairModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a repair by its ID.
func (r *repairRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Repair, error) {
	var repairModel model.RepairModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&repairModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRepairNotFound
		}
		return nil, result.Error
	}
	return repairModel.ToEntity(), nil
}

// FindByFilter retrieves repairs matching the filter, newest first.
func (r *repairRepository) FindByFilter(ctx context.Context, filter adapter.RepairFilter) ([]*entity.Repair, error) {
	query := r.db.WithContext(ctx).Model(&model.RepairModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", filter.EndDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(customer_name) LIKE ?", searchPattern)
	}

	var repairModels []model.RepairModel
	result := query.Order("created_at DESC, id DESC").Find(&repairModels)
	if result.Error != nil {
		return nil, result.Error
	}

	repairs := make([]*entity.Repair, len(repairModels))
	for i, rm := range repairModels {
		repairs[i] = rm.ToEntity()
	}
	return repairs, nil
}

// Update updates an existing repair ticket.
func (r *repairRepository) Update(ctx context.Context, repair *entity.Repair) error {
	repairModel := model.RepairFromEntity(repair)
	result := r.db.WithContext(ctx).
		Model(&model.RepairModel{}).
		Where("id = ?", repair.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(repairModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRepairNotFound
	}
	return nil
}

// Delete removes a repair ticket.
func (r *repairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RepairModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRepairNotFound
	}
	return nil
}
