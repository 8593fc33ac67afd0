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

// phoneSaleRepository implements the adapter.PhoneSaleRepository interface.
type phoneSaleRepository struct {
	db *gorm.DB
}

// NewPhoneSaleRepository creates a new phone sale repository instance.
func NewPhoneSaleRepository(db *gorm.DB) adapter.PhoneSaleRepository {
	return &phoneSaleRepository{
		db: db,
	}
}

// Create creates a new phone sale record in the database.
func (r *phoneSaleRepository) Create(ctx context.Context, sale *entity.PhoneSale) error {
	saleModel := model.PhoneSaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a phone sale by its ID.
func (r *phoneSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PhoneSale, error) {
	var saleModel model.PhoneSaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPhoneSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindByFilter retrieves phone sales matching the filter, newest first.
func (r *phoneSaleRepository) FindByFilter(ctx context.Context, filter adapter.SaleFilter) ([]*entity.PhoneSale, error) {
	query := r.db.WithContext(ctx).Model(&model.PhoneSaleModel{})

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

	var saleModels []model.PhoneSaleModel
	result := query.Order("created_at DESC, id DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.PhoneSale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// Delete removes a phone sale record.
func (r *phoneSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PhoneSaleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPhoneSaleNotFound
	}
	return nil
}
