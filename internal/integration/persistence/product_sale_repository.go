// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

// productSaleRepository implements the adapter.ProductSaleRepository interface.
type productSaleRepository struct {
	db *gorm.DB
}

// NewProductSaleRepository creates a new product sale repository instance.
func NewProductSaleRepository(db *gorm.DB) adapter.ProductSaleRepository {
	return &productSaleRepository{
		db: db,
	}
}

// Create creates a product sale and decrements the product's stock in the
// same transaction. Stock clamps at zero; an over-sale records the sale and
// empties the shelf rather than failing the counter transaction.
func (r *productSaleRepository) Create(ctx context.Context, sale *entity.ProductSale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.ProductSaleFromEntity(sale)).Error; err != nil {
			return err
		}

		if sale.ProductID == nil {
			return nil
		}

		result := tx.Model(&model.ProductModel{}).
			Where("id = ?", *sale.ProductID).
			Update("stock", gorm.Expr("CASE WHEN stock > ? THEN stock - ? ELSE 0 END", sale.Quantity, sale.Quantity))
		return result.Error
	})
}

// FindByFilter retrieves product sales matching the filter, newest first.
func (r *productSaleRepository) FindByFilter(ctx context.Context, filter adapter.SaleFilter) ([]*entity.ProductSale, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductSaleModel{})

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

	var saleModels []model.ProductSaleModel
	result := query.Order("created_at DESC, id DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	sales := make([]*entity.ProductSale, len(saleModels))
	for i, sm := range saleModels {
		sales[i] = sm.ToEntity()
	}
	return sales, nil
}

// Delete removes a product sale record.
func (r *productSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductSaleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductSaleNotFound
	}
	return nil
}
