// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// PhoneSaleModel represents the phone_sales table in the database.
type PhoneSaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"type:varchar(255);not null;index"`
	CustomerPhone string          `gorm:"type:varchar(32);index"`
	Brand         string          `gorm:"type:varchar(100)"`
	Model         string          `gorm:"type:varchar(100)"`
	IMEI          string          `gorm:"column:imei;type:varchar(20)"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PhoneSaleModel.
func (PhoneSaleModel) TableName() string {
	return "phone_sales"
}

// ToEntity converts a PhoneSaleModel to a domain PhoneSale entity.
func (m *PhoneSaleModel) ToEntity() *entity.PhoneSale {
	return &entity.PhoneSale{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Brand:         m.Brand,
		Model:         m.Model,
		IMEI:          m.IMEI,
		PurchasePrice: m.PurchasePrice,
		SalePrice:     m.SalePrice,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PhoneSaleFromEntity creates a PhoneSaleModel from a domain PhoneSale entity.
func PhoneSaleFromEntity(sale *entity.PhoneSale) *PhoneSaleModel {
	return &PhoneSaleModel{
		ID:            sale.ID,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		Brand:         sale.Brand,
		Model:         sale.Model,
		IMEI:          sale.IMEI,
		PurchasePrice: sale.PurchasePrice,
		SalePrice:     sale.SalePrice,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}
