// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// RepairModel represents the repairs table in the database.
type RepairModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"type:varchar(255);not null;index"`
	CustomerPhone string          `gorm:"type:varchar(32);index"`
	Brand         string          `gorm:"type:varchar(100)"`
	Model         string          `gorm:"type:varchar(100)"`
	Fault         string          `gorm:"type:text"`
	Parts         pq.StringArray  `gorm:"type:text[]"`
	RepairCost    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PartsCost     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Supplier *PartyModel `gorm:"foreignKey:SupplierID;references:ID"`
}

// TableName returns the table name for the RepairModel.
func (RepairModel) TableName() string {
	return "repairs"
}

// ToEntity converts a RepairModel to a domain Repair entity.
func (m *RepairModel) ToEntity() *entity.Repair {
	return &entity.Repair{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Brand:         m.Brand,
		Model:         m.Model,
		Fault:         m.Fault,
		Parts:         []string(m.Parts),
		RepairCost:    m.RepairCost,
		PartsCost:     m.PartsCost,
		Status:        entity.RepairStatus(m.Status),
		SupplierID:    m.SupplierID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RepairFromEntity creates a RepairModel from a domain Repair entity.
func RepairFromEntity(repair *entity.Repair) *RepairModel {
	return &RepairModel{
		ID:            repair.ID,
		CustomerName:  repair.CustomerName,
		CustomerPhone: repair.CustomerPhone,
		Brand:         repair.Brand,
		Model:         repair.Model,
		Fault:         repair.Fault,
		Parts:         pq.StringArray(repair.Parts),
		RepairCost:    repair.RepairCost,
		PartsCost:     repair.PartsCost,
		Status:        string(repair.Status),
		SupplierID:    repair.SupplierID,
		Notes:         repair.Notes,
		CreatedAt:     repair.CreatedAt,
		UpdatedAt:     repair.UpdatedAt,
	}
}
