// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// PartyModel represents the parties table in the database.
type PartyModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind           string          `gorm:"type:varchar(10);not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Phone          string          `gorm:"type:varchar(32);index"`
	Email          string          `gorm:"type:varchar(255)"`
	Address        string          `gorm:"type:text"`
	Notes          string          `gorm:"type:text"`
	Debt           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Credit         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPurchased decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPaid      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PartyModel.
func (PartyModel) TableName() string {
	return "parties"
}

// ToEntity converts a PartyModel to a domain Party entity.
func (m *PartyModel) ToEntity() *entity.Party {
	return &entity.Party{
		ID:             m.ID,
		Kind:           entity.PartyKind(m.Kind),
		Name:           m.Name,
		Phone:          m.Phone,
		Email:          m.Email,
		Address:        m.Address,
		Notes:          m.Notes,
		Debt:           m.Debt,
		Credit:         m.Credit,
		TotalPurchased: m.TotalPurchased,
		TotalPaid:      m.TotalPaid,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PartyFromEntity creates a PartyModel from a domain Party entity.
func PartyFromEntity(party *entity.Party) *PartyModel {
	return &PartyModel{
		ID:             party.ID,
		Kind:           string(party.Kind),
		Name:           party.Name,
		Phone:          party.Phone,
		Email:          party.Email,
		Address:        party.Address,
		Notes:          party.Notes,
		Debt:           party.Debt,
		Credit:         party.Credit,
		TotalPurchased: party.TotalPurchased,
		TotalPaid:      party.TotalPaid,
		CreatedAt:      party.CreatedAt,
		UpdatedAt:      party.UpdatedAt,
	}
}
