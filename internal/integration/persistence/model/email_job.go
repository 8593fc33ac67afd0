// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// EmailJobModel represents the email_jobs table backing the reminder queue.
type EmailJobModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PartyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RecipientEmail string          `gorm:"type:varchar(255);not null"`
	RecipientName  string          `gorm:"type:varchar(255)"`
	Subject        string          `gorm:"type:varchar(255);not null"`
	DebtAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index"`
	Attempts       int             `gorm:"not null;default:0"`
	MaxAttempts    int             `gorm:"not null;default:3"`
	LastError      string          `gorm:"type:text"`
	ProviderID     string          `gorm:"type:varchar(255)"`
	CreatedAt      time.Time       `gorm:"not null"`
	ScheduledAt    time.Time       `gorm:"not null;index"`
	ProcessedAt    *time.Time      `gorm:"type:timestamp"`
}

// TableName returns the table name for the EmailJobModel.
func (EmailJobModel) TableName() string {
	return "email_jobs"
}

// ToEntity converts an EmailJobModel to a domain EmailJob entity.
func (m *EmailJobModel) ToEntity() *entity.EmailJob {
	return &entity.EmailJob{
		ID:             m.ID,
		PartyID:        m.PartyID,
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		DebtAmount:     m.DebtAmount,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ProviderID:     m.ProviderID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailJobFromEntity creates an EmailJobModel from a domain EmailJob entity.
func EmailJobFromEntity(job *entity.EmailJob) *EmailJobModel {
	return &EmailJobModel{
		ID:             job.ID,
		PartyID:        job.PartyID,
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		DebtAmount:     job.DebtAmount,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ProviderID:     job.ProviderID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
