// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue adds a job to the queue.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailJobFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	return result.Error
}

// GetPendingJobs retrieves up to limit jobs whose retry time has come,
// oldest scheduled first.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var jobModels []model.EmailJobModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.EmailStatusPending), time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(jobModels))
	for i, jm := range jobModels {
		jobs[i] = jm.ToEntity()
	}
	return jobs, nil
}

// Update persists a job's state transition.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailJobFromEntity(job)
	result := r.db.WithContext(ctx).
		Model(&model.EmailJobModel{}).
		Where("id = ?", job.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(jobModel)
	return result.Error
}

// HasPendingForParty reports whether a pending or processing reminder
// already exists for the party.
func (r *emailQueueRepository) HasPendingForParty(ctx context.Context, partyID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EmailJobModel{}).
		Where("party_id = ? AND status IN ?", partyID, []string{
			string(entity.EmailStatusPending),
			string(entity.EmailStatusProcessing),
		}).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
