// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails through a provider.
type EmailSender interface {
	// Send sends an email. Errors distinguish permanent failures (do not
	// retry) from temporary ones via the domain email error codes.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailQueueRepository defines the interface for the reminder queue.
type EmailQueueRepository interface {
	// Enqueue adds a job to the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit jobs that are ready to process.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists a job's state transition.
	Update(ctx context.Context, job *entity.EmailJob) error

	// HasPendingForParty reports whether a pending or processing reminder
	// already exists for the party, to avoid duplicate nagging.
	HasPendingForParty(ctx context.Context, partyID uuid.UUID) (bool, error)
}
