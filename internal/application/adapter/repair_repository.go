// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// RepairFilter defines filter options for listing repairs.
type RepairFilter struct {
	Status    *entity.RepairStatus
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive customer name match
}

// RepairRepository defines the interface for repair ticket persistence.
type RepairRepository interface {
	// Create creates a new repair ticket.
	Create(ctx context.Context, repair *entity.Repair) error

	// FindByID retrieves a repair by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Repair, error)

	// FindByFilter retrieves repairs matching the filter, newest first.
	FindByFilter(ctx context.Context, filter RepairFilter) ([]*entity.Repair, error)

	// Update updates an existing repair ticket.
	Update(ctx context.Context, repair *entity.Repair) error

	// Delete removes a repair ticket.
	Delete(ctx context.Context, id uuid.UUID) error
}
