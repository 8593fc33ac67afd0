// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseRepository defines the interface for expense persistence.
type ExpenseRepository interface {
	// Create creates a new expense record.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, newest first.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense record.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense record.
	Delete(ctx context.Context, id uuid.UUID) error
}
