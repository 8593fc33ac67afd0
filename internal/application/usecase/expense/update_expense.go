// Package expense contains operating expense use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left untouched.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Description *string
	Category    *string
	Amount      *decimal.Decimal
	Date        *time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeEmptyExpenseDescription,
				"expense description cannot be empty",
				domainerror.ErrEmptyExpenseDescription,
			)
		}
		expense.Description = description
	}

	if input.Category != nil {
		expense.Category = strings.TrimSpace(*input.Category)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNonPositiveExpenseAmount,
				"expense amount must be positive",
				domainerror.ErrNonPositiveExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)

	return &UpdateExpenseOutput{Expense: expense}, nil
}
