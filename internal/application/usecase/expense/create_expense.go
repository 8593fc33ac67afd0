// Package expense contains operating expense use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	summaryCache adapter.SummaryCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, summaryCache adapter.SummaryCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseDescription,
			"expense description cannot be empty",
			domainerror.ErrEmptyExpenseDescription,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNonPositiveExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrNonPositiveExpenseAmount,
		)
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := entity.NewExpense(description, strings.TrimSpace(input.Category), input.Amount, date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	invalidateSummaries(ctx, uc.summaryCache)

	return &CreateExpenseOutput{Expense: expense}, nil
}

// invalidateSummaries drops cached dashboard summaries after a write that
// changes their inputs. Best-effort: a cache failure never fails the write.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("Failed to invalidate summary cache", "error", err)
	}
}
