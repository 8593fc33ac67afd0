// Package reminder contains the debt-reminder queueing use case.
package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
)

// QueueDebtRemindersOutput reports how many reminders were enqueued and how
// many indebted parties were skipped.
type QueueDebtRemindersOutput struct {
	Queued  int
	Skipped int
}

// QueueDebtRemindersUseCase enqueues reminder emails for customers that owe
// money. Customers without an email address, and customers that already have
// a reminder pending, are skipped.
type QueueDebtRemindersUseCase struct {
	partyRepo adapter.PartyRepository
	queueRepo adapter.EmailQueueRepository
}

// NewQueueDebtRemindersUseCase creates a new QueueDebtRemindersUseCase instance.
func NewQueueDebtRemindersUseCase(
	partyRepo adapter.PartyRepository,
	queueRepo adapter.EmailQueueRepository,
) *QueueDebtRemindersUseCase {
	return &QueueDebtRemindersUseCase{
		partyRepo: partyRepo,
		queueRepo: queueRepo,
	}
}

// Execute scans indebted customers and enqueues one reminder each.
// Individual enqueue failures are logged and counted, not fatal.
func (uc *QueueDebtRemindersUseCase) Execute(ctx context.Context) (*QueueDebtRemindersOutput, error) {
	customers, err := uc.partyRepo.ListByKind(ctx, entity.PartyKindCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	output := &QueueDebtRemindersOutput{}

	for _, customer := range customers {
		if !customer.Debt.IsPositive() || customer.Email == "" {
			continue
		}

		pending, err := uc.queueRepo.HasPendingForParty(ctx, customer.ID)
		if err != nil {
			slog.Warn("failed to check pending reminders",
				"partyId", customer.ID,
				"error", err,
			)
			output.Skipped++
			continue
		}
		if pending {
			output.Skipped++
			continue
		}

		job := entity.NewEmailJob(
			customer.ID,
			customer.Email,
			customer.Name,
			fmt.Sprintf("Payment reminder: %s outstanding", customer.Debt.StringFixed(2)),
			customer.Debt,
		)

		if err := uc.queueRepo.Enqueue(ctx, job); err != nil {
			slog.Warn("failed to enqueue debt reminder",
				"partyId", customer.ID,
				"error", err,
			)
			output.Skipped++
			continue
		}

		output.Queued++
	}

	slog.Info("debt reminders queued",
		"queued", output.Queued,
		"skipped", output.Skipped,
	)

	return output, nil
}
