// Package repair contains repair ticket use cases.
package repair

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

func seededRepair(supplierID *uuid.UUID) *entity.Repair {
	return entity.NewRepair(
		"Ayşe Yılmaz",
		"05551234567",
		"Samsung",
		"Galaxy S21",
		"cracked screen",
		nil,
		decimal.NewFromInt(500),
		decimal.NewFromInt(300),
		supplierID,
		"",
	)
}

func TestUpdateRepairUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the status through the lifecycle", func(t *testing.T) {
		repair := seededRepair(nil)
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), &fakeLedgerRepo{}, nil)

		status := entity.RepairStatusCompleted
		out, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Repair.Status != entity.RepairStatusCompleted {
			t.Errorf("expected status completed, got %s", out.Repair.Status)
		}
	})

	t.Run("a parts cost change alone does not re-post", func(t *testing.T) {
		supplierID := uuid.New()
		repair := seededRepair(&supplierID)
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), ledgerRepo, nil)

		newCost := decimal.NewFromInt(450)
		if _, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, PartsCost: &newCost}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ledgerRepo.posted) != 0 {
			t.Errorf("expected no postings, got %d", len(ledgerRepo.posted))
		}
	})

	t.Run("assigning a new supplier posts the current parts cost", func(t *testing.T) {
		repair := seededRepair(nil)
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), ledgerRepo, nil)

		supplierID := uuid.New()
		if _, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, SupplierID: &supplierID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ledgerRepo.posted) != 1 {
			t.Fatalf("expected 1 posting, got %d", len(ledgerRepo.posted))
		}
		p := ledgerRepo.posted[0]
		if p.partyID != supplierID || p.kind != entity.AdjustmentPurchase || !p.amount.Equal(decimal.NewFromInt(300)) {
			t.Errorf("unexpected posting: %+v", p)
		}
	})

	t.Run("switching suppliers posts against the new supplier", func(t *testing.T) {
		oldSupplier := uuid.New()
		repair := seededRepair(&oldSupplier)
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), ledgerRepo, nil)

		newSupplier := uuid.New()
		if _, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, SupplierID: &newSupplier}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ledgerRepo.posted) != 1 {
			t.Fatalf("expected 1 posting, got %d", len(ledgerRepo.posted))
		}
		if ledgerRepo.posted[0].partyID != newSupplier {
			t.Errorf("expected posting against the new supplier, got %s", ledgerRepo.posted[0].partyID)
		}
	})

	t.Run("re-assigning the same supplier does not re-post", func(t *testing.T) {
		supplierID := uuid.New()
		repair := seededRepair(&supplierID)
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), ledgerRepo, nil)

		same := supplierID
		if _, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, SupplierID: &same}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(ledgerRepo.posted) != 0 {
			t.Errorf("expected no postings, got %d", len(ledgerRepo.posted))
		}
	})

	t.Run("clearing the supplier does not post", func(t *testing.T) {
		supplierID := uuid.New()
		repair := seededRepair(&supplierID)
		ledgerRepo := &fakeLedgerRepo{}
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), ledgerRepo, nil)

		out, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, ClearSupplier: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Repair.SupplierID != nil {
			t.Error("expected the supplier link to be cleared")
		}
		if len(ledgerRepo.posted) != 0 {
			t.Errorf("expected no postings, got %d", len(ledgerRepo.posted))
		}
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		repair := seededRepair(nil)
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), &fakeLedgerRepo{}, nil)

		status := entity.RepairStatus("broken")
		_, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, Status: &status})
		if !errors.Is(err, domainerror.ErrInvalidRepairStatus) {
			t.Fatalf("expected ErrInvalidRepairStatus, got %v", err)
		}
	})

	t.Run("empty customer name is rejected", func(t *testing.T) {
		repair := seededRepair(nil)
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), &fakeLedgerRepo{}, nil)

		name := "  "
		_, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, CustomerName: &name})
		if !errors.Is(err, domainerror.ErrEmptyCustomerName) {
			t.Fatalf("expected ErrEmptyCustomerName, got %v", err)
		}
	})

	t.Run("negative costs are rejected", func(t *testing.T) {
		repair := seededRepair(nil)
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(repair), &fakeLedgerRepo{}, nil)

		cost := decimal.NewFromInt(-5)
		_, err := uc.Execute(ctx, UpdateRepairInput{RepairID: repair.ID, PartsCost: &cost})
		if !errors.Is(err, domainerror.ErrNegativeRepairCost) {
			t.Fatalf("expected ErrNegativeRepairCost, got %v", err)
		}
	})

	t.Run("unknown repair yields not found", func(t *testing.T) {
		uc := NewUpdateRepairUseCase(newFakeRepairRepo(), &fakeLedgerRepo{}, nil)

		_, err := uc.Execute(ctx, UpdateRepairInput{RepairID: uuid.New()})
		if !errors.Is(err, domainerror.ErrRepairNotFound) {
			t.Fatalf("expected ErrRepairNotFound, got %v", err)
		}
	})
}
