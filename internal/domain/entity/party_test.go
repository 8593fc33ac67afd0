// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

func TestParty_Apply(t *testing.T) {
	t.Run("debt_add raises debt", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "05551234567", "", "", "")

		if err := p.Apply(AdjustmentDebtAdd, decimal.NewFromInt(150)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Debt.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected debt 150, got %s", p.Debt)
		}
		if !p.Balance().Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected balance 150, got %s", p.Balance())
		}
	})

	t.Run("credit_add raises credit and lowers the balance", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")

		if err := p.Apply(AdjustmentCreditAdd, decimal.NewFromInt(80)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Credit.Equal(decimal.NewFromInt(80)) {
			t.Errorf("expected credit 80, got %s", p.Credit)
		}
		if !p.Balance().Equal(decimal.NewFromInt(-80)) {
			t.Errorf("expected balance -80, got %s", p.Balance())
		}
	})

	t.Run("payment_received clamps debt at zero", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		p.Debt = decimal.NewFromInt(300)

		if err := p.Apply(AdjustmentPaymentReceived, decimal.NewFromInt(1000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Debt.IsZero() {
			t.Errorf("expected debt 0, got %s", p.Debt)
		}
		if !p.Credit.IsZero() {
			t.Errorf("expected credit to stay 0, got %s", p.Credit)
		}
	})

	t.Run("payment_made clamps credit at zero", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		p.Credit = decimal.NewFromInt(50)

		if err := p.Apply(AdjustmentPaymentMade, decimal.NewFromInt(200)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Credit.IsZero() {
			t.Errorf("expected credit 0, got %s", p.Credit)
		}
	})

	t.Run("purchase raises supplier debt and the lifetime total", func(t *testing.T) {
		p := NewParty(PartyKindSupplier, "Ekran Deposu", "", "", "", "")

		if err := p.Apply(AdjustmentPurchase, decimal.NewFromInt(450)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Debt.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected debt 450, got %s", p.Debt)
		}
		if !p.TotalPurchased.Equal(decimal.NewFromInt(450)) {
			t.Errorf("expected total purchased 450, got %s", p.TotalPurchased)
		}
	})

	t.Run("payment clamps supplier debt and accumulates total paid", func(t *testing.T) {
		p := NewParty(PartyKindSupplier, "Ekran Deposu", "", "", "", "")
		p.Debt = decimal.NewFromInt(200)

		if err := p.Apply(AdjustmentPayment, decimal.NewFromInt(500)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !p.Debt.IsZero() {
			t.Errorf("expected debt 0, got %s", p.Debt)
		}
		if !p.TotalPaid.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected total paid 500, got %s", p.TotalPaid)
		}
	})

	t.Run("zero and negative amounts are rejected", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
			err := p.Apply(AdjustmentDebtAdd, amount)
			if !errors.Is(err, domainerror.ErrNonPositiveAdjustmentAmount) {
				t.Errorf("amount %s: expected ErrNonPositiveAdjustmentAmount, got %v", amount, err)
			}
		}
		if !p.Debt.IsZero() {
			t.Errorf("expected debt unchanged, got %s", p.Debt)
		}
	})

	t.Run("supplier kinds are rejected for customers", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")

		for _, kind := range []AdjustmentKind{AdjustmentPurchase, AdjustmentPayment} {
			err := p.Apply(kind, decimal.NewFromInt(100))
			if !errors.Is(err, domainerror.ErrAdjustmentKindNotAllowed) {
				t.Errorf("kind %s: expected ErrAdjustmentKindNotAllowed, got %v", kind, err)
			}
		}
	})

	t.Run("customer payment kinds are rejected for suppliers", func(t *testing.T) {
		p := NewParty(PartyKindSupplier, "Ekran Deposu", "", "", "", "")

		for _, kind := range []AdjustmentKind{AdjustmentPaymentReceived, AdjustmentPaymentMade} {
			err := p.Apply(kind, decimal.NewFromInt(100))
			if !errors.Is(err, domainerror.ErrAdjustmentKindNotAllowed) {
				t.Errorf("kind %s: expected ErrAdjustmentKindNotAllowed, got %v", kind, err)
			}
		}
	})

	t.Run("unknown kinds are rejected", func(t *testing.T) {
		p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")

		err := p.Apply(AdjustmentKind("discount"), decimal.NewFromInt(100))
		if !errors.Is(err, domainerror.ErrAdjustmentKindNotAllowed) {
			t.Errorf("expected ErrAdjustmentKindNotAllowed, got %v", err)
		}
	})
}

func TestAdjustmentKind_AllowedFor(t *testing.T) {
	cases := []struct {
		kind    AdjustmentKind
		party   PartyKind
		allowed bool
	}{
		{AdjustmentDebtAdd, PartyKindCustomer, true},
		{AdjustmentDebtAdd, PartyKindSupplier, true},
		{AdjustmentCreditAdd, PartyKindCustomer, true},
		{AdjustmentCreditAdd, PartyKindSupplier, true},
		{AdjustmentPaymentReceived, PartyKindCustomer, true},
		{AdjustmentPaymentReceived, PartyKindSupplier, false},
		{AdjustmentPaymentMade, PartyKindCustomer, true},
		{AdjustmentPaymentMade, PartyKindSupplier, false},
		{AdjustmentPurchase, PartyKindSupplier, true},
		{AdjustmentPurchase, PartyKindCustomer, false},
		{AdjustmentPayment, PartyKindSupplier, true},
		{AdjustmentPayment, PartyKindCustomer, false},
		{AdjustmentKind("discount"), PartyKindCustomer, false},
	}

	for _, tc := range cases {
		if got := tc.kind.AllowedFor(tc.party); got != tc.allowed {
			t.Errorf("AllowedFor(%s, %s) = %v, want %v", tc.kind, tc.party, got, tc.allowed)
		}
	}
}

func TestParty_Balance(t *testing.T) {
	p := NewParty(PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
	p.Debt = decimal.NewFromInt(150)
	p.Credit = decimal.NewFromInt(60)

	if !p.Balance().Equal(decimal.NewFromInt(90)) {
		t.Errorf("expected balance 90, got %s", p.Balance())
	}
}
