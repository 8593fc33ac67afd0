// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

// PartyKind represents which side of the ledger a party lives on.
type PartyKind string

const (
	PartyKindCustomer PartyKind = "customer"
	PartyKindSupplier PartyKind = "supplier"
)

// AdjustmentKind represents a signed change to a party's debt or credit.
// Applying an adjustment is the only legal way to move a party's balances.
type AdjustmentKind string

const (
	// AdjustmentDebtAdd increases the amount the party owes the shop.
	AdjustmentDebtAdd AdjustmentKind = "debt_add"
	// AdjustmentCreditAdd increases the amount the shop owes the party.
	AdjustmentCreditAdd AdjustmentKind = "credit_add"
	// AdjustmentPaymentReceived records money received from a customer,
	// reducing their debt. Clamps at zero.
	AdjustmentPaymentReceived AdjustmentKind = "payment_received"
	// AdjustmentPaymentMade records money paid out to a customer,
	// reducing the shop's credit with them. Clamps at zero.
	AdjustmentPaymentMade AdjustmentKind = "payment_made"
	// AdjustmentPurchase records a parts purchase from a supplier on account.
	AdjustmentPurchase AdjustmentKind = "purchase"
	// AdjustmentPayment records a payment made to a supplier. Clamps at zero.
	AdjustmentPayment AdjustmentKind = "payment"
)

// Party represents a customer or supplier directory entry with a running
// debt/credit balance (the "cari" ledger).
type Party struct {
	ID      uuid.UUID
	Kind    PartyKind
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string

	// Debt is what the party owes the shop; Credit is what the shop owes
	// the party. Both are non-negative at all times.
	Debt   decimal.Decimal
	Credit decimal.Decimal

	// Lifetime supplier accumulators, independent of windowed aggregation.
	TotalPurchased decimal.Decimal
	TotalPaid      decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewParty creates a new Party entity with zeroed balances.
func NewParty(kind PartyKind, name, phone, email, address, notes string) *Party {
	now := time.Now().UTC()

	return &Party{
		ID:             uuid.New(),
		Kind:           kind,
		Name:           name,
		Phone:          phone,
		Email:          email,
		Address:        address,
		Notes:          notes,
		Debt:           decimal.Zero,
		Credit:         decimal.Zero,
		TotalPurchased: decimal.Zero,
		TotalPaid:      decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Balance returns debt minus credit. It is always derived, never stored.
func (p *Party) Balance() decimal.Decimal {
	return p.Debt.Sub(p.Credit)
}

// AllowedFor reports whether the adjustment kind is valid for a party kind.
func (k AdjustmentKind) AllowedFor(kind PartyKind) bool {
	switch k {
	case AdjustmentDebtAdd, AdjustmentCreditAdd:
		return true
	case AdjustmentPaymentReceived, AdjustmentPaymentMade:
		return kind == PartyKindCustomer
	case AdjustmentPurchase, AdjustmentPayment:
		return kind == PartyKindSupplier
	default:
		return false
	}
}

// Apply mutates the party's balances according to the adjustment kind.
// Payments clamp at zero; debt and credit never go negative.
func (p *Party) Apply(kind AdjustmentKind, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domainerror.ErrNonPositiveAdjustmentAmount
	}
	if !kind.AllowedFor(p.Kind) {
		return domainerror.ErrAdjustmentKindNotAllowed
	}

	switch kind {
	case AdjustmentDebtAdd:
		p.Debt = p.Debt.Add(amount)
	case AdjustmentCreditAdd:
		p.Credit = p.Credit.Add(amount)
	case AdjustmentPaymentReceived:
		p.Debt = clampSub(p.Debt, amount)
	case AdjustmentPaymentMade:
		p.Credit = clampSub(p.Credit, amount)
	case AdjustmentPurchase:
		p.Debt = p.Debt.Add(amount)
		p.TotalPurchased = p.TotalPurchased.Add(amount)
	case AdjustmentPayment:
		p.Debt = clampSub(p.Debt, amount)
		p.TotalPaid = p.TotalPaid.Add(amount)
	}

	p.UpdatedAt = time.Now().UTC()
	return nil
}

// clampSub subtracts b from a, flooring the result at zero.
func clampSub(a, b decimal.Decimal) decimal.Decimal {
	result := a.Sub(b)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}
