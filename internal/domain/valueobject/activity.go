// Package valueobject contains domain value objects for the repair-shop ledger.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// PartyActivity aggregates the transactions attributed to one party inside a
// date window. It is a pure function of the inputs: recomputing over the same
// transaction set and window always yields identical totals.
type PartyActivity struct {
	TotalSpent  decimal.Decimal
	TotalProfit decimal.Decimal

	RepairCount      int
	PhoneSaleCount   int
	ProductSaleCount int

	// LastTransactionAt is the newest matched transaction timestamp; zero
	// when nothing matched.
	LastTransactionAt time.Time

	Repairs      []*entity.Repair
	PhoneSales   []*entity.PhoneSale
	ProductSales []*entity.ProductSale
}

// NewPartyActivity returns an empty activity with zeroed decimal totals.
func NewPartyActivity() *PartyActivity {
	return &PartyActivity{
		TotalSpent:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}
}

// Record adds one matched transaction's amount and profit to the totals and
// advances LastTransactionAt when the timestamp is newer.
func (a *PartyActivity) Record(amount, profit decimal.Decimal, at time.Time) {
	a.TotalSpent = a.TotalSpent.Add(amount)
	a.TotalProfit = a.TotalProfit.Add(profit)
	if at.After(a.LastTransactionAt) {
		a.LastTransactionAt = at
	}
}
