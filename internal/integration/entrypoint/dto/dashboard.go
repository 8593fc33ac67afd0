// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/repairdesk/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	RepairCount      int    `json:"repair_count"`
	PhoneSaleCount   int    `json:"phone_sale_count"`
	ProductSaleCount int    `json:"product_sale_count"`
	Revenue          string `json:"revenue"`
	GrossProfit      string `json:"gross_profit"`
	ExpenseTotal     string `json:"expense_total"`
	NetProfit        string `json:"net_profit"`
	CustomerDebt     string `json:"customer_debt"`
	SupplierDebt     string `json:"supplier_debt"`
}

// QueueRemindersResponse reports the result of a reminder queueing run.
type QueueRemindersResponse struct {
	Queued  int `json:"queued"`
	Skipped int `json:"skipped"`
}

// ToSummaryResponse converts the summary use case output to a DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		RepairCount:      output.RepairCount,
		PhoneSaleCount:   output.PhoneSaleCount,
		ProductSaleCount: output.ProductSaleCount,
		Revenue:          output.Revenue.String(),
		GrossProfit:      output.GrossProfit.String(),
		ExpenseTotal:     output.ExpenseTotal.String(),
		NetProfit:        output.NetProfit.String(),
		CustomerDebt:     output.CustomerDebt.String(),
		SupplierDebt:     output.SupplierDebt.String(),
	}
}
