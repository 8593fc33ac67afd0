// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/repairdesk/backend/internal/domain/entity"
	"github.com/repairdesk/backend/internal/domain/valueobject"
)

// CreatePartyRequest represents the request body for party creation.
type CreatePartyRequest struct {
	Kind    string `json:"kind" binding:"required,oneof=customer supplier"`
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// UpdatePartyRequest represents the request body for party update.
// Omitted fields are left untouched.
type UpdatePartyRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// PostAdjustmentRequest represents the request body for a ledger posting.
type PostAdjustmentRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// PartyResponse represents a party in API responses. Balance is derived from
// debt and credit, never stored.
type PartyResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes"`
	Debt           string    `json:"debt"`
	Credit         string    `json:"credit"`
	Balance        string    `json:"balance"`
	TotalPurchased string    `json:"total_purchased"`
	TotalPaid      string    `json:"total_paid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PartyListResponse represents a list of parties.
type PartyListResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	PartyID     string    `json:"party_id"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// LedgerResponse represents a party with its ledger history.
type LedgerResponse struct {
	Party   PartyResponse         `json:"party"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// ImportPartiesResponse reports the result of an import/backfill run.
// Created carries the newly registered parties in scan order.
type ImportPartiesResponse struct {
	Created []PartyResponse `json:"created"`
	Skipped int             `json:"skipped"`
}

// PartyActivityResponse represents one party's aggregated activity.
type PartyActivityResponse struct {
	Party             PartyResponse `json:"party"`
	TotalSpent        string        `json:"total_spent"`
	TotalProfit       string        `json:"total_profit"`
	RepairCount       int           `json:"repair_count"`
	PhoneSaleCount    int           `json:"phone_sale_count"`
	ProductSaleCount  int           `json:"product_sale_count"`
	LastTransactionAt *time.Time    `json:"last_transaction_at,omitempty"`
}

// ActivityListResponse represents aggregated activity for all customers.
type ActivityListResponse struct {
	Activities []PartyActivityResponse `json:"activities"`
}

// ToPartyResponse converts a domain Party entity to a PartyResponse DTO.
func ToPartyResponse(party *entity.Party) PartyResponse {
	return PartyResponse{
		ID:             party.ID.String(),
		Kind:           string(party.Kind),
		Name:           party.Name,
		Phone:          party.Phone,
		Email:          party.Email,
		Address:        party.Address,
		Notes:          party.Notes,
		Debt:           party.Debt.String(),
		Credit:         party.Credit.String(),
		Balance:        party.Balance().String(),
		TotalPurchased: party.TotalPurchased.String(),
		TotalPaid:      party.TotalPaid.String(),
		CreatedAt:      party.CreatedAt,
		UpdatedAt:      party.UpdatedAt,
	}
}

// ToPartyListResponse converts a slice of parties to a PartyListResponse DTO.
func ToPartyListResponse(parties []*entity.Party) PartyListResponse {
	response := PartyListResponse{
		Parties: make([]PartyResponse, len(parties)),
	}
	for i, p := range parties {
		response.Parties[i] = ToPartyResponse(p)
	}
	return response
}

// ToImportPartiesResponse converts an import result to an
// ImportPartiesResponse DTO. An empty run renders as an empty list,
// never null.
func ToImportPartiesResponse(created []*entity.Party, skipped int) ImportPartiesResponse {
	response := ImportPartiesResponse{
		Created: make([]PartyResponse, len(created)),
		Skipped: skipped,
	}
	for i, p := range created {
		response.Created[i] = ToPartyResponse(p)
	}
	return response
}

// ToLedgerEntryResponse converts a domain LedgerEntry to a DTO.
func ToLedgerEntryResponse(entry *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          entry.ID.String(),
		PartyID:     entry.PartyID.String(),
		Kind:        string(entry.Kind),
		Amount:      entry.Amount.String(),
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}

// ToLedgerResponse converts a party and its entries to a LedgerResponse DTO.
func ToLedgerResponse(party *entity.Party, entries []*entity.LedgerEntry) LedgerResponse {
	response := LedgerResponse{
		Party:   ToPartyResponse(party),
		Entries: make([]LedgerEntryResponse, len(entries)),
	}
	for i, e := range entries {
		response.Entries[i] = ToLedgerEntryResponse(e)
	}
	return response
}

// ToActivityListResponse converts the aggregation output to a DTO. Parties
// with no matched activity get zeroed totals.
func ToActivityListResponse(parties []*entity.Party, activities map[uuid.UUID]*valueobject.PartyActivity) ActivityListResponse {
	response := ActivityListResponse{
		Activities: make([]PartyActivityResponse, len(parties)),
	}
	for i, p := range parties {
		item := PartyActivityResponse{
			Party:       ToPartyResponse(p),
			TotalSpent:  "0",
			TotalProfit: "0",
		}
		if a, ok := activities[p.ID]; ok {
			item.TotalSpent = a.TotalSpent.String()
			item.TotalProfit = a.TotalProfit.String()
			item.RepairCount = a.RepairCount
			item.PhoneSaleCount = a.PhoneSaleCount
			item.ProductSaleCount = a.ProductSaleCount
			if !a.LastTransactionAt.IsZero() {
				at := a.LastTransactionAt
				item.LastTransactionAt = &at
			}
		}
		response.Activities[i] = item
	}
	return response
}
