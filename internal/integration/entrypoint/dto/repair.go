// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/repairdesk/backend/internal/domain/entity"
)

// CreateRepairRequest represents the request body for repair creation.
type CreateRepairRequest struct {
	CustomerName  string   `json:"customer_name" binding:"required,min=1,max=255"`
	CustomerPhone string   `json:"customer_phone"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Fault         string   `json:"fault"`
	Parts         []string `json:"parts"`
	RepairCost    float64  `json:"repair_cost" binding:"gte=0"`
	PartsCost     float64  `json:"parts_cost" binding:"gte=0"`
	SupplierID    *string  `json:"supplier_id,omitempty"`
	Notes         string   `json:"notes"`
}

// UpdateRepairRequest represents the request body for repair update.
// Omitted fields are left untouched.
type UpdateRepairRequest struct {
	CustomerName  *string   `json:"customer_name,omitempty"`
	CustomerPhone *string   `json:"customer_phone,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	Model         *string   `json:"model,omitempty"`
	Fault         *string   `json:"fault,omitempty"`
	Parts         *[]string `json:"parts,omitempty"`
	RepairCost    *float64  `json:"repair_cost,omitempty"`
	PartsCost     *float64  `json:"parts_cost,omitempty"`
	Status        *string   `json:"status,omitempty"`
	SupplierID    *string   `json:"supplier_id,omitempty"`
	ClearSupplier bool      `json:"clear_supplier,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// RepairResponse represents a repair ticket in API responses.
type RepairResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Fault         string    `json:"fault"`
	Parts         []string  `json:"parts"`
	RepairCost    string    `json:"repair_cost"`
	PartsCost     string    `json:"parts_cost"`
	Profit        string    `json:"profit"`
	Status        string    `json:"status"`
	SupplierID    *string   `json:"supplier_id,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RepairListResponse represents a list of repair tickets.
type RepairListResponse struct {
	Repairs []RepairResponse `json:"repairs"`
}

// ToRepairResponse converts a domain Repair entity to a RepairResponse DTO.
func ToRepairResponse(repair *entity.Repair) RepairResponse {
	response := RepairResponse{
		ID:            repair.ID.String(),
		CustomerName:  repair.CustomerName,
		CustomerPhone: repair.CustomerPhone,
		Brand:         repair.Brand,
		Model:         repair.Model,
		Fault:         repair.Fault,
		Parts:         repair.Parts,
		RepairCost:    repair.RepairCost.String(),
		PartsCost:     repair.PartsCost.String(),
		Profit:        repair.Profit().String(),
		Status:        string(repair.Status),
		Notes:         repair.Notes,
		CreatedAt:     repair.CreatedAt,
		UpdatedAt:     repair.UpdatedAt,
	}
	if repair.SupplierID != nil {
		id := repair.SupplierID.String()
		response.SupplierID = &id
	}
	if response.Parts == nil {
		response.Parts = []string{}
	}
	return response
}

// ToRepairListResponse converts a slice of repairs to a RepairListResponse DTO.
func ToRepairListResponse(repairs []*entity.Repair) RepairListResponse {
	response := RepairListResponse{
		Repairs: make([]RepairResponse, len(repairs)),
	}
	for i, r := range repairs {
		response.Repairs[i] = ToRepairResponse(r)
	}
	return response
}
