// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepairStatus represents the lifecycle status of a repair ticket.
type RepairStatus string

const (
	RepairStatusReceived   RepairStatus = "received"
	RepairStatusInProgress RepairStatus = "in_progress"
	RepairStatusCompleted  RepairStatus = "completed"
	RepairStatusDelivered  RepairStatus = "delivered"
	RepairStatusCancelled  RepairStatus = "cancelled"
)

// Repair represents a repair ticket. The customer name and phone are a
// snapshot captured at creation time; editing the party directory never
// relabels historical tickets.
type Repair struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	Brand         string
	Model         string
	Fault         string
	Parts         []string
	RepairCost    decimal.Decimal
	PartsCost     decimal.Decimal
	Status        RepairStatus
	SupplierID    *uuid.UUID // Parts supplier, when bought on account
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRepair creates a new Repair ticket in the received state.
func NewRepair(
	customerName, customerPhone, brand, model, fault string,
	parts []string,
	repairCost, partsCost decimal.Decimal,
	supplierID *uuid.UUID,
	notes string,
) *Repair {
	now := time.Now().UTC()

	return &Repair{
		ID:            uuid.New(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Brand:         brand,
		Model:         model,
		Fault:         fault,
		Parts:         parts,
		RepairCost:    repairCost,
		PartsCost:     partsCost,
		Status:        RepairStatusReceived,
		SupplierID:    supplierID,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Profit returns the repair cost minus the parts cost.
func (r *Repair) Profit() decimal.Decimal {
	return r.RepairCost.Sub(r.PartsCost)
}

// IsCancelled reports whether the repair was cancelled. Cancelled repairs
// never count toward revenue or attribution.
func (r *Repair) IsCancelled() bool {
	return r.Status == RepairStatusCancelled
}
