// Package error defines domain-specific errors for the repair-shop ledger.
package error

import "errors"

// Repair ticket domain errors.
var (
	// ErrRepairNotFound is returned when a repair ticket is not found.
	ErrRepairNotFound = errors.New("repair not found")

	// ErrInvalidRepairStatus is returned when the repair status is invalid.
	ErrInvalidRepairStatus = errors.New("invalid repair status")

	// ErrNegativeRepairCost is returned when a repair or parts cost is negative.
	ErrNegativeRepairCost = errors.New("repair costs cannot be negative")

	// ErrEmptyCustomerName is returned when a repair is created without a
	// customer name snapshot.
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
)

// RepairErrorCode defines error codes for repair errors.
// Format: RPR-XXYYYY where XX is category and YYYY is specific error.
type RepairErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRepairStatus RepairErrorCode = "RPR-010001"
	ErrCodeNegativeRepairCost  RepairErrorCode = "RPR-010002"
	ErrCodeEmptyCustomerName   RepairErrorCode = "RPR-010003"

	// Lookup errors (02XXXX)
	ErrCodeRepairNotFound RepairErrorCode = "RPR-020001"
)

// RepairError represents a repair ticket error with code and message.
type RepairError struct {
	Code    RepairErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RepairError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RepairError) Unwrap() error {
	return e.Err
}

// NewRepairError creates a new RepairError with the given code and message.
func NewRepairError(code RepairErrorCode, message string, err error) *RepairError {
	return &RepairError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
