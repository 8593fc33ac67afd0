// Package error defines domain-specific errors for the repair-shop ledger.
package error

import "errors"

// Ledger posting domain errors.
var (
	// ErrNonPositiveAdjustmentAmount is returned when a ledger adjustment
	// amount is zero or negative.
	ErrNonPositiveAdjustmentAmount = errors.New("adjustment amount must be positive")

	// ErrAdjustmentKindNotAllowed is returned when the adjustment kind does
	// not apply to the party's domain (customer vs supplier).
	ErrAdjustmentKindNotAllowed = errors.New("adjustment kind not allowed for party")

	// ErrUnknownAdjustmentKind is returned when the adjustment kind is not recognized.
	ErrUnknownAdjustmentKind = errors.New("unknown adjustment kind")
)

// LedgerErrorCode defines error codes for ledger posting errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveAmount     LedgerErrorCode = "LGR-010001"
	ErrCodeKindNotAllowed        LedgerErrorCode = "LGR-010002"
	ErrCodeUnknownAdjustmentKind LedgerErrorCode = "LGR-010003"

	// Posting errors (02XXXX)
	ErrCodeLedgerPartyNotFound LedgerErrorCode = "LGR-020001"
)

// LedgerError represents a ledger posting error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
