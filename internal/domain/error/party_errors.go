// Package error defines domain-specific errors for the repair-shop ledger.
package error

import "errors"

// Party directory domain errors.
var (
	// ErrPartyNotFound is returned when a party is not found in the directory.
	ErrPartyNotFound = errors.New("party not found")

	// ErrEmptyPartyName is returned when a party is created with an empty or
	// whitespace-only name.
	ErrEmptyPartyName = errors.New("party name cannot be empty")

	// ErrInvalidPartyKind is returned when the party kind is not customer or supplier.
	ErrInvalidPartyKind = errors.New("invalid party kind")
)

// PartyErrorCode defines error codes for party directory errors.
// Format: PTY-XXYYYY where XX is category and YYYY is specific error.
type PartyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyPartyName    PartyErrorCode = "PTY-010001"
	ErrCodeInvalidPartyKind  PartyErrorCode = "PTY-010002"
	ErrCodeMissingPartyField PartyErrorCode = "PTY-010003"

	// Lookup errors (02XXXX)
	ErrCodePartyNotFound PartyErrorCode = "PTY-020001"
)

// PartyError represents a party directory error with code and message.
type PartyError struct {
	Code    PartyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PartyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PartyError) Unwrap() error {
	return e.Err
}

// NewPartyError creates a new PartyError with the given code and message.
func NewPartyError(code PartyErrorCode, message string, err error) *PartyError {
	return &PartyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
