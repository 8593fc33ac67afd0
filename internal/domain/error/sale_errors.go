// Package error defines domain-specific errors for the repair-shop ledger.
package error

import "errors"

// Sale and product catalog domain errors.
var (
	// ErrPhoneSaleNotFound is returned when a phone sale record is not found.
	ErrPhoneSaleNotFound = errors.New("phone sale not found")

	// ErrProductSaleNotFound is returned when a product sale record is not found.
	ErrProductSaleNotFound = errors.New("product sale not found")

	// ErrProductNotFound is returned when a catalog product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrEmptyProductName is returned when a product is created with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrNonPositiveQuantity is returned when a sale quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrNegativePrice is returned when a price field is negative.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyProductName    SaleErrorCode = "SAL-010001"
	ErrCodeNonPositiveQuantity SaleErrorCode = "SAL-010002"
	ErrCodeNegativePrice       SaleErrorCode = "SAL-010003"

	// Lookup errors (02XXXX)
	ErrCodePhoneSaleNotFound   SaleErrorCode = "SAL-020001"
	ErrCodeProductSaleNotFound SaleErrorCode = "SAL-020002"
	ErrCodeProductNotFound     SaleErrorCode = "SAL-020003"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
