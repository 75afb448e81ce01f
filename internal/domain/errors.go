package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeInvalidCurrency      = "INVALID_CURRENCY"
	ErrCodeInvalidLineItem      = "INVALID_LINE_ITEM"
	ErrCodeSettingsNotFound     = "SETTINGS_NOT_FOUND"
	ErrCodeMissingCredentials   = "MISSING_CREDENTIALS"
)

var (
	ErrMissingAmount    = NewMissingRequiredFieldError("amount")
	ErrMissingReceipt   = NewMissingRequiredFieldError("receipt")
	ErrSettingsNotFound = &DomainError{
		Code:    ErrCodeSettingsNotFound,
		Message: "no settings found for the requested keys",
	}
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(amount string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %s: must be greater than zero", amount),
	}
}

func NewAmountOutOfRangeError(amount, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %s: %s", amount, reason),
	}
}

func NewInvalidCurrencyError(currency string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCurrency,
		Message: fmt.Sprintf("invalid currency %q: expected a 3-letter code", currency),
	}
}

func NewInvalidLineItemError(index int, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidLineItem,
		Message: fmt.Sprintf("item %d: %s", index, reason),
	}
}

// MissingCredentialsError lists the required credential keys absent from
// the settings store.
type MissingCredentialsError struct {
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing merchant credentials: %s", strings.Join(e.Missing, ", "))
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
