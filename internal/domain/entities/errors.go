package entities

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrValidation marks local input that is missing or invalid. It never reaches the network.
	ErrValidation = errors.New("invalid quotation input")
	// ErrRatesUnavailable marks rates that are not loaded or not usable for pricing.
	ErrRatesUnavailable = errors.New("rates unavailable")
	// ErrQuotationNotFound marks an operation that targeted an id the store does not hold.
	ErrQuotationNotFound = errors.New("quotation not found")
	// ErrLocal marks an operation that is invalid in the current state.
	ErrLocal = errors.New("operation not allowed")
)

// NetworkError is a transport or server failure talking to the quotation service.
// Status is zero when no response was received.
type NetworkError struct {
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error: " + e.Message
	}
	if e.Message != "" {
		return fmt.Sprintf("network error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("network error: status %d", e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsClientError reports a 4xx response, which carries a message meant for the user.
func (e *NetworkError) IsClientError() bool {
	return e.Status >= http.StatusBadRequest && e.Status < http.StatusInternalServerError
}

// ValidationError lists the input fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
