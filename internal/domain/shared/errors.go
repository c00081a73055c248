package shared

import (
	"fmt"
	"strings"
)

// DomainError represents a domain-level error with a stable code and a
// human-readable message. Messages are in the ubiquitous language of
// the business (Portuguese) since they are shown to end users as-is.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a domain error for a structural validation
// failure raised from a value-object or aggregate constructor.
func NewValidationError(message string) *DomainError {
	return &DomainError{Code: "VALIDATION", Message: message}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "registro não encontrado")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "registro já existe")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "dados inválidos")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "registro foi alterado por outro processo")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "operação não permitida no estado atual")
)

// InvariantViolationError signals that an aggregate's own invariants
// failed after a mutation that should have been prevented upstream.
// This is a programming defect, not user input: by the time it is
// raised the in-memory object graph cannot be trusted, so it is
// escalated as a panic rather than a recoverable Result.
type InvariantViolationError struct {
	Aggregate  string
	Violations []string
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariantes violadas em %s: %s", e.Aggregate, strings.Join(e.Violations, "; "))
}

// NewInvariantViolationError creates a new invariant violation error
func NewInvariantViolationError(aggregate string, violations []string) *InvariantViolationError {
	return &InvariantViolationError{Aggregate: aggregate, Violations: violations}
}
