// Package apperrors defines the domain failure taxonomy shared by services
// and translated to HTTP status codes at the transport boundary. Services
// return these instead of raw errors so handlers never string-match.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports that an entity could not be resolved by id or key.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	return fmt.Sprintf("%s not found with id: %s", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation on a field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// ValidationError reports a domain-level validation failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DependencyError wraps a failure of an external collaborator (store, hasher).
// These are surfaced as-is and never reported as success.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Conflict(field string) error {
	return &ConflictError{Field: field}
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func Dependency(op string, err error) error {
	return &DependencyError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// HTTPStatus maps a service error to the HTTP status the transport layer
// should answer with. Unrecognized errors are treated as internal faults.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
