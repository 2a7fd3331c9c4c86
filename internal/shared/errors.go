package shared

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
)

// ValidationError is returned by a service whenever an input violates a
// business rule (required field, uniqueness, coherence or delete guard).
// The message is meant to be surfaced to the end user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// NotFoundError signals an update or delete against an id that does not
// exist. Lookups (GetByID) never return it - they return a nil record.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFoundError(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// ToHTTPError maps a service error onto the HTTP surface. Validation errors
// and not-found errors carry their message to the caller verbatim; anything
// else is an internal error hidden behind the fallback message.
func ToHTTPError(err error, fallback string) error {
	var v *ValidationError
	if errors.As(err, &v) {
		return echo.NewHTTPError(400, v.Message)
	}
	var n *NotFoundError
	if errors.As(err, &n) {
		return echo.NewHTTPError(404, n.Error())
	}
	return echo.NewHTTPError(500, fallback).WithInternal(err)
}
