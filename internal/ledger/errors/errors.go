package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	ok := errors.As(err, &conflictError)
	return ok
}

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

// UnavailableError means the storage backend did not answer in time or the
// connection is gone. Callers may retry with backoff; it is never a caller bug.
type UnavailableError struct {
	Msg string
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func NewUnavailableError(msg string, err error) error {
	return &UnavailableError{Msg: msg, Err: err}
}

func IsUnavailableError(err error) bool {
	var unavailableError *UnavailableError
	ok := errors.As(err, &unavailableError)
	return ok
}

var ErrInvalidAmount = NewValidationError("Amount must be a valid amount with at most two decimal places")
var ErrCategoryRequired = NewValidationError("Category is required for expense entries")
var ErrUnknownCategory = NewValidationError("Category is not visible for this user")
var ErrEntryNotFound = NewNotFoundError("Entry not found")
var ErrCategoryAlreadyExists = NewConflictError("Category already exists")
