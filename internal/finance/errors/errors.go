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

// NotFoundError reports that a requested or referenced entity does not exist.
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

// ConflictError reports a uniqueness violation on a natural key.
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

var ErrUserNotFound = NewNotFoundError("User not found")
var ErrCategoryNotFound = NewNotFoundError("Category not found")
var ErrTransactionNotFound = NewNotFoundError("Transaction not found or does not belong to the specified user")
var ErrEmailAlreadyRegistered = NewConflictError("Email already registered")
var ErrCategoryAlreadyExists = NewConflictError("Category name already exists")
var ErrInvalidEmail = NewValidationError("Email address is not valid")
