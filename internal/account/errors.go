package account

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. The typed errors below unwrap to these so callers
// can match with errors.Is no matter which layer produced the failure.
var (
	ErrNotFound       = errors.New("customer account not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidInput   = errors.New("invalid customer account")
)

// NotFoundError reports that no account exists for the given identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer account with ID %s not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateEmailError reports that the email already belongs to another
// account.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("customer account with email %s already exists", e.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return ErrDuplicateEmail }

// InvalidInputError reports a payload that failed field validation.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid customer account: " + e.Reason
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
