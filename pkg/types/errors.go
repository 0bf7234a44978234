package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDonationNotFound  = errors.New("donation not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation failed")
)

// ValidationError names every field that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has reports whether field is among the failing fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

const (
	EntityDonation = "donation"
	EntityAccount  = "account"
)

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Entity {
	case EntityAccount:
		return ErrAccountNotFound
	default:
		return ErrDonationNotFound
	}
}

type TransitionError struct {
	From DonationStatus
	To   DonationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move donation from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
