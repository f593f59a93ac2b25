package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrLaundryNotFound = fmt.Errorf("laundry %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)

	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidStatus      = errors.New("invalid status")
)

// ValidationError is a user-facing bad-request error.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ForbiddenError carries a specific reason for an authorization refusal.
type ForbiddenError string

func (e ForbiddenError) Error() string { return string(e) }
