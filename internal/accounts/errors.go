package accounts

import (
	"fmt"

	"github.com/pkg/errors"
)

// Reasons createUser can refuse. The set is closed; each maps to one message.
var (
	ErrNoUserName          = errors.New("no user name")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUnknown             = errors.New("unknown error")
)

// CreateUserError carries the reason a user was not created and, when there
// is one, the underlying cause. Both are reachable with errors.Is / errors.As.
type CreateUserError struct {
	Reason error
	Err    error
}

func (e *CreateUserError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("create user: %v", e.Reason)
	}
	return fmt.Sprintf("create user: %v: %v", e.Reason, e.Err)
}

func (e *CreateUserError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func refuse(reason error) error {
	return &CreateUserError{Reason: reason}
}

// unknown wraps an unexpected failure, recording where it surfaced.
func unknown(err error) error {
	return &CreateUserError{Reason: ErrUnknown, Err: errors.WithStack(err)}
}

// Message returns the user-facing text for a creation error. Anything that
// is not one of the known reasons reads as the unknown-error message.
func Message(err error) string {
	if err == nil {
		return ""
	}

	reason := err
	var ce *CreateUserError
	if errors.As(err, &ce) {
		reason = ce.Reason
	}

	switch {
	case errors.Is(reason, ErrNoUserName):
		return "Please enter a user name."
	case errors.Is(reason, ErrInvalidPassword):
		return "Password must be 5 to 12 characters with at least one letter and one digit, and must not repeat a sequence."
	case errors.Is(reason, ErrPasswordsDoNotMatch):
		return "Passwords do not match."
	case errors.Is(reason, ErrUserAlreadyExists):
		return "A user with this name already exists."
	default:
		return "Something went wrong while creating the user. Please try again."
	}
}
