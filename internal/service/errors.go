package service

import (
	"errors"
	"strings"
)

var (
	// ErrEmailInUse is returned by Register when the address already has an account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotLoggedIn is returned when an operation needs a signed-in account.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrActionItemNotFound is returned by Toggle for an id outside the checklist.
	ErrActionItemNotFound = errors.New("action item not found")
)

// UserMessage returns the form text shown for err.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmailInUse):
		return "Email already in use"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrNotLoggedIn):
		return "Please log in first"
	default:
		return err.Error()
	}
}

// ValidationError carries one message per invalid form field.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
}

func (e *ValidationError) empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, f := range e.order {
		msgs = append(msgs, e.Fields[f])
	}
	return strings.Join(msgs, "; ")
}
