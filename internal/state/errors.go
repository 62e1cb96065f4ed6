// Package state owns the single editable PortfolioState of an editing session.
// All mutations go through Store.Dispatch; readers get deep copies.
package state

import "fmt"

// NotFoundError is returned when an update names an id that is not in the list
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// DuplicateIDError is returned when an add reuses an existing id
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.ID)
}

// ValidationError wraps a rejected state change
type ValidationError struct {
	Action string
	Cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Action, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
