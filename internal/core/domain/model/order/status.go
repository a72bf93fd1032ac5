package order

import (
	"fmt"
	"strings"

	"foodly/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine: every legal change moves exactly
// one step along the fixed sequence.
//
// State transitions:
//
//	Pending ──place──> Placed ──> Cooking ──> Done
//
// Pending orders are carts. Nothing ever returns to Pending, and Done is final.
// The numeric values are the codes persisted in the status column.
type Status int

const (
	// Pending is the initial status of every order. A pending order is a cart
	// that its owning client may still modify.
	Pending Status = iota

	// Placed indicates the customer submitted the cart. Placement happens
	// exactly once and locks the cart against further item changes.
	Placed

	// Cooking indicates the kitchen started preparing the order.
	Cooking

	// Done indicates the order is ready. This is a final state.
	Done
)

// getStatusStrings returns the display names of all valid statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending: "Pending",
		Placed:  "Placed",
		Cooking: "Cooking",
		Done:    "Done",
	}
}

// Validate checks that s is one of the four persisted codes.
// Used on values arriving from the database or from clients.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// values outside the enumeration.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a case-insensitive status name into a Status.
//
// Example:
//
//	s, err := order.ParseStatus("cooking") // order.Cooking, nil
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if strings.EqualFold(str, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Next returns the status that follows s.
// Done has no successor.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Done {
		return 0, errs.NewInvalidTransitionErrorWithCause(
			s.String(), "Unknown", fmt.Errorf("%s is a final status", s),
		)
	}
	return s + 1, nil
}

// ValidateTransition is the single place that decides whether a status change
// is legal. A transition is legal only when to is exactly one step after s.
//
// Returns:
//   - nil if s -> to is a forward step of one
//   - InvalidTransitionError otherwise, including repeated and backward moves
//   - ValueIsInvalidError if either side is not a valid status
func (s Status) ValidateTransition(to Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	next, err := s.Next()
	if err != nil || next != to {
		return errs.NewInvalidTransitionError(s.String(), to.String())
	}
	return nil
}

// IsPlaced reports whether the order has left the cart stage.
func (s Status) IsPlaced() bool {
	return s == Placed || s == Cooking || s == Done
}

// IsPreparing reports whether the kitchen still has work to do on the order.
func (s Status) IsPreparing() bool {
	return s == Placed || s == Cooking
}
