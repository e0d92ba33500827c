package order

import (
	"errors"
	"fmt"

	"printshop/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a requested order status does not match
// the single legal next state for the order's current status. The request is
// rejected with no side effects.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	New ──> PendingConfirmation ──> Confirmed ──> InProduction ──> Done
//	 ^
//	 │  (any state) ──> Archived ──> New
//	 └───────────────────────────────────┘
//
// Confirmed is transient from the caller's perspective: confirming an order
// triggers batch allocation and immediately advances it to InProduction within
// the same unit of work.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order is first created.
	// Items may be freely added, edited, and removed.
	New

	// PendingConfirmation indicates the order awaits customer confirmation.
	// Items may still be added, edited, and removed.
	PendingConfirmation

	// Confirmed indicates the customer confirmed the order.
	// Item mutations are locked from this point on.
	Confirmed

	// InProduction indicates the order's items have been released to production.
	InProduction

	// Done indicates every item of the order finished production.
	Done

	// Archived soft-removes the order from active views.
	// The prior status is discarded; unarchiving resets the order to New.
	Archived
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		New:                 "New",
		PendingConfirmation: "PendingConfirmation",
		Confirmed:           "Confirmed",
		InProduction:        "InProduction",
		Done:                "Done",
		Archived:            "Archived",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:                 "New",
		PendingConfirmation: "PendingConfirmation",
		Confirmed:           "Confirmed",
		InProduction:        "InProduction",
		Done:                "Done",
		Archived:            "Archived",
	}
}

// StatusFromString parses a status name as produced by String.
// Used at the boundary to normalize filter and transition requests.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, PendingConfirmation, Confirmed, InProduction, Done, Archived.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsEditable reports whether an order in this status still permits item-level
// mutation. Items may only be added, edited, or removed while the order is
// New or PendingConfirmation.
func (s Status) IsEditable() bool {
	return s == New || s == PendingConfirmation
}

// next returns the single legal next state in the forward lifecycle,
// or Unknown if the status has no forward transition.
func (s Status) next() Status {
	//nolint:exhaustive // Done and Archived-independent handling covered below
	switch s {
	case New:
		return PendingConfirmation
	case PendingConfirmation:
		return Confirmed
	case Confirmed:
		return InProduction
	case InProduction:
		return Done
	case Archived:
		return New
	default:
		return Unknown
	}
}

// Advance validates a transition request against the transition table and
// returns the new status. The table is total: exactly one forward transition
// exists per status, Archived is reachable from every other status, and any
// other request fails with ErrIllegalTransition.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == Archived {
		if s == Archived {
			return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
		}
		return Archived, nil
	}

	if next := s.next(); next != Unknown && next == target {
		return target, nil
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
}
