package delivery

import (
	"errors"
	"fmt"

	"mtaani/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery. It implements a
// closed state machine; every legal move is listed in the transition table
// below and anything else fails with an InvalidTransitionError.
//
// State transitions:
//
//	pending ──accept──> accepted ──pickup──> picked_up ──transit──> in_transit ──deliver──> delivered
//	   │                    │                    │                       │
//	   └────────────────────┴────────cancel──────┴───────────────────────┘──> cancelled
//
// delivered and cancelled are terminal. failed exists only as a persisted
// value on historical rows; no engine transition produces it.
type Status int

const (
	// StatusUnknown catches uninitialized Status values. Always invalid.
	StatusUnknown Status = iota

	// StatusPending is the initial state: created, no rider assigned.
	StatusPending

	// StatusAccepted means a rider has claimed the delivery.
	StatusAccepted

	// StatusPickedUp means the rider has collected the package.
	StatusPickedUp

	// StatusInTransit means the package is on its way to the dropoff.
	StatusInTransit

	// StatusDelivered is the successful terminal state.
	StatusDelivered

	// StatusCancelled is the terminal state for abandoned deliveries.
	StatusCancelled

	// StatusFailed is retained for stored historical data only.
	StatusFailed
)

// ErrInvalidTransition is the sentinel for illegal state-machine moves.
// Callers receiving it must re-fetch the current state before retrying.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError names the current state and the attempted target.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// transitionTable is the exhaustive list of legal moves. A status absent
// from a row's targets is unreachable from that row.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusAccepted, StatusCancelled},
		StatusAccepted:  {StatusPickedUp, StatusCancelled},
		StatusPickedUp:  {StatusInTransit, StatusCancelled},
		StatusInTransit: {StatusDelivered, StatusCancelled},
		StatusDelivered: {},
		StatusCancelled: {},
		StatusFailed:    {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
		StatusFailed:    "failed",
	}
}

// StatusFromString parses a persisted status label into the closed enum.
// Unknown labels are rejected at the boundary rather than trusted.
func StatusFromString(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if label == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a known delivery status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted label of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	targets, ok := transitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the move to target is in the table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitionTable()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the move to target, failing with an
// InvalidTransitionError naming both states when the move is not listed.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return StatusUnknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}
