package delivery

import (
	"fmt"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
)

// MaxPreferredRiders bounds the customer's preferred-rider list.
const MaxPreferredRiders = 5

// AssignmentMode is the policy governing which riders may accept a pending
// delivery.
type AssignmentMode int

const (
	// AssignmentModeUnknown catches uninitialized values. Always invalid.
	AssignmentModeUnknown AssignmentMode = iota
	// AssignmentAuto opens the delivery to any eligible rider.
	AssignmentAuto
	// AssignmentCustomerSelected restricts acceptance to the customer's
	// preferred riders while the selection window is open.
	AssignmentCustomerSelected
	// AssignmentSpecificRider targets a single rider chosen out of band.
	AssignmentSpecificRider
)

func getAssignmentModeStrings() map[AssignmentMode]string {
	return map[AssignmentMode]string{
		AssignmentAuto:             "auto",
		AssignmentCustomerSelected: "customer_selected",
		AssignmentSpecificRider:    "specific_rider",
	}
}

// AssignmentModeFromString parses a persisted assignment-mode label.
func AssignmentModeFromString(s string) (AssignmentMode, error) {
	for mode, label := range getAssignmentModeStrings() {
		if label == s {
			return mode, nil
		}
	}
	return AssignmentModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"assignmentMode", fmt.Errorf("%q is not a known assignment mode", s))
}

// String returns the persisted label of the mode.
func (m AssignmentMode) String() string {
	if str, ok := getAssignmentModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the mode is one of the defined values.
func (m AssignmentMode) Validate() error {
	if _, ok := getAssignmentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentMode", fmt.Errorf("%d is not a valid assignment mode", m))
	}
	return nil
}

// RiderSet is an insertion-ordered set of rider identifiers. It backs both
// the preferred-rider list and the rejection list, replacing the ad hoc
// array handling of serialized id columns with explicit membership
// operations.
type RiderSet struct {
	ids []kernel.UUID
}

// NewRiderSet builds a set from the given ids, rejecting duplicates and
// invalid ids.
func NewRiderSet(ids ...kernel.UUID) (RiderSet, error) {
	var s RiderSet
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return RiderSet{}, err
		}
		if s.Contains(id) {
			return RiderSet{}, errs.NewValueIsInvalidErrorWithCause(
				"riderIds", fmt.Errorf("duplicate rider id %s", id))
		}
		s.ids = append(s.ids, id)
	}
	return s, nil
}

// Contains reports membership.
func (s RiderSet) Contains(id kernel.UUID) bool {
	for _, existing := range s.ids {
		if existing.IsEqual(id) {
			return true
		}
	}
	return false
}

// Add inserts id, ignoring duplicates. Returns true if the set grew.
func (s *RiderSet) Add(id kernel.UUID) bool {
	if s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Len returns the number of members.
func (s RiderSet) Len() int {
	return len(s.ids)
}

// IsEmpty reports whether the set has no members.
func (s RiderSet) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns a copy of the members in insertion order.
func (s RiderSet) IDs() []kernel.UUID {
	return append([]kernel.UUID(nil), s.ids...)
}

// IsSubsetOf reports whether every member of s is also in other.
// This is the rejection-exhaustion check: the preferred set is exhausted
// once it is a subset of the rejection set.
func (s RiderSet) IsSubsetOf(other RiderSet) bool {
	for _, id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
