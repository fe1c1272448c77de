package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand toggles whether a rider is taking jobs.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	online  bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand validates the rider id.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, online bool) (SetRiderAvailabilityCommand, error) {
	if err := riderID.Validate(); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return SetRiderAvailabilityCommand{
		riderID: riderID,
		online:  online,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the rider being toggled.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID { return c.riderID }

// Online reports the requested availability.
func (c SetRiderAvailabilityCommand) Online() bool { return c.online }
