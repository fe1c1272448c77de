package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand registers a new courier profile.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID     kernel.UUID
	name        string
	vehicleType rider.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand validates the profile basics and parses the vehicle
// type label.
func NewCreateRiderCommand(riderID kernel.UUID, name, vehicleType string) (CreateRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return CreateRiderCommand{}, err
	}
	if name == "" {
		return CreateRiderCommand{}, errs.NewValueIsRequiredError("riderName")
	}

	vt, err := rider.VehicleTypeFromString(vehicleType)
	if err != nil {
		return CreateRiderCommand{}, err
	}

	return CreateRiderCommand{
		riderID:     riderID,
		name:        name,
		vehicleType: vt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the new rider's identifier.
func (c CreateRiderCommand) RiderID() kernel.UUID { return c.riderID }

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string { return c.name }

// VehicleType returns the parsed vehicle class.
func (c CreateRiderCommand) VehicleType() rider.VehicleType { return c.vehicleType }
