package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand advances a delivery along its happy path:
// picked_up, in_transit, or delivered. Cancellation has its own command
// because its rules (any non-terminal state, mandatory reason, either
// party) differ from forward progress.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand parses the target status label and
// validates that it is a forward-progress state.
func NewUpdateDeliveryStatusCommand(
	deliveryID, riderID kernel.UUID,
	targetStatus string,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(deliveryID.Validate(), riderID.Validate()); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	target, err := delivery.StatusFromString(targetStatus)
	if err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	switch target {
	case delivery.StatusPickedUp, delivery.StatusInTransit, delivery.StatusDelivered:
	default:
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"targetStatus", errors.New(targetStatus+" is not a forward-progress status"))
	}

	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		riderID:    riderID,
		target:     target,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being advanced.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// RiderID returns the acting rider.
func (c UpdateDeliveryStatusCommand) RiderID() kernel.UUID { return c.riderID }

// Target returns the parsed target status.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status { return c.target }
