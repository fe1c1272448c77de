package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is a rider's claim on a pending delivery.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand validates the identifiers of the claim.
func NewAcceptDeliveryCommand(deliveryID, riderID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), riderID.Validate()); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{
		deliveryID: deliveryID,
		riderID:    riderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the claimed delivery.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// RiderID returns the claiming rider.
func (c AcceptDeliveryCommand) RiderID() kernel.UUID { return c.riderID }
