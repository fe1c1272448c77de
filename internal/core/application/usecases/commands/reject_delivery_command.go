package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrRejectDeliveryCommandIsNotConstructed = errors.New(
	"RejectDeliveryCommand must be created via NewRejectDeliveryCommand constructor",
)

// RejectDeliveryCommand records that a rider declined a pending delivery.
// The reason is optional free text shown in the tracking log.
type RejectDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	riderID    kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectDeliveryCommand validates the identifiers of the rejection.
func NewRejectDeliveryCommand(deliveryID, riderID kernel.UUID, reason string) (RejectDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), riderID.Validate()); err != nil {
		return RejectDeliveryCommand{}, err
	}

	return RejectDeliveryCommand{
		deliveryID: deliveryID,
		riderID:    riderID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRejectDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the rejected delivery.
func (c RejectDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// RiderID returns the declining rider.
func (c RejectDeliveryCommand) RiderID() kernel.UUID { return c.riderID }

// Reason returns the optional rejection note.
func (c RejectDeliveryCommand) Reason() string { return c.reason }
