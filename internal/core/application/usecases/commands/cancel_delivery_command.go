package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand abandons a delivery. Either the customer or the
// assigned rider may cancel from any non-terminal state; the reason is
// mandatory.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand validates the identifiers and requires a reason.
func NewCancelDeliveryCommand(deliveryID, actorID kernel.UUID, reason string) (CancelDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return CancelDeliveryCommand{}, err
	}
	if reason == "" {
		return CancelDeliveryCommand{}, errs.NewValueIsRequiredError("cancellationReason")
	}

	return CancelDeliveryCommand{
		deliveryID: deliveryID,
		actorID:    actorID,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being cancelled.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ActorID returns whoever requested the cancellation.
func (c CancelDeliveryCommand) ActorID() kernel.UUID { return c.actorID }

// Reason returns the mandatory cancellation reason.
func (c CancelDeliveryCommand) Reason() string { return c.reason }
