package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand submits a post-delivery rating. The actor decides the
// direction: the customer rates the rider, the assigned rider rates the
// customer. Each direction is write-once.
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actorID    kernel.UUID
	value      int
	review     string

	guard guard.ConstructorGuard
}

// NewRateDeliveryCommand validates the identifiers and the 1..5 score.
func NewRateDeliveryCommand(
	deliveryID, actorID kernel.UUID,
	value int,
	review string,
) (RateDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), actorID.Validate()); err != nil {
		return RateDeliveryCommand{}, err
	}
	if value < 1 || value > 5 {
		return RateDeliveryCommand{}, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	return RateDeliveryCommand{
		deliveryID: deliveryID,
		actorID:    actorID,
		value:      value,
		review:     review,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the rated delivery.
func (c RateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ActorID returns whoever submitted the rating.
func (c RateDeliveryCommand) ActorID() kernel.UUID { return c.actorID }

// Value returns the 1..5 score.
func (c RateDeliveryCommand) Value() int { return c.value }

// Review returns the optional free-text review.
func (c RateDeliveryCommand) Review() string { return c.review }
