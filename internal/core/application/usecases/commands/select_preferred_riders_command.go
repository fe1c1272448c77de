package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrSelectPreferredRidersCommandIsNotConstructed = errors.New(
	"SelectPreferredRidersCommand must be created via NewSelectPreferredRidersCommand constructor",
)

// SelectPreferredRidersCommand restricts a pending delivery to the
// customer's chosen riders for the duration of the selection window.
type SelectPreferredRidersCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	customerID kernel.UUID
	riderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSelectPreferredRidersCommand validates identity of the delivery, the
// acting customer, and each chosen rider. List size and duplicate rules are
// enforced by the aggregate.
func NewSelectPreferredRidersCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	riderIDs []kernel.UUID,
) (SelectPreferredRidersCommand, error) {
	cmd := SelectPreferredRidersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), customerID.Validate()); err != nil {
		return SelectPreferredRidersCommand{}, err
	}
	if len(riderIDs) == 0 {
		return SelectPreferredRidersCommand{}, errs.NewValueIsRequiredError("riderIds")
	}
	for _, id := range riderIDs {
		if err := id.Validate(); err != nil {
			return SelectPreferredRidersCommand{}, err
		}
	}

	cmd.deliveryID = deliveryID
	cmd.customerID = customerID
	cmd.riderIDs = append([]kernel.UUID(nil), riderIDs...)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPreferredRidersCommand) Validate() error {
	return c.guard.Validate(ErrSelectPreferredRidersCommandIsNotConstructed)
}

// DeliveryID returns the delivery being restricted.
func (c SelectPreferredRidersCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CustomerID returns the acting customer.
func (c SelectPreferredRidersCommand) CustomerID() kernel.UUID { return c.customerID }

// RiderIDs returns the chosen riders in the customer's order.
func (c SelectPreferredRidersCommand) RiderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.riderIDs...)
}
