package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a customer's request to move a package.
// Coordinates, package details, and the payment method are validated at
// construction; distance and fare are derived later by the aggregate.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	customerID    kernel.UUID
	pickup        kernel.GeoPoint
	dropoff       kernel.GeoPoint
	pkg           delivery.PackageInfo
	paymentMethod delivery.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand builds and validates a delivery creation request
// from transport-level primitives. Coordinates outside the valid ranges,
// missing package fields, and unknown enum labels are all rejected here so
// handlers only ever see well-formed commands.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	pickupLat, pickupLng float64,
	dropoffLat, dropoffLng float64,
	packageType, packageDescription string,
	weightKg *float64,
	packageSize string,
	paymentMethod string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(deliveryID.Validate(), customerID.Validate()); err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.deliveryID = deliveryID
	cmd.customerID = customerID

	pickup, err := kernel.NewGeoPoint(pickupLat, pickupLng)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.pickup = pickup

	dropoff, err := kernel.NewGeoPoint(dropoffLat, dropoffLng)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.dropoff = dropoff

	size, err := delivery.PackageSizeFromString(packageSize)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}

	pkg, err := delivery.NewPackageInfo(packageType, packageDescription, weightKg, size, nil)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.pkg = pkg

	method, err := delivery.PaymentMethodFromString(paymentMethod)
	if err != nil {
		return CreateDeliveryCommand{}, err
	}
	cmd.paymentMethod = method

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the caller-supplied identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CustomerID returns the requesting customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID { return c.customerID }

// Pickup returns the validated pickup coordinate.
func (c CreateDeliveryCommand) Pickup() kernel.GeoPoint { return c.pickup }

// Dropoff returns the validated dropoff coordinate.
func (c CreateDeliveryCommand) Dropoff() kernel.GeoPoint { return c.dropoff }

// Package returns the validated package details.
func (c CreateDeliveryCommand) Package() delivery.PackageInfo { return c.pkg }

// PaymentMethod returns the parsed payment method.
func (c CreateDeliveryCommand) PaymentMethod() delivery.PaymentMethod { return c.paymentMethod }
