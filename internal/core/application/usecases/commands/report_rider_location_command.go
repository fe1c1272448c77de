package commands

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrReportRiderLocationCommandIsNotConstructed = errors.New(
	"ReportRiderLocationCommand must be created via NewReportRiderLocationCommand constructor",
)

// ReportRiderLocationCommand carries a rider's position fix. Riders send
// these continuously while online.
type ReportRiderLocationCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportRiderLocationCommand validates the rider id and coordinates.
func NewReportRiderLocationCommand(
	riderID kernel.UUID,
	latitude, longitude float64,
) (ReportRiderLocationCommand, error) {
	if err := riderID.Validate(); err != nil {
		return ReportRiderLocationCommand{}, err
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ReportRiderLocationCommand{}, err
	}

	return ReportRiderLocationCommand{
		riderID:  riderID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportRiderLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportRiderLocationCommandIsNotConstructed)
}

// RiderID returns the reporting rider.
func (c ReportRiderLocationCommand) RiderID() kernel.UUID { return c.riderID }

// Location returns the validated position fix.
func (c ReportRiderLocationCommand) Location() kernel.GeoPoint { return c.location }
