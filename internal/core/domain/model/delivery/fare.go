package delivery

import (
	"fmt"
	"math"

	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

// Fare pricing parameters. Amounts are in the marketplace currency.
const (
	// BaseFare is charged on every delivery regardless of distance.
	BaseFare = 100.0
	// PerKmRate is the distance component per kilometer.
	PerKmRate = 20.0
	// PlatformFeePercent is the platform's cut of the total fare.
	PlatformFeePercent = 0.15
)

// ErrFareIsNotConstructed is returned when validating a zero-value Fare.
var ErrFareIsNotConstructed = errs.NewValueIsRequiredError(
	"fare must be created via CalculateFare")

// Fare is the immutable fare breakdown computed once at delivery creation.
// All amounts are rounded half-up to 2 decimal places.
type Fare struct {
	baseFare      float64
	distanceFare  float64
	totalFare     float64
	platformFee   float64
	riderEarnings float64

	guard guard.ConstructorGuard
}

// CalculateFare computes the fare breakdown for a trip of distanceKm
// kilometers. Pure and deterministic:
//
//	distanceFare  = distanceKm * PerKmRate
//	totalFare     = BaseFare + distanceFare
//	platformFee   = totalFare * PlatformFeePercent
//	riderEarnings = totalFare - platformFee
//
// A negative distance is rejected.
func CalculateFare(distanceKm float64) (Fare, error) {
	if distanceKm < 0 {
		return Fare{}, errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%v km is negative", distanceKm))
	}

	distanceFare := roundMoney(distanceKm * PerKmRate)
	totalFare := roundMoney(BaseFare + distanceFare)
	platformFee := roundMoney(totalFare * PlatformFeePercent)
	riderEarnings := roundMoney(totalFare - platformFee)

	return Fare{
		baseFare:      BaseFare,
		distanceFare:  distanceFare,
		totalFare:     totalFare,
		platformFee:   platformFee,
		riderEarnings: riderEarnings,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreFare rebuilds a fare breakdown from persisted amounts without
// recomputation. Fare fields are immutable once a delivery leaves pending,
// so stored values are authoritative.
func RestoreFare(baseFare, distanceFare, totalFare, platformFee, riderEarnings float64) Fare {
	return Fare{
		baseFare:      baseFare,
		distanceFare:  distanceFare,
		totalFare:     totalFare,
		platformFee:   platformFee,
		riderEarnings: riderEarnings,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate checks that the Fare was built through CalculateFare or
// RestoreFare.
func (f Fare) Validate() error {
	return f.guard.Validate(ErrFareIsNotConstructed)
}

// BaseFare returns the flat component.
func (f Fare) BaseFare() float64 { return f.baseFare }

// DistanceFare returns the per-kilometer component.
func (f Fare) DistanceFare() float64 { return f.distanceFare }

// TotalFare returns the amount charged to the customer.
func (f Fare) TotalFare() float64 { return f.totalFare }

// PlatformFee returns the platform's cut.
func (f Fare) PlatformFee() float64 { return f.platformFee }

// RiderEarnings returns what the assigned rider is credited on delivery.
func (f Fare) RiderEarnings() float64 { return f.riderEarnings }

// roundMoney rounds a currency amount half-up to 2 decimal places.
func roundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
