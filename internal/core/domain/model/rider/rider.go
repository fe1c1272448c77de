package rider

import (
	"errors"
	"fmt"
	"math"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

// Search-radius bounds in kilometers. A rider outside these bounds would
// either see nothing or scan the whole city.
const (
	MinSearchRadiusKm     = 1.0
	MaxSearchRadiusKm     = 50.0
	DefaultSearchRadiusKm = 10.0
)

// InitialRating is the average every rider and customer starts with before
// any delivery has been rated.
const InitialRating = 5.0

var (
	// ErrRiderIsNotConstructed is returned when a Rider was not created
	// through NewRider or RestoreRider.
	ErrRiderIsNotConstructed = errors.New(
		"Rider must be created via NewRider or RestoreRider")

	// ErrLocationUnknown indicates the rider has never reported a position,
	// so proximity search cannot include them.
	ErrLocationUnknown = errors.New("rider has not reported a location")
)

// VehicleType classifies what the rider delivers with.
type VehicleType int

const (
	// VehicleUnknown catches uninitialized values. Always invalid.
	VehicleUnknown VehicleType = iota
	// VehicleBicycle suits small packages in dense areas.
	VehicleBicycle
	// VehicleMotorcycle is the default courier vehicle.
	VehicleMotorcycle
	// VehicleCar handles medium packages.
	VehicleCar
	// VehicleVan handles large packages.
	VehicleVan
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleBicycle:    "bicycle",
		VehicleMotorcycle: "motorcycle",
		VehicleCar:        "car",
		VehicleVan:        "van",
	}
}

// VehicleTypeFromString parses a persisted vehicle-type label.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for v, label := range getVehicleTypeStrings() {
		if label == s {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a known vehicle type", s))
}

// String returns the persisted label of the vehicle type.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the vehicle type is one of the defined values.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// Rider is the aggregate for a courier's operational profile: where they
// are, whether they take jobs, what their rating ledger and earnings look
// like. Identity verification and vehicle paperwork happen elsewhere; this
// aggregate only records the verified outcome.
type Rider struct {
	id          kernel.UUID
	name        string
	vehicleType VehicleType

	location       *kernel.GeoPoint
	locationSetAt  *time.Time
	online         bool
	verified       bool
	searchRadiusKm float64

	ratingAvg   float64
	ratingCount int

	earningsToday float64
	earningsTotal float64

	guard guard.ConstructorGuard
}

// NewRider creates a rider profile with no reported location, offline and
// unverified, a fresh 5.00 rating, and the default search radius.
func NewRider(id kernel.UUID, name string, vehicleType VehicleType) (*Rider, error) {
	if err := errors.Join(id.Validate(), vehicleType.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("riderName")
	}

	return &Rider{
		id:             id,
		name:           name,
		vehicleType:    vehicleType,
		searchRadiusKm: DefaultSearchRadiusKm,
		ratingAvg:      InitialRating,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries every persisted field of a rider for rehydration.
type Snapshot struct {
	ID             kernel.UUID
	Name           string
	VehicleType    VehicleType
	Location       *kernel.GeoPoint
	LocationSetAt  *time.Time
	Online         bool
	Verified       bool
	SearchRadiusKm float64
	RatingAvg      float64
	RatingCount    int
	EarningsToday  float64
	EarningsTotal  float64
}

// RestoreRider rebuilds the aggregate from persisted state.
func RestoreRider(s Snapshot) (*Rider, error) {
	if err := errors.Join(s.ID.Validate(), s.VehicleType.Validate()); err != nil {
		return nil, err
	}
	if s.Name == "" {
		return nil, errs.NewValueIsRequiredError("riderName")
	}
	if s.SearchRadiusKm < MinSearchRadiusKm || s.SearchRadiusKm > MaxSearchRadiusKm {
		return nil, errs.NewValueIsOutOfRangeError(
			"searchRadiusKm", s.SearchRadiusKm, MinSearchRadiusKm, MaxSearchRadiusKm)
	}
	if s.RatingCount < 0 {
		return nil, errs.NewValueIsInvalidError("ratingCount")
	}

	return &Rider{
		id:             s.ID,
		name:           s.Name,
		vehicleType:    s.VehicleType,
		location:       s.Location,
		locationSetAt:  s.LocationSetAt,
		online:         s.Online,
		verified:       s.Verified,
		searchRadiusKm: s.SearchRadiusKm,
		ratingAvg:      s.RatingAvg,
		ratingCount:    s.RatingCount,
		earningsToday:  s.EarningsToday,
		earningsTotal:  s.EarningsTotal,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Rider was constructed through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider identifier.
func (r *Rider) ID() kernel.UUID { return r.id }

// Name returns the rider's display name.
func (r *Rider) Name() string { return r.name }

// VehicleType returns the rider's vehicle class.
func (r *Rider) VehicleType() VehicleType { return r.vehicleType }

// Location returns the last reported position, or nil if never reported.
func (r *Rider) Location() *kernel.GeoPoint { return r.location }

// LocationSetAt returns when the position was last reported, or nil.
func (r *Rider) LocationSetAt() *time.Time { return r.locationSetAt }

// IsOnline reports whether the rider is taking jobs.
func (r *Rider) IsOnline() bool { return r.online }

// IsVerified reports whether the rider passed verification.
func (r *Rider) IsVerified() bool { return r.verified }

// SearchRadiusKm returns the rider's delivery-discovery radius.
func (r *Rider) SearchRadiusKm() float64 { return r.searchRadiusKm }

// RatingAvg returns the running average rating, 2 decimals.
func (r *Rider) RatingAvg() float64 { return r.ratingAvg }

// RatingCount returns how many ratings the average covers.
func (r *Rider) RatingCount() int { return r.ratingCount }

// EarningsToday returns the credited earnings since the last daily reset.
func (r *Rider) EarningsToday() float64 { return r.earningsToday }

// EarningsTotal returns the lifetime credited earnings.
func (r *Rider) EarningsTotal() float64 { return r.earningsTotal }

// IsEqual compares two riders by identity.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// IsDiscoverable reports whether the rider shows up in proximity search:
// online, verified, and with a known location.
func (r *Rider) IsDiscoverable() bool {
	return r.online && r.verified && r.location != nil
}

// ReportLocation records a fresh position fix.
func (r *Rider) ReportLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	r.location = &point
	r.locationSetAt = &now
	return nil
}

// GoOnline makes the rider available for jobs.
func (r *Rider) GoOnline() { r.online = true }

// GoOffline removes the rider from discovery.
func (r *Rider) GoOffline() { r.online = false }

// MarkVerified records a passed verification check.
func (r *Rider) MarkVerified() { r.verified = true }

// SetSearchRadius changes the discovery radius within the allowed bounds.
func (r *Rider) SetSearchRadius(km float64) error {
	if km < MinSearchRadiusKm || km > MaxSearchRadiusKm {
		return errs.NewValueIsOutOfRangeError("searchRadiusKm", km, MinSearchRadiusKm, MaxSearchRadiusKm)
	}
	r.searchRadiusKm = km
	return nil
}

// DistanceKmTo returns the distance from the rider's last reported position
// to point. Fails with ErrLocationUnknown when no position was reported.
func (r *Rider) DistanceKmTo(point kernel.GeoPoint) (float64, error) {
	if r.location == nil {
		return 0, ErrLocationUnknown
	}
	return r.location.DistanceKm(point)
}

// RecordRating folds a new 1..5 rating into the running average:
//
//	newAvg = round((avg*count + value) / (count+1), 2)
//
// The count then advances. Stored averages are authoritative; the original
// per-delivery ratings are not re-read.
func (r *Rider) RecordRating(value int) error {
	if value < 1 || value > 5 {
		return errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}

	total := r.ratingAvg*float64(r.ratingCount) + float64(value)
	r.ratingCount++
	r.ratingAvg = round2(total / float64(r.ratingCount))
	return nil
}

// CreditEarnings adds a completed delivery's rider share to both the daily
// and lifetime counters. Must run in the same unit of work as the delivery
// status write so a crash cannot credit twice or not at all.
func (r *Rider) CreditEarnings(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"earnings", fmt.Errorf("%v is negative", amount))
	}
	r.earningsToday = round2(r.earningsToday + amount)
	r.earningsTotal = round2(r.earningsTotal + amount)
	return nil
}

// ResetDailyEarnings zeroes the daily counter. Invoked by the midnight job.
func (r *Rider) ResetDailyEarnings() {
	r.earningsToday = 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
