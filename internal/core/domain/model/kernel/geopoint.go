package kernel

import (
	"errors"
	"fmt"
	"math"

	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

const (
	// MinLatitude and MaxLatitude bound valid latitudes in degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0
	// MinLongitude and MaxLongitude bound valid longitudes in degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// EarthRadiusKm is the mean radius of Earth used by the haversine
	// formula, in kilometers.
	EarthRadiusKm = 6371.0
)

var (
	// ErrInvalidGeometry indicates a coordinate outside the valid
	// latitude/longitude ranges. Not retryable without caller correction.
	ErrInvalidGeometry = errors.New("coordinate is outside the valid range")

	// ErrGeoPointIsNotConstructed is returned when validating a zero-value
	// GeoPoint that bypassed the constructor.
	ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
		"geo point must be created via NewGeoPoint constructor")
)

// GeoPoint is an immutable WGS-84 coordinate pair. It is used for pickup and
// dropoff locations and for rider positions.
//
// The zero value is invalid; construct through NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated coordinates.
// Latitude must lie in [-90, 90] and longitude in [-180, 180]; anything else
// fails with an error wrapping ErrInvalidGeometry.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks that the GeoPoint was built through the constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two points for exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm returns the great-circle distance to other in kilometers,
// computed with the haversine formula on a sphere of EarthRadiusKm.
// The result is not rounded; callers that persist distances apply their own
// precision (see RoundKm).
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := degToRad(other.latitude - p.latitude)
	dLon := degToRad(other.longitude - p.longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(p.latitude))*math.Cos(degToRad(other.latitude))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c, nil
}

// RoundKm rounds a distance to the 2-decimal precision stored on
// deliveries. Half-up rounding.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return fmt.Errorf("%w: latitude %v not in [%v, %v]",
			ErrInvalidGeometry, latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return fmt.Errorf("%w: longitude %v not in [%v, %v]",
			ErrInvalidGeometry, longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}
