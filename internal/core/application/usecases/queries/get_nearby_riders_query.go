package queries

import (
	"errors"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrGetNearbyRidersQueryIsNotConstructed = errors.New(
	"GetNearbyRidersQuery must be created via NewGetNearbyRidersQuery constructor",
)

const (
	// DefaultNearbyRadiusKm bounds the search when the caller gives none.
	DefaultNearbyRadiusKm = 5.0

	// DefaultNearbyLimit caps the shortlist when the caller gives none.
	DefaultNearbyLimit = 20
)

// GetNearbyRidersQuery asks for the online riders closest to a point, so a
// customer can shortlist them before picking preferred riders.
type GetNearbyRidersQuery struct {
	origin   kernel.GeoPoint
	radiusKm float64
	limit    int

	guard guard.ConstructorGuard
}

// NewGetNearbyRidersQuery creates the query. A radius or limit of zero or
// less falls back to the defaults.
func NewGetNearbyRidersQuery(lat, lng, radiusKm float64, limit int) (GetNearbyRidersQuery, error) {
	origin, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return GetNearbyRidersQuery{}, err
	}

	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}
	if limit <= 0 {
		limit = DefaultNearbyLimit
	}

	return GetNearbyRidersQuery{
		origin:   origin,
		radiusKm: radiusKm,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetNearbyRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRidersQueryIsNotConstructed)
}

func (q GetNearbyRidersQuery) Origin() kernel.GeoPoint { return q.origin }

func (q GetNearbyRidersQuery) RadiusKm() float64 { return q.radiusKm }

func (q GetNearbyRidersQuery) Limit() int { return q.limit }

// GetNearbyRidersQueryResponse is one discoverable rider near the origin.
type GetNearbyRidersQueryResponse struct {
	RiderID     kernel.UUID
	Name        string
	VehicleType string
	DistanceKm  float64
	RatingAvg   float64
	RatingCount int
}
