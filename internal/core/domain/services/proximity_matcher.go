package services

import (
	"sort"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"
)

// DefaultCandidateLimit caps the number of deliveries shown to a rider in
// one discovery call.
const DefaultCandidateLimit = 20

// Candidate pairs a delivery with its pickup distance from the rider,
// rounded to the 2-decimal precision shown to riders.
type Candidate struct {
	Delivery   *delivery.Delivery
	DistanceKm float64
}

// ProximityMatcher is a domain service that filters and orders pending
// deliveries for a rider's discovery feed.
//
// A delivery qualifies when:
//   - it is still pending;
//   - the rider passes its acceptance rules (not in the rejection set,
//     preferred-rider window honored);
//   - its pickup lies within the rider's search radius.
//
// Qualifying deliveries are ordered nearest pickup first; equal distances
// tie-break on delivery id so the ordering is stable across calls.
type ProximityMatcher struct{}

// NewProximityMatcher creates a ProximityMatcher.
func NewProximityMatcher() ProximityMatcher {
	return ProximityMatcher{}
}

// FindCandidates returns up to limit deliveries the rider may accept,
// nearest pickup first. A limit of zero or less falls back to
// DefaultCandidateLimit. The rider must be discoverable (online, verified,
// with a reported position); otherwise rider.ErrLocationUnknown or an empty
// result is returned.
func (m ProximityMatcher) FindCandidates(
	r *rider.Rider,
	deliveries []*delivery.Delivery,
	now time.Time,
	limit int,
) ([]Candidate, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Location() == nil {
		return nil, rider.ErrLocationUnknown
	}
	if !r.IsDiscoverable() {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	candidates := make([]Candidate, 0, len(deliveries))
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.IsPending() || !d.CanRiderAccept(r.ID(), now) {
			continue
		}

		km, err := r.DistanceKmTo(d.Pickup())
		if err != nil {
			return nil, err
		}
		km = kernel.RoundKm(km)
		if km > r.SearchRadiusKm() {
			continue
		}

		candidates = append(candidates, Candidate{Delivery: d, DistanceKm: km})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].Delivery.ID().String() < candidates[j].Delivery.ID().String()
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}
