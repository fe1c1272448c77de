package ports

import (
	"context"

	"mtaani/internal/core/domain/model/kernel"
)

// RiderLocationFeed is the low-latency geo index of rider positions. It
// mirrors the rider aggregate's last reported location so that discovery
// can shortlist nearby riders without scanning the rider table. Postgres
// remains the source of truth; the feed is rebuilt from it on demand.
type RiderLocationFeed interface {
	// UpdateLocation records the rider's current position in the index.
	UpdateLocation(ctx context.Context, riderID kernel.UUID, point kernel.GeoPoint) error

	// Remove drops the rider from the index, typically on going offline.
	Remove(ctx context.Context, riderID kernel.UUID) error

	// NearbyRiders returns up to limit rider ids within radiusKm of point,
	// nearest first.
	NearbyRiders(ctx context.Context, point kernel.GeoPoint, radiusKm float64, limit int) ([]kernel.UUID, error)
}
