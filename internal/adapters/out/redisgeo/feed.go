// Package redisgeo implements the rider location feed port on Redis GEO
// commands. The sorted set mirrors each rider's last reported position;
// Postgres stays the source of truth and the set can be rebuilt from it.
package redisgeo

import (
	"context"

	"mtaani/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "riders:locations"

// Feed keeps rider positions in one Redis GEO key.
type Feed struct {
	client *redis.Client
	key    string
}

// NewFeed creates a feed on the given client. An empty key falls back to
// the default.
func NewFeed(client *redis.Client, key string) *Feed {
	if key == "" {
		key = defaultKey
	}
	return &Feed{client: client, key: key}
}

// UpdateLocation records the rider's current position in the index.
func (f *Feed) UpdateLocation(ctx context.Context, riderID kernel.UUID, point kernel.GeoPoint) error {
	return f.client.GeoAdd(ctx, f.key, &redis.GeoLocation{
		Name:      riderID.String(),
		Latitude:  point.Latitude(),
		Longitude: point.Longitude(),
	}).Err()
}

// Remove drops the rider from the index.
func (f *Feed) Remove(ctx context.Context, riderID kernel.UUID) error {
	return f.client.ZRem(ctx, f.key, riderID.String()).Err()
}

// NearbyRiders returns up to limit rider ids within radiusKm of point,
// nearest first.
func (f *Feed) NearbyRiders(
	ctx context.Context,
	point kernel.GeoPoint,
	radiusKm float64,
	limit int,
) ([]kernel.UUID, error) {
	locations, err := f.client.GeoSearchLocation(ctx, f.key, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  point.Longitude(),
			Latitude:   point.Latitude(),
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      limit,
		},
	}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(locations))
	for _, location := range locations {
		id, idErr := kernel.UUIDFromString(location.Name)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, nil
}
