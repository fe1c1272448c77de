// Package riderrepo persists rider aggregates with GORM.
package riderrepo

import (
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO is the database row for a rider aggregate. The coordinate pair is
// nullable because riders exist before their first location report.
type RiderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	VehicleType    string
	Lat            *float64
	Lng            *float64
	LocationSetAt  *time.Time
	Online         bool `gorm:"index"`
	Verified       bool
	SearchRadiusKm float64
	RatingAvg      float64
	RatingCount    int
	EarningsToday  float64
	EarningsTotal  float64
}

// TableName overrides GORM's default naming to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	dto := RiderDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		VehicleType:    aggregate.VehicleType().String(),
		LocationSetAt:  aggregate.LocationSetAt(),
		Online:         aggregate.IsOnline(),
		Verified:       aggregate.IsVerified(),
		SearchRadiusKm: aggregate.SearchRadiusKm(),
		RatingAvg:      aggregate.RatingAvg(),
		RatingCount:    aggregate.RatingCount(),
		EarningsToday:  aggregate.EarningsToday(),
		EarningsTotal:  aggregate.EarningsTotal(),
	}

	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := rider.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	snapshot := rider.Snapshot{
		ID:             id,
		Name:           dto.Name,
		VehicleType:    vehicleType,
		LocationSetAt:  dto.LocationSetAt,
		Online:         dto.Online,
		Verified:       dto.Verified,
		SearchRadiusKm: dto.SearchRadiusKm,
		RatingAvg:      dto.RatingAvg,
		RatingCount:    dto.RatingCount,
		EarningsToday:  dto.EarningsToday,
		EarningsTotal:  dto.EarningsTotal,
	}

	if dto.Lat != nil && dto.Lng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		snapshot.Location = &point
	}

	return rider.RestoreRider(snapshot)
}
