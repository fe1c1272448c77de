// Package deliveryrepo persists delivery aggregates with GORM. It maps the
// aggregate to a flat row plus an append-only tracking events table and
// rebuilds it through RestoreDelivery so the structural invariants are
// re-checked on every read.
package deliveryrepo

import (
	"encoding/json"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database row for a delivery aggregate. Enum values are
// stored as their string labels so the rows stay readable and the raw-SQL
// read side can filter on them directly.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code               string     `gorm:"size:16;uniqueIndex"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;index"`
	RiderID            *uuid.UUID `gorm:"type:uuid;index"`
	PickupLat          float64
	PickupLng          float64
	DropoffLat         float64
	DropoffLng         float64
	DistanceKm         float64
	PackageType        string
	PackageDescription string
	PackageWeightKg    *float64
	PackageSize        string
	PackagePhotos      string
	BaseFare           float64
	DistanceFare       float64
	TotalFare          float64
	PlatformFee        float64
	RiderEarnings      float64
	PaymentMethod      string
	PaymentStatus      string
	AssignmentMode     string
	PreferredRiders    string
	RejectedRiders     string
	SelectionExpiresAt *time.Time
	Status             string `gorm:"index"`
	RepeatCustomer     bool
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CustomerRating     *int
	CustomerReview     string
	RiderRating        *int
	RiderReview        string
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// TrackingEventDTO is one row of the append-only tracking log.
type TrackingEventDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID `gorm:"type:uuid;index"`
	Status     string
	Note       string
	Lat        *float64
	Lng        *float64
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "delivery_tracking_events".
func (TrackingEventDTO) TableName() string {
	return "delivery_tracking_events"
}

func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	preferred, err := marshalRiderSet(aggregate.PreferredRiders())
	if err != nil {
		return DeliveryDTO{}, err
	}
	rejected, err := marshalRiderSet(aggregate.RejectedRiders())
	if err != nil {
		return DeliveryDTO{}, err
	}
	photos, err := marshalPhotos(aggregate.Package().Photos())
	if err != nil {
		return DeliveryDTO{}, err
	}

	dto := DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		Code:               aggregate.Code(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		RiderID:            riderID,
		PickupLat:          aggregate.Pickup().Latitude(),
		PickupLng:          aggregate.Pickup().Longitude(),
		DropoffLat:         aggregate.Dropoff().Latitude(),
		DropoffLng:         aggregate.Dropoff().Longitude(),
		DistanceKm:         aggregate.DistanceKm(),
		PackageType:        aggregate.Package().Type(),
		PackageDescription: aggregate.Package().Description(),
		PackageWeightKg:    aggregate.Package().WeightKg(),
		PackageSize:        aggregate.Package().Size().String(),
		PackagePhotos:      photos,
		BaseFare:           aggregate.Fare().BaseFare(),
		DistanceFare:       aggregate.Fare().DistanceFare(),
		TotalFare:          aggregate.Fare().TotalFare(),
		PlatformFee:        aggregate.Fare().PlatformFee(),
		RiderEarnings:      aggregate.Fare().RiderEarnings(),
		PaymentMethod:      aggregate.PaymentMethod().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		AssignmentMode:     aggregate.AssignmentMode().String(),
		PreferredRiders:    preferred,
		RejectedRiders:     rejected,
		SelectionExpiresAt: aggregate.SelectionExpiresAt(),
		Status:             aggregate.Status().String(),
		RepeatCustomer:     aggregate.RepeatCustomer(),
		CreatedAt:          aggregate.CreatedAt(),
		AcceptedAt:         aggregate.AcceptedAt(),
		PickedUpAt:         aggregate.PickedUpAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CancellationReason: aggregate.CancellationReason(),
	}

	if rating := aggregate.CustomerRating(); rating != nil {
		value := rating.Value()
		dto.CustomerRating = &value
		dto.CustomerReview = rating.Review()
	}
	if rating := aggregate.RiderRating(); rating != nil {
		value := rating.Value()
		dto.RiderRating = &value
		dto.RiderReview = rating.Review()
	}

	return dto, nil
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewGeoPoint(dto.DropoffLat, dto.DropoffLng)
	if err != nil {
		return nil, err
	}

	size, err := delivery.PackageSizeFromString(dto.PackageSize)
	if err != nil {
		return nil, err
	}
	photos, err := unmarshalPhotos(dto.PackagePhotos)
	if err != nil {
		return nil, err
	}
	pkg, err := delivery.NewPackageInfo(
		dto.PackageType, dto.PackageDescription, dto.PackageWeightKg, size, photos)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := delivery.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := delivery.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	assignmentMode, err := delivery.AssignmentModeFromString(dto.AssignmentMode)
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	preferred, err := unmarshalRiderSet(dto.PreferredRiders)
	if err != nil {
		return nil, err
	}
	rejected, err := unmarshalRiderSet(dto.RejectedRiders)
	if err != nil {
		return nil, err
	}

	snapshot := delivery.Snapshot{
		ID:                 id,
		Code:               dto.Code,
		CustomerID:         customerID,
		RiderID:            riderID,
		Pickup:             pickup,
		Dropoff:            dropoff,
		DistanceKm:         dto.DistanceKm,
		Package:            pkg,
		Fare: delivery.RestoreFare(
			dto.BaseFare, dto.DistanceFare, dto.TotalFare, dto.PlatformFee, dto.RiderEarnings),
		PaymentMethod:      paymentMethod,
		PaymentStatus:      paymentStatus,
		AssignmentMode:     assignmentMode,
		PreferredRiders:    preferred,
		RejectedRiders:     rejected,
		SelectionExpiresAt: dto.SelectionExpiresAt,
		Status:             status,
		RepeatCustomer:     dto.RepeatCustomer,
		CreatedAt:          dto.CreatedAt,
		AcceptedAt:         dto.AcceptedAt,
		PickedUpAt:         dto.PickedUpAt,
		DeliveredAt:        dto.DeliveredAt,
		CancelledAt:        dto.CancelledAt,
		CancellationReason: dto.CancellationReason,
	}

	if dto.CustomerRating != nil {
		rating, ratingErr := delivery.NewRating(*dto.CustomerRating, dto.CustomerReview)
		if ratingErr != nil {
			return nil, ratingErr
		}
		snapshot.CustomerRating = &rating
	}
	if dto.RiderRating != nil {
		rating, ratingErr := delivery.NewRating(*dto.RiderRating, dto.RiderReview)
		if ratingErr != nil {
			return nil, ratingErr
		}
		snapshot.RiderRating = &rating
	}

	return delivery.RestoreDelivery(snapshot)
}

func eventFromDomain(deliveryID kernel.UUID, event delivery.TrackingEvent) TrackingEventDTO {
	dto := TrackingEventDTO{
		DeliveryID: deliveryID.Bytes(),
		Status:     event.Status(),
		Note:       event.Note(),
		CreatedAt:  event.CreatedAt(),
	}

	if location := event.Location(); location != nil {
		lat := location.Latitude()
		lng := location.Longitude()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

func eventToDomain(dto TrackingEventDTO) (delivery.TrackingEvent, error) {
	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, err := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if err != nil {
			return delivery.TrackingEvent{}, err
		}
		location = &point
	}

	return delivery.NewTrackingEvent(dto.Status, dto.Note, location, dto.CreatedAt), nil
}

func marshalRiderSet(set delivery.RiderSet) (string, error) {
	ids := set.IDs()
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, id.String())
	}

	raw, err := json.Marshal(labels)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func unmarshalRiderSet(raw string) (delivery.RiderSet, error) {
	if raw == "" {
		return delivery.NewRiderSet()
	}

	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		return delivery.RiderSet{}, err
	}

	ids := make([]kernel.UUID, 0, len(labels))
	for _, label := range labels {
		id, err := kernel.UUIDFromString(label)
		if err != nil {
			return delivery.RiderSet{}, err
		}
		ids = append(ids, id)
	}

	return delivery.NewRiderSet(ids...)
}

func marshalPhotos(photos []string) (string, error) {
	if len(photos) == 0 {
		return "[]", nil
	}

	raw, err := json.Marshal(photos)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func unmarshalPhotos(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var photos []string
	if err := json.Unmarshal([]byte(raw), &photos); err != nil {
		return nil, err
	}

	return photos, nil
}
