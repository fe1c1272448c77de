package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryTrackingQueryHandler reads the tracking timeline straight from
// the database with raw SQL. Tracking is append-only display data, so it
// bypasses aggregate rehydration entirely.
type GetDeliveryTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryTrackingQueryHandler creates a handler for tracking queries.
func NewGetDeliveryTrackingQueryHandler(db *gorm.DB) (GetDeliveryTrackingQueryHandler, error) {
	if db == nil {
		return GetDeliveryTrackingQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetDeliveryTrackingQueryHandler{db: db}, nil
}

// Handle returns the delivery's current state, the assigned rider's last
// reported position when one exists, and the tracking events newest first.
func (h GetDeliveryTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTrackingQuery,
) (GetDeliveryTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryTrackingQueryResponse{}, err
	}

	var (
		response  GetDeliveryTrackingQueryResponse
		id        uuid.UUID
		riderName sql.NullString
		riderLat  sql.NullFloat64
		riderLng  sql.NullFloat64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.code,
			d.status,
			r.name,
			r.lat,
			r.lng
		FROM deliveries d
		LEFT JOIN riders r ON r.id = d.rider_id
		WHERE d.code = ?
	`, query.Code()).Row()

	err := row.Scan(&id, &response.Code, &response.Status, &riderName, &riderLat, &riderLng)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryTrackingQueryResponse{},
			errs.NewObjectNotFoundError("delivery", query.Code())
	}
	if err != nil {
		return GetDeliveryTrackingQueryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryTrackingQueryResponse{}, err
	}
	response.DeliveryID = deliveryID

	if riderName.Valid {
		response.RiderName = riderName.String
	}
	if riderLat.Valid && riderLng.Valid {
		point, pointErr := kernel.NewGeoPoint(riderLat.Float64, riderLng.Float64)
		if pointErr != nil {
			return GetDeliveryTrackingQueryResponse{}, pointErr
		}
		response.RiderLocation = &point
	}

	events, err := h.loadEvents(ctx, deliveryID)
	if err != nil {
		return GetDeliveryTrackingQueryResponse{}, err
	}
	response.Events = events

	return response, nil
}

func (h GetDeliveryTrackingQueryHandler) loadEvents(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]TrackingEventResponse, error) {
	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			note,
			lat,
			lng,
			created_at
		FROM delivery_tracking_events
		WHERE delivery_id = ?
		ORDER BY created_at DESC, id DESC
	`, deliveryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			event     TrackingEventResponse
			lat, lng  sql.NullFloat64
			createdAt time.Time
		)

		err = rows.Scan(&event.Status, &event.Note, &lat, &lng, &createdAt)
		if err != nil {
			return nil, err
		}

		if lat.Valid && lng.Valid {
			point, pointErr := kernel.NewGeoPoint(lat.Float64, lng.Float64)
			if pointErr != nil {
				return nil, pointErr
			}
			event.Location = &point
		}
		event.CreatedAt = createdAt
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
