package delivery

import (
	"time"

	"mtaani/internal/core/domain/model/kernel"
)

// Tracking-event labels. These are audit-log labels, not lifecycle states:
// "rejected" is recorded even though the delivery stays pending, and
// "created" goes to the event stream only, never to the tracking log.
const (
	EventCreated   = "created"
	EventAccepted  = "accepted"
	EventPickedUp  = "picked_up"
	EventInTransit = "in_transit"
	EventDelivered = "delivered"
	EventCancelled = "cancelled"
	EventRejected  = "rejected"
)

// TrackingEvent is an immutable audit-log entry appended on every delivery
// transition. Events are never updated or deleted.
type TrackingEvent struct {
	status    string
	note      string
	location  *kernel.GeoPoint
	createdAt time.Time
}

// NewTrackingEvent creates a log entry. location is an optional coordinate
// snapshot of where the event happened.
func NewTrackingEvent(status, note string, location *kernel.GeoPoint, createdAt time.Time) TrackingEvent {
	return TrackingEvent{
		status:    status,
		note:      note,
		location:  location,
		createdAt: createdAt,
	}
}

// Status returns the event label.
func (e TrackingEvent) Status() string { return e.status }

// Note returns the free-text note.
func (e TrackingEvent) Note() string { return e.note }

// Location returns the optional coordinate snapshot.
func (e TrackingEvent) Location() *kernel.GeoPoint { return e.location }

// CreatedAt returns when the event was recorded.
func (e TrackingEvent) CreatedAt() time.Time { return e.createdAt }
