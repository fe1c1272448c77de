package queries

import (
	"errors"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/guard"
)

var ErrGetDeliveryTrackingQueryIsNotConstructed = errors.New(
	"GetDeliveryTrackingQuery must be created via NewGetDeliveryTrackingQuery constructor",
)

// GetDeliveryTrackingQuery asks for the tracking timeline of one delivery,
// looked up by its customer-facing code.
type GetDeliveryTrackingQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetDeliveryTrackingQuery creates the query for the given delivery code.
func NewGetDeliveryTrackingQuery(code string) (GetDeliveryTrackingQuery, error) {
	if code == "" {
		return GetDeliveryTrackingQuery{}, errors.New("delivery code is required")
	}

	return GetDeliveryTrackingQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryTrackingQueryIsNotConstructed)
}

func (q GetDeliveryTrackingQuery) Code() string { return q.code }

// TrackingEventResponse is one entry of the tracking timeline.
type TrackingEventResponse struct {
	Status    string
	Note      string
	Location  *kernel.GeoPoint
	CreatedAt time.Time
}

// GetDeliveryTrackingQueryResponse is the tracking read model: the current
// delivery state, the assigned rider's last reported position when one is
// assigned, and the event timeline newest first.
type GetDeliveryTrackingQueryResponse struct {
	DeliveryID    kernel.UUID
	Code          string
	Status        string
	RiderName     string
	RiderLocation *kernel.GeoPoint
	Events        []TrackingEventResponse
}
