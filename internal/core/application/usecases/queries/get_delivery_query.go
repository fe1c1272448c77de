package queries

import (
	"errors"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery asks for the full detail view of one delivery, looked up
// by the external code printed on receipts and shared with customers.
type GetDeliveryQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates the query for the given delivery code.
func NewGetDeliveryQuery(code string) (GetDeliveryQuery, error) {
	if code == "" {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredError("code")
	}

	return GetDeliveryQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) Code() string { return q.code }

// GetDeliveryQueryResponse is the delivery detail read model.
type GetDeliveryQueryResponse struct {
	ID                 kernel.UUID
	Code               string
	Status             string
	CustomerID         kernel.UUID
	RiderID            *kernel.UUID
	Pickup             kernel.GeoPoint
	Dropoff            kernel.GeoPoint
	DistanceKm         float64
	BaseFare           float64
	DistanceFare       float64
	TotalFare          float64
	PlatformFee        float64
	RiderEarnings      float64
	PackageType        string
	PackageDescription string
	PackageSize        string
	PaymentMethod      string
	PaymentStatus      string
	AssignmentMode     string
	SelectionExpiresAt *time.Time
	RepeatCustomer     bool
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	DeliveredAt        *time.Time
	CancellationReason string
}
