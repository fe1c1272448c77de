package delivery

import (
	"errors"
	"fmt"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

// SelectionWindow is how long customer-preferred riders keep exclusive
// access to a pending delivery.
const SelectionWindow = 15 * time.Minute

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrNotPending indicates an operation that requires pending state was
	// attempted after the delivery progressed. Callers must re-fetch.
	ErrNotPending = errors.New("delivery is no longer pending")

	// ErrRiderNotEligible indicates the rider may not accept this delivery:
	// previously rejected it, or outside an open preferred-rider window.
	ErrRiderNotEligible = errors.New("rider is not eligible to accept this delivery")

	// ErrNotDelivered indicates a rating was attempted before the delivery
	// reached its delivered state.
	ErrNotDelivered = errors.New("only delivered deliveries can be rated")

	// ErrAlreadyRated indicates the rating field was already set. Ratings
	// are write-once; this error is permanent.
	ErrAlreadyRated = errors.New("delivery has already been rated")
)

// Rating is a write-once 1..5 score with an optional review, given by one
// party about the other after delivery.
type Rating struct {
	value  int
	review string
}

// NewRating creates a validated rating.
func NewRating(value int, review string) (Rating, error) {
	if value < 1 || value > 5 {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", value, 1, 5)
	}
	return Rating{value: value, review: review}, nil
}

// Value returns the 1..5 score.
func (r Rating) Value() int { return r.value }

// Review returns the optional free-text review.
func (r Rating) Review() string { return r.review }

// Delivery is the aggregate root for one package-movement order. All state
// changes go through its methods; the lifecycle rules live in Status.
//
// Concurrency note: the aggregate itself is not goroutine safe. The accept
// race between riders is resolved by the persistence layer's conditional
// update (status must still be pending when the row is written), not by
// locking the in-memory object.
type Delivery struct {
	id         kernel.UUID
	code       string
	customerID kernel.UUID
	riderID    *kernel.UUID

	pickup     kernel.GeoPoint
	dropoff    kernel.GeoPoint
	distanceKm float64

	pkg           PackageInfo
	fare          Fare
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	assignmentMode     AssignmentMode
	preferredRiders    RiderSet
	rejectedRiders     RiderSet
	selectionExpiresAt *time.Time

	status             Status
	repeatCustomer     bool
	createdAt          time.Time
	acceptedAt         *time.Time
	pickedUpAt         *time.Time
	deliveredAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string

	customerRating *Rating // customer → rider
	riderRating    *Rating // rider → customer

	// trackingEvents holds events appended during this aggregate session.
	// Historical events are read through the tracking query, not loaded here.
	trackingEvents []TrackingEvent

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in pending state. The great-circle
// distance between pickup and dropoff is computed here (2-decimal km) and
// the fare breakdown is derived from it; both are immutable afterwards.
// Creation appends no tracking event.
func NewDelivery(
	id kernel.UUID,
	code string,
	customerID kernel.UUID,
	pickup kernel.GeoPoint,
	dropoff kernel.GeoPoint,
	pkg PackageInfo,
	paymentMethod PaymentMethod,
	repeatCustomer bool,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		validateCode(code),
		customerID.Validate(),
		pickup.Validate(),
		dropoff.Validate(),
		pkg.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	rawDistance, err := pickup.DistanceKm(dropoff)
	if err != nil {
		return nil, err
	}
	distanceKm := kernel.RoundKm(rawDistance)

	fare, err := CalculateFare(distanceKm)
	if err != nil {
		return nil, err
	}

	return &Delivery{
		id:             id,
		code:           code,
		customerID:     customerID,
		pickup:         pickup,
		dropoff:        dropoff,
		distanceKm:     distanceKm,
		pkg:            pkg,
		fare:           fare,
		paymentMethod:  paymentMethod,
		paymentStatus:  PaymentPending,
		assignmentMode: AssignmentAuto,
		status:         StatusPending,
		repeatCustomer: repeatCustomer,
		createdAt:      now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries every persisted field of a delivery for rehydration.
type Snapshot struct {
	ID                 kernel.UUID
	Code               string
	CustomerID         kernel.UUID
	RiderID            *kernel.UUID
	Pickup             kernel.GeoPoint
	Dropoff            kernel.GeoPoint
	DistanceKm         float64
	Package            PackageInfo
	Fare               Fare
	PaymentMethod      PaymentMethod
	PaymentStatus      PaymentStatus
	AssignmentMode     AssignmentMode
	PreferredRiders    RiderSet
	RejectedRiders     RiderSet
	SelectionExpiresAt *time.Time
	Status             Status
	RepeatCustomer     bool
	CreatedAt          time.Time
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
	CustomerRating     *Rating
	RiderRating        *Rating
}

// RestoreDelivery rebuilds the aggregate from persisted state, re-checking
// the structural invariants (valid enums, rider presence consistent with
// status, no assigned rider in the rejection set).
func RestoreDelivery(s Snapshot) (*Delivery, error) {
	if err := errors.Join(
		s.ID.Validate(),
		validateCode(s.Code),
		s.CustomerID.Validate(),
		s.Pickup.Validate(),
		s.Dropoff.Validate(),
		s.Package.Validate(),
		s.Fare.Validate(),
		s.PaymentMethod.Validate(),
		s.PaymentStatus.Validate(),
		s.AssignmentMode.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := validateRiderAssignment(s.Status, s.RiderID, s.RejectedRiders); err != nil {
		return nil, err
	}

	return &Delivery{
		id:                 s.ID,
		code:               s.Code,
		customerID:         s.CustomerID,
		riderID:            s.RiderID,
		pickup:             s.Pickup,
		dropoff:            s.Dropoff,
		distanceKm:         s.DistanceKm,
		pkg:                s.Package,
		fare:               s.Fare,
		paymentMethod:      s.PaymentMethod,
		paymentStatus:      s.PaymentStatus,
		assignmentMode:     s.AssignmentMode,
		preferredRiders:    s.PreferredRiders,
		rejectedRiders:     s.RejectedRiders,
		selectionExpiresAt: s.SelectionExpiresAt,
		status:             s.Status,
		repeatCustomer:     s.RepeatCustomer,
		createdAt:          s.CreatedAt,
		acceptedAt:         s.AcceptedAt,
		pickedUpAt:         s.PickedUpAt,
		deliveredAt:        s.DeliveredAt,
		cancelledAt:        s.CancelledAt,
		cancellationReason: s.CancellationReason,
		customerRating:     s.CustomerRating,
		riderRating:        s.RiderRating,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// validateRiderAssignment enforces that rider_id is set exactly for the
// states that require one, and that the assigned rider never appears in the
// rejection set.
func validateRiderAssignment(status Status, riderID *kernel.UUID, rejected RiderSet) error {
	requiresRider := status == StatusAccepted || status == StatusPickedUp ||
		status == StatusInTransit || status == StatusDelivered

	if requiresRider && riderID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderId", fmt.Errorf("status %s requires an assigned rider", status))
	}
	if !requiresRider && riderID != nil && status == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderId", fmt.Errorf("status %s cannot have an assigned rider", status))
	}
	if riderID != nil && rejected.Contains(*riderID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"riderId", fmt.Errorf("assigned rider %s previously rejected this delivery", riderID))
	}
	return nil
}

// Validate ensures the Delivery was constructed through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the internal identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// Code returns the external-facing delivery code.
func (d *Delivery) Code() string { return d.code }

// CustomerID returns the requesting customer.
func (d *Delivery) CustomerID() kernel.UUID { return d.customerID }

// RiderID returns the assigned rider, or nil before acceptance.
func (d *Delivery) RiderID() *kernel.UUID { return d.riderID }

// Pickup returns the pickup coordinate.
func (d *Delivery) Pickup() kernel.GeoPoint { return d.pickup }

// Dropoff returns the dropoff coordinate.
func (d *Delivery) Dropoff() kernel.GeoPoint { return d.dropoff }

// DistanceKm returns the stored great-circle distance (2-decimal km).
func (d *Delivery) DistanceKm() float64 { return d.distanceKm }

// Package returns the package description.
func (d *Delivery) Package() PackageInfo { return d.pkg }

// Fare returns the immutable fare breakdown.
func (d *Delivery) Fare() Fare { return d.fare }

// PaymentMethod returns how the customer pays.
func (d *Delivery) PaymentMethod() PaymentMethod { return d.paymentMethod }

// PaymentStatus returns the settlement state.
func (d *Delivery) PaymentStatus() PaymentStatus { return d.paymentStatus }

// AssignmentMode returns the stored assignment policy. Note that an expired
// selection window is a read-time fact: the stored mode stays
// customer_selected until rejection exhaustion flips it.
func (d *Delivery) AssignmentMode() AssignmentMode { return d.assignmentMode }

// PreferredRiders returns the customer's preferred-rider set.
func (d *Delivery) PreferredRiders() RiderSet { return d.preferredRiders }

// RejectedRiders returns the set of riders who declined this delivery.
func (d *Delivery) RejectedRiders() RiderSet { return d.rejectedRiders }

// SelectionExpiresAt returns the preferred-rider window deadline, or nil.
func (d *Delivery) SelectionExpiresAt() *time.Time { return d.selectionExpiresAt }

// Status returns the lifecycle state.
func (d *Delivery) Status() Status { return d.status }

// RepeatCustomer reports whether the customer had completed deliveries
// before this one. Informational only.
func (d *Delivery) RepeatCustomer() bool { return d.repeatCustomer }

// CreatedAt returns the creation time.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// AcceptedAt returns when a rider accepted, or nil.
func (d *Delivery) AcceptedAt() *time.Time { return d.acceptedAt }

// PickedUpAt returns when the package was collected, or nil.
func (d *Delivery) PickedUpAt() *time.Time { return d.pickedUpAt }

// DeliveredAt returns when the package was delivered, or nil.
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }

// CancelledAt returns when the delivery was cancelled, or nil.
func (d *Delivery) CancelledAt() *time.Time { return d.cancelledAt }

// CancellationReason returns the mandatory reason recorded on cancel.
func (d *Delivery) CancellationReason() string { return d.cancellationReason }

// CustomerRating returns the customer's rating of the rider, or nil.
func (d *Delivery) CustomerRating() *Rating { return d.customerRating }

// RiderRating returns the rider's rating of the customer, or nil.
func (d *Delivery) RiderRating() *Rating { return d.riderRating }

// TrackingEvents returns the events appended during this session, oldest
// first. The persistence layer stores them on save.
func (d *Delivery) TrackingEvents() []TrackingEvent {
	return append([]TrackingEvent(nil), d.trackingEvents...)
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// IsPending reports whether the delivery can still be claimed.
func (d *Delivery) IsPending() bool { return d.status == StatusPending }

// IsActive reports whether a rider is currently working the delivery.
func (d *Delivery) IsActive() bool {
	return d.status == StatusAccepted || d.status == StatusPickedUp || d.status == StatusInTransit
}

// CanRiderAccept is the pure eligibility predicate evaluated at discovery
// and re-evaluated at accept time:
//
//  1. a rider who rejected this delivery is never eligible again;
//  2. while a customer-selected window is open, only preferred riders
//     qualify;
//  3. once the window has expired the delivery is open to any rider (the
//     stored mode is not flipped; expiry is a fact computed from now);
//  4. in auto mode any rider qualifies.
func (d *Delivery) CanRiderAccept(riderID kernel.UUID, now time.Time) bool {
	if d.rejectedRiders.Contains(riderID) {
		return false
	}

	if d.assignmentMode == AssignmentCustomerSelected && d.selectionWindowOpen(now) {
		return d.preferredRiders.Contains(riderID)
	}

	return true
}

func (d *Delivery) selectionWindowOpen(now time.Time) bool {
	return d.selectionExpiresAt != nil && now.Before(*d.selectionExpiresAt)
}

// SelectPreferredRiders restricts acceptance to the given riders (1 to 5,
// no duplicates) for the next SelectionWindow. Only pending deliveries can
// be restricted.
func (d *Delivery) SelectPreferredRiders(riderIDs []kernel.UUID, now time.Time) error {
	if !d.IsPending() {
		return ErrNotPending
	}

	if len(riderIDs) == 0 {
		return errs.NewValueIsRequiredError("preferredRiders")
	}
	if len(riderIDs) > MaxPreferredRiders {
		return errs.NewValueIsOutOfRangeError("preferredRiders", len(riderIDs), 1, MaxPreferredRiders)
	}

	preferred, err := NewRiderSet(riderIDs...)
	if err != nil {
		return err
	}

	expiry := now.Add(SelectionWindow)
	d.preferredRiders = preferred
	d.assignmentMode = AssignmentCustomerSelected
	d.selectionExpiresAt = &expiry
	return nil
}

// RejectByRider records that riderID declined the delivery. The rejection
// set insert is idempotent. When every preferred rider has rejected, the
// assignment mode flips to auto and the window clears, reopening the
// delivery to the general pool.
func (d *Delivery) RejectByRider(riderID kernel.UUID, reason string, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !d.IsPending() {
		return ErrNotPending
	}

	d.rejectedRiders.Add(riderID)

	note := reason
	if note == "" {
		note = "Delivery rejected by rider"
	}
	d.appendTrackingEvent(EventRejected, note, now)

	if d.assignmentMode == AssignmentCustomerSelected &&
		!d.preferredRiders.IsEmpty() &&
		d.preferredRiders.IsSubsetOf(d.rejectedRiders) {
		d.assignmentMode = AssignmentAuto
		d.selectionExpiresAt = nil
	}

	return nil
}

// Accept assigns the delivery to riderID. The caller must hold the
// delivery inside a transaction whose write is conditioned on the row still
// being pending; Accept itself only enforces the in-memory rules.
func (d *Delivery) Accept(riderID kernel.UUID, now time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if !d.IsPending() {
		return ErrNotPending
	}
	if !d.CanRiderAccept(riderID, now) {
		return ErrRiderNotEligible
	}

	newStatus, err := d.status.TransitionTo(StatusAccepted)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.riderID = &riderID
	d.acceptedAt = &now
	d.appendTrackingEvent(EventAccepted, "Delivery accepted by rider", now)
	return nil
}

// MarkPickedUp records package collection by the assigned rider.
func (d *Delivery) MarkPickedUp(now time.Time) error {
	newStatus, err := d.status.TransitionTo(StatusPickedUp)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.pickedUpAt = &now
	d.appendTrackingEvent(EventPickedUp, "Package picked up", now)
	return nil
}

// MarkInTransit records that the package is on its way to the dropoff.
func (d *Delivery) MarkInTransit(now time.Time) error {
	newStatus, err := d.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.appendTrackingEvent(EventInTransit, "Package in transit", now)
	return nil
}

// MarkDelivered completes the delivery: terminal status, payment flipped to
// paid, and the rider-earnings amount returned so the caller can credit the
// rider's ledger inside the same unit of work.
func (d *Delivery) MarkDelivered(now time.Time) (float64, error) {
	newStatus, err := d.status.TransitionTo(StatusDelivered)
	if err != nil {
		return 0, err
	}

	d.status = newStatus
	d.deliveredAt = &now
	d.paymentStatus = PaymentPaid
	d.appendTrackingEvent(EventDelivered, "Package delivered successfully", now)
	return d.fare.RiderEarnings(), nil
}

// Cancel abandons the delivery from any non-terminal state. The reason is
// mandatory and recorded both on the delivery and in the tracking log.
func (d *Delivery) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := d.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.cancelledAt = &now
	d.cancellationReason = reason
	d.appendTrackingEvent(EventCancelled, reason, now)
	return nil
}

// RateRider records the customer's write-once rating of the rider.
// Returns the stored rating so the caller can forward it to the rider's
// rating ledger.
func (d *Delivery) RateRider(value int, review string) (Rating, error) {
	if d.status != StatusDelivered {
		return Rating{}, ErrNotDelivered
	}
	if d.customerRating != nil {
		return Rating{}, ErrAlreadyRated
	}

	rating, err := NewRating(value, review)
	if err != nil {
		return Rating{}, err
	}

	d.customerRating = &rating
	return rating, nil
}

// RateCustomer records the rider's write-once rating of the customer.
func (d *Delivery) RateCustomer(value int, review string) (Rating, error) {
	if d.status != StatusDelivered {
		return Rating{}, ErrNotDelivered
	}
	if d.riderRating != nil {
		return Rating{}, ErrAlreadyRated
	}

	rating, err := NewRating(value, review)
	if err != nil {
		return Rating{}, err
	}

	d.riderRating = &rating
	return rating, nil
}

func (d *Delivery) appendTrackingEvent(status, note string, now time.Time) {
	d.trackingEvents = append(d.trackingEvents, NewTrackingEvent(status, note, nil, now))
}
