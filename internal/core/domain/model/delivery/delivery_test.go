package delivery_test

import (
	"testing"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testPackage(t *testing.T) delivery.PackageInfo {
	t.Helper()
	pkg, err := delivery.NewPackageInfo("documents", "Signed contract, two envelopes", nil, delivery.SizeSmall, nil)
	require.NoError(t, err)
	return pkg
}

func testPoints(t *testing.T) (kernel.GeoPoint, kernel.GeoPoint) {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(-1.2630, 36.8063)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-1.2830, 36.7783)
	require.NoError(t, err)
	return pickup, dropoff
}

func newPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	pickup, dropoff := testPoints(t)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "RYD7K2M9QPLX", kernel.NewUUID(),
		pickup, dropoff, testPackage(t), delivery.PaymentCash, false, testNow)
	require.NoError(t, err)
	return d
}

func acceptedDelivery(t *testing.T) (*delivery.Delivery, kernel.UUID) {
	t.Helper()
	d := newPendingDelivery(t)
	riderID := kernel.NewUUID()
	require.NoError(t, d.Accept(riderID, testNow.Add(time.Minute)))
	return d, riderID
}

func deliveredDelivery(t *testing.T) (*delivery.Delivery, kernel.UUID) {
	t.Helper()
	d, riderID := acceptedDelivery(t)
	require.NoError(t, d.MarkPickedUp(testNow.Add(5*time.Minute)))
	require.NoError(t, d.MarkInTransit(testNow.Add(10*time.Minute)))
	_, err := d.MarkDelivered(testNow.Add(25 * time.Minute))
	require.NoError(t, err)
	return d, riderID
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create a pending delivery with derived distance and fare", func(t *testing.T) {
		d := newPendingDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.Equal(t, delivery.AssignmentAuto, d.AssignmentMode())
		assert.Equal(t, delivery.PaymentPending, d.PaymentStatus())
		assert.Nil(t, d.RiderID())
		assert.Nil(t, d.SelectionExpiresAt())
		assert.Equal(t, testNow, d.CreatedAt())
		assert.Empty(t, d.TrackingEvents())

		assert.Equal(t, 3.83, d.DistanceKm())
		assert.Equal(t, 176.60, d.Fare().TotalFare())
		assert.Equal(t, 150.11, d.Fare().RiderEarnings())
	})

	t.Run("should fail with zero-value customer id", func(t *testing.T) {
		pickup, dropoff := testPoints(t)
		var invalidCustomer kernel.UUID

		d, err := delivery.NewDelivery(
			kernel.NewUUID(), "RYD7K2M9QPLX", invalidCustomer,
			pickup, dropoff, testPackage(t), delivery.PaymentCash, false, testNow)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero-value pickup point", func(t *testing.T) {
		_, dropoff := testPoints(t)
		var invalidPickup kernel.GeoPoint

		d, err := delivery.NewDelivery(
			kernel.NewUUID(), "RYD7K2M9QPLX", kernel.NewUUID(),
			invalidPickup, dropoff, testPackage(t), delivery.PaymentCash, false, testNow)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "geo point must be created")
	})

	t.Run("should fail with malformed code", func(t *testing.T) {
		pickup, dropoff := testPoints(t)

		d, err := delivery.NewDelivery(
			kernel.NewUUID(), "ORD-12345", kernel.NewUUID(),
			pickup, dropoff, testPackage(t), delivery.PaymentCash, false, testNow)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "deliveryCode")
	})

	t.Run("should fail with unknown payment method", func(t *testing.T) {
		pickup, dropoff := testPoints(t)

		d, err := delivery.NewDelivery(
			kernel.NewUUID(), "RYD7K2M9QPLX", kernel.NewUUID(),
			pickup, dropoff, testPackage(t), delivery.PaymentMethodUnknown, false, testNow)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPoint kernel.GeoPoint

		d, err := delivery.NewDelivery(
			invalidID, "", kernel.NewUUID(),
			invalidPoint, invalidPoint, delivery.PackageInfo{}, delivery.PaymentMethodUnknown, false, testNow)

		require.Error(t, err)
		assert.Nil(t, d)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "deliveryCode")
		assert.Contains(t, err.Error(), "geo point must be created")
		assert.Contains(t, err.Error(), "package info must be created")
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("should fail for nil delivery", func(t *testing.T) {
		var d *delivery.Delivery

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
	})

	t.Run("should fail for struct literal", func(t *testing.T) {
		d := &delivery.Delivery{}

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, err)
	})
}

func TestDelivery_SelectPreferredRiders(t *testing.T) {
	riderA := kernel.NewUUID()
	riderB := kernel.NewUUID()

	t.Run("should restrict acceptance and open a 15 minute window", func(t *testing.T) {
		d := newPendingDelivery(t)

		err := d.SelectPreferredRiders([]kernel.UUID{riderA, riderB}, testNow)

		require.NoError(t, err)
		assert.Equal(t, delivery.AssignmentCustomerSelected, d.AssignmentMode())
		assert.Equal(t, 2, d.PreferredRiders().Len())
		require.NotNil(t, d.SelectionExpiresAt())
		assert.Equal(t, testNow.Add(15*time.Minute), *d.SelectionExpiresAt())
	})

	t.Run("should fail on a non-pending delivery", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		err := d.SelectPreferredRiders([]kernel.UUID{riderA}, testNow)

		require.ErrorIs(t, err, delivery.ErrNotPending)
	})

	t.Run("should fail with an empty list", func(t *testing.T) {
		d := newPendingDelivery(t)

		err := d.SelectPreferredRiders(nil, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with more than five riders", func(t *testing.T) {
		d := newPendingDelivery(t)
		ids := make([]kernel.UUID, 6)
		for i := range ids {
			ids[i] = kernel.NewUUID()
		}

		err := d.SelectPreferredRiders(ids, testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with duplicate riders", func(t *testing.T) {
		d := newPendingDelivery(t)

		err := d.SelectPreferredRiders([]kernel.UUID{riderA, riderA}, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate rider id")
	})
}

func TestDelivery_CanRiderAccept(t *testing.T) {
	riderA := kernel.NewUUID()
	riderB := kernel.NewUUID()

	t.Run("auto mode is open to any rider", func(t *testing.T) {
		d := newPendingDelivery(t)

		assert.True(t, d.CanRiderAccept(riderA, testNow))
		assert.True(t, d.CanRiderAccept(riderB, testNow))
	})

	t.Run("rejection is permanent", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.RejectByRider(riderA, "too far", testNow))

		assert.False(t, d.CanRiderAccept(riderA, testNow))
		assert.True(t, d.CanRiderAccept(riderB, testNow))
	})

	t.Run("open selection window admits only preferred riders", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{riderA}, testNow))

		inWindow := testNow.Add(5 * time.Minute)
		assert.True(t, d.CanRiderAccept(riderA, inWindow))
		assert.False(t, d.CanRiderAccept(riderB, inWindow))
	})

	t.Run("expired window reopens the delivery to everyone", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{riderA}, testNow))

		afterWindow := testNow.Add(15*time.Minute + time.Second)
		assert.True(t, d.CanRiderAccept(riderA, afterWindow))
		assert.True(t, d.CanRiderAccept(riderB, afterWindow))
		// stored mode is untouched; expiry is computed at read time
		assert.Equal(t, delivery.AssignmentCustomerSelected, d.AssignmentMode())
	})

	t.Run("the exact expiry instant closes the window", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{riderA}, testNow))

		assert.True(t, d.CanRiderAccept(riderB, testNow.Add(15*time.Minute)))
	})

	t.Run("a preferred rider who rejected stays ineligible", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{riderA, riderB}, testNow))
		require.NoError(t, d.RejectByRider(riderA, "", testNow))

		assert.False(t, d.CanRiderAccept(riderA, testNow.Add(time.Minute)))
		assert.True(t, d.CanRiderAccept(riderB, testNow.Add(time.Minute)))
	})
}

func TestDelivery_Accept(t *testing.T) {
	t.Run("should assign the rider and stamp acceptance", func(t *testing.T) {
		d := newPendingDelivery(t)
		riderID := kernel.NewUUID()
		acceptedAt := testNow.Add(2 * time.Minute)

		err := d.Accept(riderID, acceptedAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAccepted, d.Status())
		require.NotNil(t, d.RiderID())
		assert.True(t, d.RiderID().IsEqual(riderID))
		require.NotNil(t, d.AcceptedAt())
		assert.Equal(t, acceptedAt, *d.AcceptedAt())

		events := d.TrackingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, delivery.EventAccepted, events[0].Status())
	})

	t.Run("should fail once the delivery left pending", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		err := d.Accept(kernel.NewUUID(), testNow.Add(3*time.Minute))

		require.ErrorIs(t, err, delivery.ErrNotPending)
	})

	t.Run("should fail for a rider who rejected it", func(t *testing.T) {
		d := newPendingDelivery(t)
		riderID := kernel.NewUUID()
		require.NoError(t, d.RejectByRider(riderID, "", testNow))

		err := d.Accept(riderID, testNow.Add(time.Minute))

		require.ErrorIs(t, err, delivery.ErrRiderNotEligible)
	})

	t.Run("should fail for a non-preferred rider inside the window", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{kernel.NewUUID()}, testNow))

		err := d.Accept(kernel.NewUUID(), testNow.Add(time.Minute))

		require.ErrorIs(t, err, delivery.ErrRiderNotEligible)
	})

	t.Run("should allow any rider after the window expired", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{kernel.NewUUID()}, testNow))

		err := d.Accept(kernel.NewUUID(), testNow.Add(16*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAccepted, d.Status())
	})
}

func TestDelivery_RejectByRider(t *testing.T) {
	t.Run("should record the rejection with a tracking note", func(t *testing.T) {
		d := newPendingDelivery(t)
		riderID := kernel.NewUUID()

		err := d.RejectByRider(riderID, "bike is full", testNow)

		require.NoError(t, err)
		assert.True(t, d.RejectedRiders().Contains(riderID))
		assert.Equal(t, delivery.StatusPending, d.Status())

		events := d.TrackingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, delivery.EventRejected, events[0].Status())
		assert.Equal(t, "bike is full", events[0].Note())
	})

	t.Run("repeat rejection keeps a single set entry", func(t *testing.T) {
		d := newPendingDelivery(t)
		riderID := kernel.NewUUID()

		require.NoError(t, d.RejectByRider(riderID, "", testNow))
		require.NoError(t, d.RejectByRider(riderID, "", testNow.Add(time.Minute)))

		assert.Equal(t, 1, d.RejectedRiders().Len())
	})

	t.Run("exhausting the preferred set flips the mode to auto", func(t *testing.T) {
		d := newPendingDelivery(t)
		riderA := kernel.NewUUID()
		riderB := kernel.NewUUID()
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{riderA, riderB}, testNow))

		require.NoError(t, d.RejectByRider(riderA, "", testNow.Add(time.Minute)))
		assert.Equal(t, delivery.AssignmentCustomerSelected, d.AssignmentMode())

		require.NoError(t, d.RejectByRider(riderB, "", testNow.Add(2*time.Minute)))
		assert.Equal(t, delivery.AssignmentAuto, d.AssignmentMode())
		assert.Nil(t, d.SelectionExpiresAt())

		// anyone can take it now
		assert.True(t, d.CanRiderAccept(kernel.NewUUID(), testNow.Add(3*time.Minute)))
	})

	t.Run("outside rejections never flip the mode", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{kernel.NewUUID()}, testNow))

		require.NoError(t, d.RejectByRider(kernel.NewUUID(), "", testNow.Add(time.Minute)))

		assert.Equal(t, delivery.AssignmentCustomerSelected, d.AssignmentMode())
		assert.NotNil(t, d.SelectionExpiresAt())
	})

	t.Run("should fail once the delivery left pending", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		err := d.RejectByRider(kernel.NewUUID(), "", testNow.Add(3*time.Minute))

		require.ErrorIs(t, err, delivery.ErrNotPending)
	})
}

func TestDelivery_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path and credit the rider", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		require.NoError(t, d.MarkPickedUp(testNow.Add(5*time.Minute)))
		assert.Equal(t, delivery.StatusPickedUp, d.Status())
		require.NotNil(t, d.PickedUpAt())

		require.NoError(t, d.MarkInTransit(testNow.Add(10*time.Minute)))
		assert.Equal(t, delivery.StatusInTransit, d.Status())

		earnings, err := d.MarkDelivered(testNow.Add(25 * time.Minute))
		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDelivered, d.Status())
		assert.Equal(t, delivery.PaymentPaid, d.PaymentStatus())
		require.NotNil(t, d.DeliveredAt())
		assert.Equal(t, d.Fare().RiderEarnings(), earnings)
		assert.Equal(t, 150.11, earnings)

		statuses := make([]string, 0, 4)
		for _, e := range d.TrackingEvents() {
			statuses = append(statuses, e.Status())
		}
		assert.Equal(t, []string{
			delivery.EventAccepted,
			delivery.EventPickedUp,
			delivery.EventInTransit,
			delivery.EventDelivered,
		}, statuses)
	})

	t.Run("should reject skipping pickup", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		err := d.MarkInTransit(testNow.Add(5 * time.Minute))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusAccepted, d.Status())
	})

	t.Run("should reject delivering before transit", func(t *testing.T) {
		d, _ := acceptedDelivery(t)
		require.NoError(t, d.MarkPickedUp(testNow.Add(5*time.Minute)))

		_, err := d.MarkDelivered(testNow.Add(10 * time.Minute))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("should reject pickup on a pending delivery", func(t *testing.T) {
		d := newPendingDelivery(t)

		err := d.MarkPickedUp(testNow)

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("should cancel a pending delivery with a reason", func(t *testing.T) {
		d := newPendingDelivery(t)
		cancelledAt := testNow.Add(time.Minute)

		err := d.Cancel("customer changed plans", cancelledAt)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCancelled, d.Status())
		assert.Equal(t, "customer changed plans", d.CancellationReason())
		require.NotNil(t, d.CancelledAt())
		assert.Equal(t, cancelledAt, *d.CancelledAt())

		events := d.TrackingEvents()
		require.Len(t, events, 1)
		assert.Equal(t, delivery.EventCancelled, events[0].Status())
		assert.Equal(t, "customer changed plans", events[0].Note())
	})

	t.Run("should cancel mid-route", func(t *testing.T) {
		d, _ := acceptedDelivery(t)
		require.NoError(t, d.MarkPickedUp(testNow.Add(5*time.Minute)))

		err := d.Cancel("package damaged at pickup", testNow.Add(6*time.Minute))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("should require a reason", func(t *testing.T) {
		d := newPendingDelivery(t)

		err := d.Cancel("", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("should fail on a delivered delivery", func(t *testing.T) {
		d, _ := deliveredDelivery(t)

		err := d.Cancel("too late", testNow.Add(time.Hour))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("should fail on an already cancelled delivery", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.Cancel("first reason", testNow))

		err := d.Cancel("second reason", testNow.Add(time.Minute))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, "first reason", d.CancellationReason())
	})
}

func TestDelivery_Ratings(t *testing.T) {
	t.Run("should record the customer rating of the rider once", func(t *testing.T) {
		d, _ := deliveredDelivery(t)

		rating, err := d.RateRider(5, "Fast and careful")

		require.NoError(t, err)
		assert.Equal(t, 5, rating.Value())
		assert.Equal(t, "Fast and careful", rating.Review())
		require.NotNil(t, d.CustomerRating())

		_, err = d.RateRider(4, "second thoughts")
		require.ErrorIs(t, err, delivery.ErrAlreadyRated)
		assert.Equal(t, 5, d.CustomerRating().Value())
	})

	t.Run("should record the rider rating of the customer independently", func(t *testing.T) {
		d, _ := deliveredDelivery(t)

		_, err := d.RateCustomer(4, "")
		require.NoError(t, err)

		_, err = d.RateRider(5, "")
		require.NoError(t, err)

		_, err = d.RateCustomer(3, "")
		require.ErrorIs(t, err, delivery.ErrAlreadyRated)
	})

	t.Run("should fail before the delivery completes", func(t *testing.T) {
		d, _ := acceptedDelivery(t)

		_, err := d.RateRider(5, "")
		require.ErrorIs(t, err, delivery.ErrNotDelivered)

		_, err = d.RateCustomer(5, "")
		require.ErrorIs(t, err, delivery.ErrNotDelivered)
	})

	t.Run("should fail on a cancelled delivery", func(t *testing.T) {
		d := newPendingDelivery(t)
		require.NoError(t, d.Cancel("no show", testNow))

		_, err := d.RateRider(1, "")

		require.ErrorIs(t, err, delivery.ErrNotDelivered)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		d, _ := deliveredDelivery(t)

		_, err := d.RateRider(0, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = d.RateRider(6, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		// failed attempts do not consume the write-once slot
		_, err = d.RateRider(3, "")
		require.NoError(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	validSnapshot := func(t *testing.T) delivery.Snapshot {
		t.Helper()
		pickup, dropoff := testPoints(t)
		fare, err := delivery.CalculateFare(3.83)
		require.NoError(t, err)

		return delivery.Snapshot{
			ID:            kernel.NewUUID(),
			Code:          "RYDA1B2C3D4E",
			CustomerID:    kernel.NewUUID(),
			Pickup:        pickup,
			Dropoff:       dropoff,
			DistanceKm:    3.83,
			Package:       testPackage(t),
			Fare:          fare,
			PaymentMethod: delivery.PaymentCash,
			PaymentStatus: delivery.PaymentPending,

			AssignmentMode: delivery.AssignmentAuto,
			Status:         delivery.StatusPending,
			CreatedAt:      testNow,
		}
	}

	t.Run("should rebuild a pending delivery", func(t *testing.T) {
		s := validSnapshot(t)

		d, err := delivery.RestoreDelivery(s)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(s.ID))
		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.Empty(t, d.TrackingEvents())
	})

	t.Run("restored delivery accepts state changes", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(validSnapshot(t))
		require.NoError(t, err)

		require.NoError(t, d.Accept(kernel.NewUUID(), testNow.Add(time.Minute)))
		assert.Equal(t, delivery.StatusAccepted, d.Status())
	})

	t.Run("should reject accepted state without a rider", func(t *testing.T) {
		s := validSnapshot(t)
		s.Status = delivery.StatusAccepted
		acceptedAt := testNow.Add(time.Minute)
		s.AcceptedAt = &acceptedAt

		_, err := delivery.RestoreDelivery(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires an assigned rider")
	})

	t.Run("should reject pending state with a rider", func(t *testing.T) {
		s := validSnapshot(t)
		riderID := kernel.NewUUID()
		s.RiderID = &riderID

		_, err := delivery.RestoreDelivery(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot have an assigned rider")
	})

	t.Run("should reject an assigned rider present in the rejection set", func(t *testing.T) {
		s := validSnapshot(t)
		riderID := kernel.NewUUID()
		rejected, err := delivery.NewRiderSet(riderID)
		require.NoError(t, err)
		acceptedAt := testNow.Add(time.Minute)

		s.Status = delivery.StatusAccepted
		s.RiderID = &riderID
		s.AcceptedAt = &acceptedAt
		s.RejectedRiders = rejected

		_, err = delivery.RestoreDelivery(s)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "previously rejected this delivery")
	})

	t.Run("should reject unparsed enum zero values", func(t *testing.T) {
		s := validSnapshot(t)
		s.Status = delivery.StatusUnknown

		_, err := delivery.RestoreDelivery(s)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// TestDelivery_PreferredRiderScenario follows one delivery from creation
// through a customer-selected assignment to completion.
func TestDelivery_PreferredRiderScenario(t *testing.T) {
	pickup, err := kernel.NewGeoPoint(-1.2630, 36.8063)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-1.2630, 36.8315)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "RYD9XQ4TP2WM", kernel.NewUUID(),
		pickup, dropoff, testPackage(t), delivery.PaymentMobileMoney, true, testNow)
	require.NoError(t, err)

	// a short eastward hop: 2.8 km
	assert.Equal(t, 2.8, d.DistanceKm())
	assert.Equal(t, 156.00, d.Fare().TotalFare())
	assert.Equal(t, 23.40, d.Fare().PlatformFee())
	assert.Equal(t, 132.60, d.Fare().RiderEarnings())

	chosen := kernel.NewUUID()
	outsider := kernel.NewUUID()
	require.NoError(t, d.SelectPreferredRiders([]kernel.UUID{chosen}, testNow))

	require.ErrorIs(t, d.Accept(outsider, testNow.Add(2*time.Minute)), delivery.ErrRiderNotEligible)
	require.NoError(t, d.Accept(chosen, testNow.Add(3*time.Minute)))

	require.NoError(t, d.MarkPickedUp(testNow.Add(8*time.Minute)))
	require.NoError(t, d.MarkInTransit(testNow.Add(9*time.Minute)))

	earnings, err := d.MarkDelivered(testNow.Add(20 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 132.60, earnings)
	assert.Equal(t, delivery.PaymentPaid, d.PaymentStatus())
}
