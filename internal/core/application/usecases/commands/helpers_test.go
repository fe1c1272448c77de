package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"
	"mtaani/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() clock.Clock {
	return clock.NewFixed(handlerNow)
}

// pendingFixture builds a pending delivery owned by a known customer.
func pendingFixture(t *testing.T) (*delivery.Delivery, kernel.UUID) {
	t.Helper()

	customerID := kernel.NewUUID()
	pickup, err := kernel.NewGeoPoint(-1.2630, 36.8063)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-1.2630, 36.8315)
	require.NoError(t, err)
	pkg, err := delivery.NewPackageInfo("documents", "Signed contract", nil, delivery.SizeSmall, nil)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "RYD7K2M9QPLX", customerID,
		pickup, dropoff, pkg, delivery.PaymentCash, false, handlerNow.Add(-time.Hour))
	require.NoError(t, err)
	return d, customerID
}

// activeFixture builds a delivery accepted by a known rider.
func activeFixture(t *testing.T) (*delivery.Delivery, kernel.UUID, kernel.UUID) {
	t.Helper()

	d, customerID := pendingFixture(t)
	riderID := kernel.NewUUID()
	require.NoError(t, d.Accept(riderID, handlerNow.Add(-30*time.Minute)))
	return d, customerID, riderID
}

// deliveredFixture builds a completed delivery.
func deliveredFixture(t *testing.T) (*delivery.Delivery, kernel.UUID, kernel.UUID) {
	t.Helper()

	d, customerID, riderID := activeFixture(t)
	require.NoError(t, d.MarkPickedUp(handlerNow.Add(-20*time.Minute)))
	require.NoError(t, d.MarkInTransit(handlerNow.Add(-15*time.Minute)))
	_, err := d.MarkDelivered(handlerNow.Add(-5 * time.Minute))
	require.NoError(t, err)
	return d, customerID, riderID
}

// verifiedRider builds a verified rider with the given id.
func verifiedRider(t *testing.T, id kernel.UUID) *rider.Rider {
	t.Helper()

	r, err := rider.RestoreRider(rider.Snapshot{
		ID:             id,
		Name:           "Wanjiku M.",
		VehicleType:    rider.VehicleMotorcycle,
		Online:         true,
		Verified:       true,
		SearchRadiusKm: rider.DefaultSearchRadiusKm,
		RatingAvg:      rider.InitialRating,
	})
	require.NoError(t, err)
	return r
}
