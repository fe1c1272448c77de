package rider_test

import (
	"testing"
	"time"

	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/core/domain/model/rider"
	"mtaani/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Wanjiku M.", rider.VehicleMotorcycle)
	require.NoError(t, err)
	return r
}

func TestNewRider(t *testing.T) {
	t.Run("should start offline with fresh defaults", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.Validate())
		assert.False(t, r.IsOnline())
		assert.False(t, r.IsVerified())
		assert.Nil(t, r.Location())
		assert.Equal(t, rider.DefaultSearchRadiusKm, r.SearchRadiusKm())
		assert.Equal(t, 5.0, r.RatingAvg())
		assert.Equal(t, 0, r.RatingCount())
		assert.Equal(t, 0.0, r.EarningsToday())
		assert.Equal(t, 0.0, r.EarningsTotal())
	})

	t.Run("should fail with zero-value id", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := rider.NewRider(invalidID, "Wanjiku M.", rider.VehicleBicycle)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "", rider.VehicleBicycle)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown vehicle type", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), "Wanjiku M.", rider.VehicleUnknown)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "vehicleType")
	})
}

func TestRider_Validate(t *testing.T) {
	t.Run("should fail for nil rider", func(t *testing.T) {
		var r *rider.Rider

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, rider.ErrRiderIsNotConstructed, err)
	})

	t.Run("should fail for struct literal", func(t *testing.T) {
		r := &rider.Rider{}

		err := r.Validate()

		require.Error(t, err)
		assert.Equal(t, rider.ErrRiderIsNotConstructed, err)
	})
}

func TestRider_Discoverability(t *testing.T) {
	point, err := kernel.NewGeoPoint(-1.2921, 36.8219)
	require.NoError(t, err)

	t.Run("needs online, verified, and a location", func(t *testing.T) {
		r := newRider(t)
		assert.False(t, r.IsDiscoverable())

		r.GoOnline()
		assert.False(t, r.IsDiscoverable())

		r.MarkVerified()
		assert.False(t, r.IsDiscoverable())

		require.NoError(t, r.ReportLocation(point, testNow))
		assert.True(t, r.IsDiscoverable())

		r.GoOffline()
		assert.False(t, r.IsDiscoverable())
	})

	t.Run("location report stamps the fix time", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.ReportLocation(point, testNow))

		require.NotNil(t, r.Location())
		equal, err := r.Location().IsEqual(point)
		require.NoError(t, err)
		assert.True(t, equal)
		require.NotNil(t, r.LocationSetAt())
		assert.Equal(t, testNow, *r.LocationSetAt())
	})

	t.Run("rejects a zero-value location", func(t *testing.T) {
		r := newRider(t)
		var invalid kernel.GeoPoint

		err := r.ReportLocation(invalid, testNow)

		require.Error(t, err)
		assert.Nil(t, r.Location())
	})
}

func TestRider_SetSearchRadius(t *testing.T) {
	t.Run("should accept values within bounds", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.SetSearchRadius(25))
		assert.Equal(t, 25.0, r.SearchRadiusKm())

		require.NoError(t, r.SetSearchRadius(rider.MinSearchRadiusKm))
		require.NoError(t, r.SetSearchRadius(rider.MaxSearchRadiusKm))
	})

	t.Run("should reject values outside bounds", func(t *testing.T) {
		r := newRider(t)

		require.ErrorIs(t, r.SetSearchRadius(0.5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, r.SetSearchRadius(51), errs.ErrValueIsOutOfRange)
		assert.Equal(t, rider.DefaultSearchRadiusKm, r.SearchRadiusKm())
	})
}

func TestRider_DistanceKmTo(t *testing.T) {
	pickup, err := kernel.NewGeoPoint(-1.2630, 36.8063)
	require.NoError(t, err)

	t.Run("should measure from the last reported position", func(t *testing.T) {
		r := newRider(t)
		position, err := kernel.NewGeoPoint(-1.2830, 36.7783)
		require.NoError(t, err)
		require.NoError(t, r.ReportLocation(position, testNow))

		km, err := r.DistanceKmTo(pickup)

		require.NoError(t, err)
		assert.InDelta(t, 3.83, km, 0.01)
	})

	t.Run("should fail without a reported position", func(t *testing.T) {
		r := newRider(t)

		_, err := r.DistanceKmTo(pickup)

		require.ErrorIs(t, err, rider.ErrLocationUnknown)
	})
}

func TestRider_RecordRating(t *testing.T) {
	t.Run("first rating replaces the initial 5.00", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.RecordRating(3))

		assert.Equal(t, 3.0, r.RatingAvg())
		assert.Equal(t, 1, r.RatingCount())
	})

	t.Run("running average rounds to two decimals", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.RecordRating(5))
		require.NoError(t, r.RecordRating(4))
		require.NoError(t, r.RecordRating(4))

		// (5+4+4)/3 = 4.333...
		assert.Equal(t, 4.33, r.RatingAvg())
		assert.Equal(t, 3, r.RatingCount())
	})

	t.Run("average folds in stored values, not raw history", func(t *testing.T) {
		r, err := rider.RestoreRider(rider.Snapshot{
			ID:             kernel.NewUUID(),
			Name:           "Wanjiku M.",
			VehicleType:    rider.VehicleMotorcycle,
			SearchRadiusKm: 10,
			RatingAvg:      4.50,
			RatingCount:    2,
		})
		require.NoError(t, err)

		require.NoError(t, r.RecordRating(5))

		// (4.50*2 + 5)/3 = 4.666...
		assert.Equal(t, 4.67, r.RatingAvg())
		assert.Equal(t, 3, r.RatingCount())
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		r := newRider(t)

		require.ErrorIs(t, r.RecordRating(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, r.RecordRating(6), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, r.RatingCount())
	})
}

func TestRider_Earnings(t *testing.T) {
	t.Run("credits both daily and lifetime counters", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.CreditEarnings(132.60))
		require.NoError(t, r.CreditEarnings(85.00))

		assert.Equal(t, 217.60, r.EarningsToday())
		assert.Equal(t, 217.60, r.EarningsTotal())
	})

	t.Run("daily reset keeps lifetime intact", func(t *testing.T) {
		r := newRider(t)
		require.NoError(t, r.CreditEarnings(150.11))

		r.ResetDailyEarnings()

		assert.Equal(t, 0.0, r.EarningsToday())
		assert.Equal(t, 150.11, r.EarningsTotal())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		r := newRider(t)

		err := r.CreditEarnings(-10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 0.0, r.EarningsTotal())
	})

	t.Run("allows a zero credit", func(t *testing.T) {
		r := newRider(t)

		require.NoError(t, r.CreditEarnings(0))
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("should rebuild a full profile", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-1.2921, 36.8219)
		require.NoError(t, err)

		r, err := rider.RestoreRider(rider.Snapshot{
			ID:             kernel.NewUUID(),
			Name:           "Otieno K.",
			VehicleType:    rider.VehicleBicycle,
			Location:       &point,
			LocationSetAt:  &testNow,
			Online:         true,
			Verified:       true,
			SearchRadiusKm: 15,
			RatingAvg:      4.80,
			RatingCount:    12,
			EarningsToday:  450.00,
			EarningsTotal:  18250.75,
		})

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsDiscoverable())
		assert.Equal(t, 4.80, r.RatingAvg())
		assert.Equal(t, 18250.75, r.EarningsTotal())
	})

	t.Run("should reject an out-of-bounds radius", func(t *testing.T) {
		_, err := rider.RestoreRider(rider.Snapshot{
			ID:             kernel.NewUUID(),
			Name:           "Otieno K.",
			VehicleType:    rider.VehicleBicycle,
			SearchRadiusKm: 0,
		})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a negative rating count", func(t *testing.T) {
		_, err := rider.RestoreRider(rider.Snapshot{
			ID:             kernel.NewUUID(),
			Name:           "Otieno K.",
			VehicleType:    rider.VehicleBicycle,
			SearchRadiusKm: 10,
			RatingCount:    -1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
