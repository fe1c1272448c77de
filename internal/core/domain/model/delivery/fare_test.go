package delivery_test

import (
	"testing"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFare(t *testing.T) {
	t.Run("should compute the breakdown for a 2.8 km trip", func(t *testing.T) {
		fare, err := delivery.CalculateFare(2.8)

		require.NoError(t, err)
		require.NoError(t, fare.Validate())
		assert.Equal(t, 100.00, fare.BaseFare())
		assert.Equal(t, 56.00, fare.DistanceFare())
		assert.Equal(t, 156.00, fare.TotalFare())
		assert.Equal(t, 23.40, fare.PlatformFee())
		assert.Equal(t, 132.60, fare.RiderEarnings())
	})

	t.Run("should charge only the base fare for zero distance", func(t *testing.T) {
		fare, err := delivery.CalculateFare(0)

		require.NoError(t, err)
		assert.Equal(t, 100.00, fare.TotalFare())
		assert.Equal(t, 15.00, fare.PlatformFee())
		assert.Equal(t, 85.00, fare.RiderEarnings())
	})

	t.Run("should round all amounts to two decimals", func(t *testing.T) {
		fare, err := delivery.CalculateFare(3.83)

		require.NoError(t, err)
		assert.Equal(t, 76.60, fare.DistanceFare())
		assert.Equal(t, 176.60, fare.TotalFare())
		assert.Equal(t, 26.49, fare.PlatformFee())
		assert.Equal(t, 150.11, fare.RiderEarnings())
	})

	t.Run("should keep earnings and fee summing to the total", func(t *testing.T) {
		for _, km := range []float64{0, 0.5, 1, 2.8, 3.83, 10, 47.25} {
			fare, err := delivery.CalculateFare(km)

			require.NoError(t, err)
			assert.InDelta(t, fare.TotalFare(), fare.PlatformFee()+fare.RiderEarnings(), 0.011)
		}
	})

	t.Run("should reject negative distance", func(t *testing.T) {
		_, err := delivery.CalculateFare(-1.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "distance")
	})
}

func TestRestoreFare(t *testing.T) {
	t.Run("should rebuild persisted amounts without recomputation", func(t *testing.T) {
		fare := delivery.RestoreFare(100.00, 56.00, 156.00, 23.40, 132.60)

		require.NoError(t, fare.Validate())
		assert.Equal(t, 156.00, fare.TotalFare())
		assert.Equal(t, 132.60, fare.RiderEarnings())
	})
}

func TestFare_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var fare delivery.Fare

		err := fare.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fare must be created")
	})
}
