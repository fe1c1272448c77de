package queries_test

import (
	"context"
	"testing"

	"mtaani/internal/core/application/usecases/queries"
	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"
	"mtaani/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeliveryQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the full detail view", func(t *testing.T) {
		pickup := mustGeoPoint(t, -1.2630, 36.8063)
		pending := pendingDelivery(t, "RYD7K2M9QPLX", pickup)

		deliveryRepo := new(MockDeliveryReader)
		deliveryRepo.On("GetByCode", ctx, "RYD7K2M9QPLX").Return(pending, nil).Once()

		handler, err := queries.NewGetDeliveryQueryHandler(deliveryRepo)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryQuery("RYD7K2M9QPLX")
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, pending.ID(), result.ID)
		assert.Equal(t, "RYD7K2M9QPLX", result.Code)
		assert.Equal(t, delivery.StatusPending.String(), result.Status)
		assert.Equal(t, pending.CustomerID(), result.CustomerID)
		assert.Nil(t, result.RiderID)
		assert.Equal(t, pickup, result.Pickup)
		assert.Equal(t, pending.DistanceKm(), result.DistanceKm)
		assert.Equal(t, pending.Fare().TotalFare(), result.TotalFare)
		assert.Equal(t, pending.Fare().PlatformFee(), result.PlatformFee)
		assert.Equal(t, pending.Fare().RiderEarnings(), result.RiderEarnings)
		assert.Equal(t, delivery.PaymentCash.String(), result.PaymentMethod)
		assert.Equal(t, delivery.AssignmentAuto.String(), result.AssignmentMode)
		assert.Nil(t, result.SelectionExpiresAt)
		deliveryRepo.AssertExpectations(t)
	})

	t.Run("should surface the assigned rider after accept", func(t *testing.T) {
		pending := pendingDelivery(t, "RYDACCEPT001", mustGeoPoint(t, -1.2630, 36.8063))
		riderID := kernel.NewUUID()
		require.NoError(t, pending.Accept(riderID, queryNow))

		deliveryRepo := new(MockDeliveryReader)
		deliveryRepo.On("GetByCode", ctx, "RYDACCEPT001").Return(pending, nil).Once()

		handler, err := queries.NewGetDeliveryQueryHandler(deliveryRepo)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryQuery("RYDACCEPT001")
		require.NoError(t, err)

		result, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusAccepted.String(), result.Status)
		require.NotNil(t, result.RiderID)
		assert.Equal(t, riderID, *result.RiderID)
		require.NotNil(t, result.AcceptedAt)
		assert.Equal(t, queryNow, *result.AcceptedAt)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		deliveryRepo := new(MockDeliveryReader)
		deliveryRepo.On("GetByCode", ctx, "RYDMISSING01").
			Return(nil, errs.NewObjectNotFoundError("delivery", "RYDMISSING01")).Once()

		handler, err := queries.NewGetDeliveryQueryHandler(deliveryRepo)
		require.NoError(t, err)

		query, err := queries.NewGetDeliveryQuery("RYDMISSING01")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewGetDeliveryQuery(t *testing.T) {
	t.Run("should reject an empty code", func(t *testing.T) {
		_, err := queries.NewGetDeliveryQuery("")

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.GetDeliveryQuery

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrGetDeliveryQueryIsNotConstructed)
	})
}
