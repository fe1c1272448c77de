package commands_test

import (
	"testing"

	"mtaani/internal/core/application/usecases/commands"
	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateDeliveryCommandHandler_Handle_CustomerRatesRider(t *testing.T) {
	ctx := t.Context()
	done, customerID, riderID := deliveredFixture(t)
	rated := verifiedRider(t, riderID)

	cmd, err := commands.NewRateDeliveryCommand(done.ID(), customerID, 4, "quick delivery")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, done.ID()).Return(done, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, riderID).Return(rated, nil).Once(),
		riderRepo.On("Update", ctx, rated).Return(nil).Once(),
		deliveryRepo.On("Update", ctx, done).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, done.CustomerRating())
	assert.Equal(t, 4, done.CustomerRating().Value())
	assert.Equal(t, "quick delivery", done.CustomerRating().Review())

	// first real rating replaces the initial 5.00
	assert.Equal(t, 4.0, rated.RatingAvg())
	assert.Equal(t, 1, rated.RatingCount())

	deliveryRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
}

func TestRateDeliveryCommandHandler_Handle_RiderRatesCustomer(t *testing.T) {
	ctx := t.Context()
	done, _, riderID := deliveredFixture(t)

	cmd, err := commands.NewRateDeliveryCommand(done.ID(), riderID, 5, "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, done.ID()).Return(done, nil).Once(),
		deliveryRepo.On("Update", ctx, done).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, done.RiderRating())
	assert.Equal(t, 5, done.RiderRating().Value())
	assert.Nil(t, done.CustomerRating())
}

func TestRateDeliveryCommandHandler_Handle_Outsider(t *testing.T) {
	ctx := t.Context()
	done, _, _ := deliveredFixture(t)

	cmd, err := commands.NewRateDeliveryCommand(done.ID(), kernel.NewUUID(), 1, "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, done.ID()).Return(done, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUnauthorized)
}

func TestRateDeliveryCommandHandler_Handle_AlreadyRated(t *testing.T) {
	ctx := t.Context()
	done, customerID, _ := deliveredFixture(t)
	_, err := done.RateRider(5, "first")
	require.NoError(t, err)

	cmd, err := commands.NewRateDeliveryCommand(done.ID(), customerID, 2, "second")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, done.ID()).Return(done, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrAlreadyRated)
	assert.Equal(t, 5, done.CustomerRating().Value())
	riderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewRateDeliveryCommand_Validation(t *testing.T) {
	t.Run("should reject scores outside 1..5", func(t *testing.T) {
		for _, v := range []int{0, -1, 6, 100} {
			_, err := commands.NewRateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), v, "")
			require.Error(t, err, v)
		}
	})

	t.Run("should accept boundary scores", func(t *testing.T) {
		for _, v := range []int{1, 5} {
			_, err := commands.NewRateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), v, "")
			require.NoError(t, err, v)
		}
	})
}
