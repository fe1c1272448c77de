package commands

import (
	"context"

	"mtaani/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler registers courier profiles. New riders start
// offline and unverified; verification is flipped by back-office tooling.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates the handler.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new rider profile.
func (h *CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := rider.NewRider(cmd.RiderID(), cmd.Name(), cmd.VehicleType())
	if err != nil {
		return err
	}

	if err = uow.RiderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
