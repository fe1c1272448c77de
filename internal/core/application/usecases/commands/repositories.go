// Package commands contains the write-side operations of the engine.
// Every command follows the same shape: a validated command object, a
// handler owning the transaction, and domain aggregates doing the actual
// state changes.
package commands

import (
	"context"
	"errors"

	"mtaani/internal/core/ports"
)

var (
	// ErrDeliveryNoLongerAvailable is returned when an accept attempt lost
	// the race: the delivery left pending between read and write. The
	// losing rider should refresh their feed.
	ErrDeliveryNoLongerAvailable = errors.New("delivery is no longer available")

	// ErrUnauthorized is returned when the acting user is neither the
	// delivery's customer nor its assigned rider for the attempted action.
	ErrUnauthorized = errors.New("actor is not permitted to perform this action")
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest interface they need.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides the delivery repository bound to the
	// open transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// RiderRepoFactory provides the rider repository bound to the open
	// transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// UoW manages transactions spanning both aggregates. The accept race
	// and the delivered-plus-earnings credit need this combined form.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		RiderRepoFactory
	}

	// UoWFactory creates combined unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
