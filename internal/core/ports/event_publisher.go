package ports

import (
	"context"

	"mtaani/internal/core/domain/model/delivery"
)

// EventPublisher pushes delivery lifecycle changes onto the message bus for
// downstream consumers (notifications, analytics). Publishing happens after
// commit; a publish failure is logged, never rolled into the transaction.
type EventPublisher interface {
	// PublishDeliveryEvent emits one lifecycle event for the delivery.
	// event is one of the delivery tracking-event labels.
	PublishDeliveryEvent(ctx context.Context, aggregate *delivery.Delivery, event string) error

	// Close flushes and releases the underlying producer.
	Close() error
}
