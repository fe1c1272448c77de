// Package kafka implements the event publisher port on segmentio/kafka-go.
// One topic carries every delivery lifecycle event; the delivery id is the
// message key so a consumer sees each delivery's events in order.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/pkg/clock"

	"github.com/segmentio/kafka-go"
)

const publishTimeout = 2 * time.Second

// deliveryEvent is the wire payload of one lifecycle event.
type deliveryEvent struct {
	Event      string  `json:"event"`
	DeliveryID string  `json:"delivery_id"`
	Code       string  `json:"code"`
	Status     string  `json:"status"`
	RiderID    *string `json:"rider_id,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

// Publisher writes delivery lifecycle events to a kafka topic.
type Publisher struct {
	writer *kafka.Writer
	clock  clock.Clock
}

// NewPublisher creates a publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string, clk clock.Clock) *Publisher {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})

	return &Publisher{writer: writer, clock: clk}
}

// PublishDeliveryEvent emits one lifecycle event keyed by delivery id.
func (p *Publisher) PublishDeliveryEvent(
	ctx context.Context,
	aggregate *delivery.Delivery,
	event string,
) error {
	payload := deliveryEvent{
		Event:      event,
		DeliveryID: aggregate.ID().String(),
		Code:       aggregate.Code(),
		Status:     aggregate.Status().String(),
		OccurredAt: p.clock.Now().UTC().Format(time.RFC3339),
	}
	if riderID := aggregate.RiderID(); riderID != nil {
		label := riderID.String()
		payload.RiderID = &label
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(aggregate.ID().String()),
		Value: raw,
	})
}

// Close flushes and releases the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
