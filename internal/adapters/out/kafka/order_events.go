// Package kafka publishes order lifecycle events to a Kafka topic. One
// event kind covers both creation and status changes; consumers read the
// status field to tell them apart.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire form of an order change. Monetary figures
// travel as decimal strings so consumers never touch binary floating point.
type orderChangedEvent struct {
	OrderID      string     `json:"order_id"`
	OrderNumber  string     `json:"order_number"`
	CustomerID   string     `json:"customer_id"`
	RestaurantID string     `json:"restaurant_id"`
	Status       string     `json:"status"`
	Total        string     `json:"total"`
	CreatedAt    time.Time  `json:"created_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
}

// OrderChangedProducer publishes order change events via kafka-go. Messages
// are keyed by order ID, so all events of one order land on the same
// partition and consumers see its status changes in order.
type OrderChangedProducer struct {
	writer *kafka.Writer
}

// NewOrderChangedProducer creates a producer writing to the given topic.
func NewOrderChangedProducer(host, topic string) *OrderChangedProducer {
	return &OrderChangedProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(host),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderChanged emits an event describing the order's current state.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:      aggregate.ID().String(),
		OrderNumber:  aggregate.OrderNumber(),
		CustomerID:   aggregate.CustomerID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total().String(),
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}

// NoopOrderChangedProducer satisfies the publisher port when no broker is
// configured, which keeps local runs broker-free.
type NoopOrderChangedProducer struct{}

// PublishOrderChanged discards the event.
func (NoopOrderChangedProducer) PublishOrderChanged(context.Context, *order.Order) error {
	return nil
}
