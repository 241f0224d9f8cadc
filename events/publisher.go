// Package events streams order lifecycle events to Kafka for downstream
// analytics. Publishing is best-effort: callers log and continue on error.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Azimiwizard/App-1/entity"
)

type OrderEvent struct {
	Type       string             `json:"type"`
	OrderID    uint               `json:"orderId"`
	UserID     uint               `json:"userId,omitempty"`
	TotalCents int64              `json:"totalCents,omitempty"`
	Status     entity.OrderStatus `json:"status,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns nil when no broker is configured; a nil Publisher
// is valid and drops all events.
func NewPublisher(broker, topic string) *Publisher {
	if broker == "" {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) OrderCreated(ctx context.Context, orderID, userID uint, totalCents int64) error {
	return p.publish(ctx, OrderEvent{
		Type: "order_created", OrderID: orderID, UserID: userID,
		TotalCents: totalCents, Timestamp: time.Now(),
	})
}

func (p *Publisher) StatusChanged(ctx context.Context, orderID uint, status entity.OrderStatus) error {
	return p.publish(ctx, OrderEvent{
		Type: "status_changed", OrderID: orderID, Status: status, Timestamp: time.Now(),
	})
}

func (p *Publisher) publish(ctx context.Context, ev OrderEvent) error {
	if p == nil {
		return nil
	}
	payload, _ := json.Marshal(ev)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.OrderID), 10)),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
