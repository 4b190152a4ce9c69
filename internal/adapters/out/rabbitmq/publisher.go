// Package rabbitmq publishes order lifecycle events to a RabbitMQ topic
// exchange. Downstream consumers (notifications, analytics) bind their own
// queues; this core only produces.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"

	amqp "github.com/streadway/amqp"
)

const (
	exchangeName = "orders"

	routingKeyOrderCreated  = "order.created"
	routingKeyStatusChanged = "order.status_changed"
)

// orderEvent is the wire payload for order lifecycle events.
type orderEvent struct {
	Code        string  `json:"code"`
	Status      string  `json:"status"`
	Subtotal    int64   `json:"subtotal"`
	DeliveryFee int64   `json:"deliveryFee"`
	Total       int64   `json:"total"`
	PaymentMode string  `json:"paymentMode"`
	ShopID      *string `json:"shopId,omitempty"`
	Agent       string  `json:"deliveryAgent,omitempty"`
	OccurredAt  string  `json:"occurredAt"`
}

// Publisher implements OrderEventPublisher on a RabbitMQ topic exchange.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher connects to RabbitMQ and declares the orders exchange.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s exchange: %w", exchangeName, err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

// PublishOrderCreated announces a freshly checked out order.
func (p *Publisher) PublishOrderCreated(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, routingKeyOrderCreated, aggregate)
}

// PublishOrderStatusChanged announces a status transition on an order.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, routingKeyStatusChanged, aggregate)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	event := orderEvent{
		Code:        aggregate.Code(),
		Status:      aggregate.Status().String(),
		Subtotal:    aggregate.Totals().Subtotal,
		DeliveryFee: aggregate.Totals().DeliveryFee,
		Total:       aggregate.Totals().Total,
		PaymentMode: aggregate.PaymentMethod().Mode(),
		Agent:       aggregate.DeliveryAgent(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if shopID := aggregate.ShopID(); shopID != nil {
		id := shopID.String()
		event.ShopID = &id
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.channel.Publish(
		exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	return nil
}
