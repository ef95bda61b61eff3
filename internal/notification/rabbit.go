package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/azaria-morake/slotflow/internal/events"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// RabbitNotifier publishes booking events to a topic exchange. Publishing
// is fire-and-forget: failures are logged and never surface to the caller.
type RabbitNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewRabbitNotifier(url, exchange string, log logger.Logger) (*RabbitNotifier, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, booking notifications disabled")
		return &RabbitNotifier{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitNotifier{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (n *RabbitNotifier) BookingCreated(ctx context.Context, ev events.BookingCreated) {
	n.publish(ctx, events.RKBookingCreated, ev)
}

func (n *RabbitNotifier) BookingCancelled(ctx context.Context, ev events.BookingCancelled) {
	n.publish(ctx, events.RKBookingCancelled, ev)
}

func (n *RabbitNotifier) publish(ctx context.Context, key string, v any) {
	if n.ch == nil {
		n.logger.Debug("booking event skipped (publisher disabled)",
			logger.String("key", key),
		)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		n.logger.Error("failed to marshal booking event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return
	}

	err = n.ch.PublishWithContext(ctx, n.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		n.logger.Error("failed to publish booking event",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (n *RabbitNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
