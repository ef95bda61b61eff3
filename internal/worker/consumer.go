package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azaria-morake/slotflow/internal/events"
	"github.com/azaria-morake/slotflow/internal/notification"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// errBadPayload marks deliveries that can never succeed; Run drops them
// instead of requeueing, so one poisoned message cannot loop forever.
var errBadPayload = errors.New("malformed payload")

type Config struct {
	RabbitURL string
	Exchange  string
	Queue     string
	Binding   string
	Prefetch  int
}

// Consumer drains booking events from the queue and turns them into mail
// for the learner and the instructor.
type Consumer struct {
	cfg    Config
	mailer *notification.Mailer
	logger logger.Logger

	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg Config, mailer *notification.Mailer, log logger.Logger) *Consumer {
	return &Consumer{cfg: cfg, mailer: mailer, logger: log}
}

func (c *Consumer) Connect() error {
	conn, err := amqp.Dial(c.cfg.RabbitURL)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, c.cfg.Binding, c.cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("bind queue: %w", err)
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("set qos: %w", err)
	}

	c.conn = conn
	c.ch = ch
	return nil
}

func (c *Consumer) Close() {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.cfg.Queue, "slotflow-notifier", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	c.logger.Info("notification consumer started",
		logger.String("queue", c.cfg.Queue),
		logger.String("binding", c.cfg.Binding),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(d); err != nil {
				if errors.Is(err, errBadPayload) {
					c.logger.Error("dropping malformed booking event",
						logger.String("key", d.RoutingKey),
						logger.String("error", err.Error()),
					)
					_ = d.Nack(false, false)
					continue
				}
				c.logger.Error("failed to handle booking event, requeueing",
					logger.String("key", d.RoutingKey),
					logger.String("error", err.Error()),
				)
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKBookingCreated:
		ev, err := events.Decode[events.BookingCreated](d.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return c.notifyCreated(ev)

	case events.RKBookingCancelled:
		ev, err := events.Decode[events.BookingCancelled](d.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", errBadPayload, err)
		}
		return c.notifyCancelled(ev)

	default:
		c.logger.Warn("skipping unknown routing key",
			logger.String("key", d.RoutingKey),
		)
		return nil
	}
}

func (c *Consumer) notifyCreated(ev events.BookingCreated) error {
	bookedAt := time.Unix(ev.BookedAt, 0).UTC().Format("02 Jan 2006 15:04 MST")

	learnerErr := c.mailer.Send(
		ev.LearnerEmail,
		fmt.Sprintf("Booking Confirmation: %s", ev.CourseTitle),
		fmt.Sprintf(
			"Hi %s,\n\nYour slot in %q (cohort %d) is confirmed.\nBooked at: %s\n",
			ev.LearnerName, ev.CourseTitle, ev.CohortNumber, bookedAt,
		),
	)

	instructorErr := c.mailer.Send(
		ev.InstructorEmail,
		fmt.Sprintf("New Booking: %s for %s", ev.LearnerName, ev.CourseTitle),
		fmt.Sprintf(
			"%s booked a slot in %q (cohort %d) at %s.\n",
			ev.LearnerName, ev.CourseTitle, ev.CohortNumber, bookedAt,
		),
	)

	return errors.Join(learnerErr, instructorErr)
}

func (c *Consumer) notifyCancelled(ev events.BookingCancelled) error {
	cancelledAt := time.Unix(ev.CancelledAt, 0).UTC().Format("02 Jan 2006 15:04 MST")

	learnerErr := c.mailer.Send(
		ev.LearnerEmail,
		fmt.Sprintf("Booking Cancelled: %s", ev.CourseTitle),
		fmt.Sprintf(
			"Hi %s,\n\nYour booking for %q (cohort %d) was cancelled at %s. The slot has been released.\n",
			ev.LearnerName, ev.CourseTitle, ev.CohortNumber, cancelledAt,
		),
	)

	instructorErr := c.mailer.Send(
		ev.InstructorEmail,
		fmt.Sprintf("Booking Cancelled: %s for %s", ev.LearnerName, ev.CourseTitle),
		fmt.Sprintf(
			"%s cancelled their booking for %q (cohort %d) at %s.\n",
			ev.LearnerName, ev.CourseTitle, ev.CohortNumber, cancelledAt,
		),
	)

	return errors.Join(learnerErr, instructorErr)
}
