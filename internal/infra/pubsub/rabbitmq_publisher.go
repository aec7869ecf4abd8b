package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"bvs/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue
type rabbitMQPublisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the target queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq channel open failed")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, errors.Wrapf(err, "rabbitmq queue declare %s failed", queue)
	}

	return &rabbitMQPublisher{
		conn:   conn,
		ch:     ch,
		queue:  queue,
		logger: logger,
	}, nil
}

// PublishAgreementEvent publishes a persistent JSON message routed to the queue
func (p *rabbitMQPublisher) PublishAgreementEvent(ctx context.Context, event *service.AgreementEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		CorrelationId: event.RequestID,
		Headers:       headers,
		Body:          body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errors.Wrap(err, "rabbitmq publish failed")
	}

	p.logger.Debug("[RabbitMQ] Event published successfully",
		slog.String("queue", p.queue),
		slog.String("agreement_id", event.AgreementID),
	)

	return nil
}

// Close closes the channel and then the connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var err error
	if p.ch != nil {
		err = p.ch.Close()
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return errors.WithStack(err)
}
