package messaging

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultPaymentEventsExchange   = "payments"
	DefaultPaymentEventsRoutingKey = "payment.approved"
	defaultPublishTimeout          = 5 * time.Second
)

var ErrPublisherClosed = errors.New("publisher closed")

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes payment events as persistent JSON messages on a
// topic exchange.
type RabbitMQPublisher struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	channel    amqpChannel
	exchange   string
	routingKey string
	timeout    time.Duration
	now        func() time.Time
}

var _ interfaces.IPaymentEventPublisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url, exchange, routingKey string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if exchange == "" {
		exchange = DefaultPaymentEventsExchange
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}
	log.Printf("[payment][events] rabbitmq publisher ready exchange=%s", exchange)

	p := newRabbitMQPublisher(ch, exchange, routingKey)
	p.conn = conn
	return p, nil
}

func newRabbitMQPublisher(ch amqpChannel, exchange, routingKey string) *RabbitMQPublisher {
	if routingKey == "" {
		routingKey = DefaultPaymentEventsRoutingKey
	}
	return &RabbitMQPublisher{
		channel:    ch,
		exchange:   exchange,
		routingKey: routingKey,
		timeout:    defaultPublishTimeout,
		now:        time.Now,
	}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event entities.PaymentEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return ErrPublisherClosed
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("[payment][events] publish failed event_id=%s transaction_id=%s err=%v", event.ID, event.TransactionID, err)
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	log.Printf("[payment][events] published event_id=%s type=%s transaction_id=%s", event.ID, event.Type, event.TransactionID)
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
		p.channel = nil
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
		p.conn = nil
	}
	return errors.Join(errs...)
}
