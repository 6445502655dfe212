package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	amqpQueueSize      = 256
	amqpPublishTimeout = 5 * time.Second
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPForwarder republishes events to a topic exchange keyed by event type.
type AMQPForwarder struct {
	conn     *amqp.Connection
	ch       amqpChannel
	closeCh  func() error
	exchange string
	queue    chan shared.Event
	done     chan struct{}
	mu       sync.RWMutex
	closed   bool
	logger   *slog.Logger
}

func DialAMQP(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPForwarder, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	f := newAMQPForwarder(ch, cfg.Exchange, logger)
	f.conn = conn
	f.closeCh = ch.Close
	return f, nil
}

func newAMQPForwarder(ch amqpChannel, exchange string, logger *slog.Logger) *AMQPForwarder {
	f := &AMQPForwarder{
		ch:       ch,
		exchange: exchange,
		queue:    make(chan shared.Event, amqpQueueSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go f.run()
	return f
}

func (f *AMQPForwarder) Forward(e shared.Event) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return
	}
	select {
	case f.queue <- e:
	default:
		f.logger.Warn("amqp queue full, event dropped", "type", e.Type.String(), "event_id", e.ID.String())
	}
}

func (f *AMQPForwarder) run() {
	defer close(f.done)
	for e := range f.queue {
		if err := f.publish(e); err != nil {
			f.logger.Warn("amqp publish failed", "type", e.Type.String(), "error", err.Error())
		}
	}
}

func (f *AMQPForwarder) publish(e shared.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), amqpPublishTimeout)
	defer cancel()

	return f.ch.PublishWithContext(ctx, f.exchange, e.Type.String(), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID.String(),
		Timestamp:    e.OccurredAt,
		Type:         e.Type.String(),
		Body:         body,
	})
}

// Close drains queued events before closing the connection.
func (f *AMQPForwarder) Close() error {
	f.mu.Lock()
	if !f.closed {
		f.closed = true
		close(f.queue)
	}
	f.mu.Unlock()
	<-f.done

	if f.closeCh != nil {
		_ = f.closeCh()
	}
	if f.conn != nil {
		return f.conn.Close()
	}
	return nil
}
