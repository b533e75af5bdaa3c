package kafka

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

// HandleFunc processes a single relayed event.
type HandleFunc func(context.Context, domain.AuditEvent) error

var newConsumerGroup = sarama.NewConsumerGroup

const defaultRetryBackoff = time.Second

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	backoff time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		logger.Warn("kafka consumer not configured")
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger,
		backoff: defaultRetryBackoff,
	}, nil
}

// Run consumes until ctx is cancelled. A failed message ends the session
// without committing its offset; the next session redelivers it after a backoff.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}

	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.String("topic", c.topic), logx.Err(err))
			if !c.wait(ctx) {
				return ctx.Err()
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		// sarama reports ConsumeClaim errors on Errors() and Consume returns nil
		if h.failed.Swap(false) {
			c.logger.Warn("kafka redelivery backoff",
				logx.String("topic", c.topic),
				logx.Duration("delay", c.retryDelay()),
			)
			if !c.wait(ctx) {
				return ctx.Err()
			}
		}
	}
}

func (c *Consumer) retryDelay() time.Duration {
	if c.backoff <= 0 {
		return defaultRetryBackoff
	}
	return c.backoff
}

func (c *Consumer) wait(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(c.retryDelay()):
		return true
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct {
	c      *Consumer
	failed atomic.Bool
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		ev, err := ToAuditEvent(msg.Value)
		if err != nil {
			h.c.logger.Error("kafka bad message, redelivering",
				logx.String("topic", msg.Topic),
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			h.failed.Store(true)
			return err
		}

		if err := h.c.handler(sess.Context(), ev); err != nil {
			h.c.logger.Error("kafka handle failed, redelivering",
				logx.String("driver_id", ev.DriverID),
				logx.String("load_id", ev.LoadID),
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			h.failed.Store(true)
			return err
		}

		sess.MarkMessage(msg, "")
	}
	return nil
}
