package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes assignment events to the relay topic.
type Producer struct {
	sp        sarama.SyncProducer
	topic     string
	logger    logx.Logger
	published *prometheus.CounterVec
}

// NewProducer creates a Producer. Without brokers it returns a Producer that drops events.
func NewProducer(
	logger logx.Logger,
	brokers []string,
	topic string,
	timeout time.Duration,
	published *prometheus.CounterVec,
) (*Producer, error) {
	p := &Producer{topic: topic, logger: logger, published: published}
	if len(brokers) == 0 {
		logger.Warn("kafka brokers not configured, event relay disabled")
		return p, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	if timeout > 0 {
		cfg.Producer.Timeout = timeout
	}

	sp, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	p.sp = sp
	return p, nil
}

// PublishAssignment sends ev keyed by driver id. It returns when the broker acks or ctx ends.
func (p *Producer) PublishAssignment(ctx context.Context, ev domain.AssignmentEvent) error {
	if p == nil {
		return nil
	}
	if p.sp == nil {
		p.logger.Debug("event relay disabled, dropping event",
			logx.String("type", ev.Type),
			logx.String("assignment_id", ev.Assignment.ID.String()),
		)
		return nil
	}

	body, err := json.Marshal(FromAssignmentEvent(ev))
	if err != nil {
		p.observe("error")
		return fmt.Errorf("encode event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Assignment.DriverID.String()),
		Value: sarama.ByteEncoder(body),
	}

	type sent struct {
		partition int32
		offset    int64
		err       error
	}
	done := make(chan sent, 1)
	go func() {
		partition, offset, err := p.sp.SendMessage(msg)
		done <- sent{partition: partition, offset: offset, err: err}
	}()

	select {
	case <-ctx.Done():
		p.observe("error")
		return fmt.Errorf("publish %s: %w", ev.Type, ctx.Err())
	case res := <-done:
		if res.err != nil {
			p.observe("error")
			return fmt.Errorf("publish %s: %w", ev.Type, res.err)
		}
		p.observe("ok")
		p.logger.Debug("event published",
			logx.String("topic", p.topic),
			logx.String("type", ev.Type),
			logx.Int("partition", int(res.partition)),
			logx.Int64("offset", res.offset),
		)
		return nil
	}
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

func (p *Producer) observe(result string) {
	if p.published != nil {
		p.published.WithLabelValues(result).Inc()
	}
}
