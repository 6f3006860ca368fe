// Package publisher delivers advance outcome events to Kafka. The settlement
// consumer reads the topic to decide final on-chain status; Kafka is the
// source of truth for outcomes once an event is acknowledged.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"fastlp/internal/settlement"
)

// KafkaPublisher produces one record per outcome, keyed by transaction id so
// a partition preserves per-transaction order.
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	breaker *circuitBreaker
	logger  *slog.Logger
}

type Option func(*KafkaPublisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *KafkaPublisher) { p.logger = logger }
}

// NewKafka connects to the brokers and makes sure the outcome topic exists.
func NewKafka(ctx context.Context, brokers []string, topic string, opts ...Option) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	if _, err := admin.CreateTopics(ctx, 1, 1, nil, topic); err != nil {
		// Already-exists responses surface per topic, not here; a transport
		// error at this point means the brokers are unreachable.
		client.Close()
		return nil, fmt.Errorf("ensure topic %s: %w", topic, err)
	}

	p := &KafkaPublisher{
		client:  client,
		topic:   topic,
		breaker: newCircuitBreaker(5, time.Minute),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Publish produces the event synchronously. During a broker outage the
// breaker opens and events are dropped with a warning instead of stalling
// saga runs behind a dead broker.
func (p *KafkaPublisher) Publish(ctx context.Context, event settlement.OutcomeEvent) error {
	if !p.breaker.Allow() {
		p.logger.Warn("outcome publisher circuit open, dropping event", "tx_id", event.TxID)
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal outcome event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.TxID),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		p.breaker.RecordFailure()
		return fmt.Errorf("produce outcome event: %w", err)
	}
	p.breaker.RecordSuccess()
	return nil
}

// Close flushes buffered records and releases the client.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
