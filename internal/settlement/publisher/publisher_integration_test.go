//go:build integration

package publisher_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"fastlp/internal/settlement"
	"fastlp/internal/settlement/publisher"
	"fastlp/pkg/testutil/containers"
)

const testTopic = "fastlp.advance.outcomes.test"

type KafkaPublisherSuite struct {
	suite.Suite
	brokers   []string
	publisher *publisher.KafkaPublisher
}

func TestKafkaPublisherSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mgr := containers.GetManager()
	s.brokers = mgr.GetRedpanda(s.T()).Brokers

	pub, err := publisher.NewKafka(ctx, s.brokers, testTopic)
	s.Require().NoError(err)
	s.publisher = pub
}

func (s *KafkaPublisherSuite) TearDownSuite() {
	if s.publisher != nil {
		s.publisher.Close()
	}
}

func (s *KafkaPublisherSuite) TestPublishedEventRoundTrips() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := settlement.OutcomeEvent{
		TxID:              "0xintegration",
		ForwardingAddress: "noble1forwarding",
		FullAmount:        150_000_000,
		DestinationChain:  "osmosis-1",
		DestinationValue:  "osmo1destination",
		Success:           true,
		OccurredAt:        time.Now().UTC().Truncate(time.Millisecond),
	}
	s.Require().NoError(s.publisher.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())

	records := fetches.Records()
	s.Require().NotEmpty(records)

	last := records[len(records)-1]
	s.Equal([]byte("0xintegration"), last.Key)

	var got settlement.OutcomeEvent
	s.Require().NoError(json.Unmarshal(last.Value, &got))
	s.Equal(event, got)
}

func (s *KafkaPublisherSuite) TestPublishIsKeyedByTransaction() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.publisher.Publish(ctx, settlement.OutcomeEvent{
			TxID:       "0xordered",
			FullAmount: uint64(i),
			OccurredAt: time.Now().UTC(),
		}))
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.brokers...),
		kgo.ConsumeTopics(testTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var amounts []uint64
	deadline := time.Now().Add(20 * time.Second)
	for len(amounts) < 3 && time.Now().Before(deadline) {
		fetches := consumer.PollFetches(ctx)
		s.Require().NoError(fetches.Err())
		for _, rec := range fetches.Records() {
			if string(rec.Key) != "0xordered" {
				continue
			}
			var got settlement.OutcomeEvent
			s.Require().NoError(json.Unmarshal(rec.Value, &got))
			amounts = append(amounts, got.FullAmount)
		}
	}

	// Same key means same partition, so per-transaction order is preserved.
	s.Equal([]uint64{0, 1, 2}, amounts)
}
