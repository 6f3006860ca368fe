//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"fastlp/internal/chainhub"
	"fastlp/internal/chainhub/store"
	"fastlp/pkg/platform/sentinel"
	"fastlp/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestPutAndGetByPrefix() {
	ctx := context.Background()

	entry := chainhub.Entry{Prefix: "osmo", ChainID: "osmosis-1", Encoding: "bech32"}
	s.Require().NoError(s.store.Put(ctx, entry))

	got, err := s.store.GetByPrefix(ctx, "osmo")
	s.Require().NoError(err)
	s.Equal(entry, got)
}

func (s *RedisStoreSuite) TestGetUnknownPrefix() {
	_, err := s.store.GetByPrefix(context.Background(), "nowhere")
	s.Require().Error(err)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *RedisStoreSuite) TestPutOverwritesExistingPrefix() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, chainhub.Entry{Prefix: "noble", ChainID: "noble-1", Encoding: "bech32"}))
	s.Require().NoError(s.store.Put(ctx, chainhub.Entry{Prefix: "noble", ChainID: "noble-2", Encoding: "bech32"}))

	got, err := s.store.GetByPrefix(ctx, "noble")
	s.Require().NoError(err)
	s.Equal("noble-2", got.ChainID)
}

func (s *RedisStoreSuite) TestServiceFallsBackAfterEviction() {
	ctx := context.Background()

	svc, err := chainhub.New(s.store)
	s.Require().NoError(err)
	s.Require().NoError(svc.Seed(ctx, chainhub.Defaults("agoric-3")))

	// Redis losing the keys (TTL expiry, eviction) must not break routing.
	s.Require().NoError(s.redis.FlushAll(ctx))

	info, err := svc.LookupChainByPrefix(ctx, "osmo")
	s.Require().NoError(err)
	s.Equal("osmosis-1", info.ChainID)

	// The fallback re-registers the entry in redis.
	got, err := s.store.GetByPrefix(ctx, "osmo")
	s.Require().NoError(err)
	s.Equal("osmosis-1", got.ChainID)
}

func (s *RedisStoreSuite) TestEntriesCarryTTL() {
	ctx := context.Background()

	s.Require().NoError(s.store.Put(ctx, chainhub.Entry{Prefix: "dydx", ChainID: "dydx-mainnet-1", Encoding: "bech32"}))

	ttl, err := s.redis.Client.TTL(ctx, "chainhub:prefix:dydx").Result()
	s.Require().NoError(err)
	s.Positive(ttl)
}
