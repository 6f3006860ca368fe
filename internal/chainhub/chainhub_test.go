package chainhub_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastlp/internal/advancer/models"
	"fastlp/internal/chainhub"
	"fastlp/internal/chainhub/store"
	"fastlp/pkg/platform/sentinel"
)

func TestService_LookupChainByPrefix(t *testing.T) {
	ctx := context.Background()

	svc, err := chainhub.New(store.NewMemory())
	require.NoError(t, err)
	require.NoError(t, svc.Seed(ctx, chainhub.Defaults("agoric-3")))

	t.Run("known prefix resolves", func(t *testing.T) {
		info, err := svc.LookupChainByPrefix(ctx, "osmo")
		require.NoError(t, err)
		assert.Equal(t, "osmosis-1", info.ChainID)
		assert.Equal(t, models.EncodingBech32, info.Encoding)
	})

	t.Run("local prefix maps to local chain id", func(t *testing.T) {
		info, err := svc.LookupChainByPrefix(ctx, "agoric")
		require.NoError(t, err)
		assert.Equal(t, "agoric-3", info.ChainID)
	})

	t.Run("unknown prefix is not found", func(t *testing.T) {
		_, err := svc.LookupChainByPrefix(ctx, "btc")
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})
}

// expiringStore drops every entry on Flush, the way TTL-bound redis keys
// disappear between seeding and a later lookup.
type expiringStore struct {
	entries map[string]chainhub.Entry
}

func newExpiringStore() *expiringStore {
	return &expiringStore{entries: make(map[string]chainhub.Entry)}
}

func (s *expiringStore) Put(_ context.Context, entry chainhub.Entry) error {
	s.entries[entry.Prefix] = entry
	return nil
}

func (s *expiringStore) GetByPrefix(_ context.Context, prefix string) (chainhub.Entry, error) {
	entry, ok := s.entries[prefix]
	if !ok {
		return chainhub.Entry{}, sentinel.ErrNotFound
	}
	return entry, nil
}

func (s *expiringStore) Flush() {
	s.entries = make(map[string]chainhub.Entry)
}

func TestService_LookupSurvivesStoreExpiry(t *testing.T) {
	ctx := context.Background()
	backing := newExpiringStore()
	svc, err := chainhub.New(backing)
	require.NoError(t, err)
	require.NoError(t, svc.Seed(ctx, chainhub.Defaults("agoric-3")))

	backing.Flush()

	info, err := svc.LookupChainByPrefix(ctx, "noble")
	require.NoError(t, err)
	assert.Equal(t, "noble-1", info.ChainID)

	// The fallback re-registers the entry in the store.
	entry, err := backing.GetByPrefix(ctx, "noble")
	require.NoError(t, err)
	assert.Equal(t, "noble-1", entry.ChainID)

	// Prefixes that were never seeded still miss.
	_, err = svc.LookupChainByPrefix(ctx, "btc")
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := chainhub.New(nil)
	assert.Error(t, err)
}

func TestSeed_OverwritesPrefix(t *testing.T) {
	ctx := context.Background()
	svc, err := chainhub.New(store.NewMemory())
	require.NoError(t, err)

	require.NoError(t, svc.Seed(ctx, []chainhub.Entry{
		{Prefix: "osmo", ChainID: "osmosis-1", Encoding: models.EncodingBech32},
	}))
	require.NoError(t, svc.Seed(ctx, []chainhub.Entry{
		{Prefix: "osmo", ChainID: "osmo-test-5", Encoding: models.EncodingBech32},
	}))

	info, err := svc.LookupChainByPrefix(ctx, "osmo")
	require.NoError(t, err)
	assert.Equal(t, "osmo-test-5", info.ChainID)
}
