// Package chainhub resolves bech32 address prefixes to chain routing
// metadata. The snapshot is seeded at startup and may be shared between
// instances through the redis-backed store.
package chainhub

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
	dErrors "fastlp/pkg/domain-errors"
	"fastlp/pkg/platform/sentinel"
)

// Entry registers one chain under its address prefix.
type Entry struct {
	Prefix   string                 `json:"prefix"`
	ChainID  string                 `json:"chain_id"`
	Encoding models.AddressEncoding `json:"encoding"`
}

// Store persists prefix registrations.
type Store interface {
	Put(ctx context.Context, entry Entry) error

	// GetByPrefix returns sentinel.ErrNotFound when the prefix is unknown.
	GetByPrefix(ctx context.Context, prefix string) (Entry, error)
}

// Service implements ports.ChainHub on top of a Store. Seeded entries are
// kept in memory as well: store entries can expire or be evicted, and a
// lookup that misses falls back to the seed snapshot and re-registers it.
type Service struct {
	store  Store
	logger *slog.Logger

	mu    sync.Mutex
	seeds map[string]Entry
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "chainhub store is required")
	}
	svc := &Service{store: store, logger: slog.Default(), seeds: make(map[string]Entry)}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Seed registers a batch of entries, typically the defaults at startup.
func (s *Service) Seed(ctx context.Context, entries []Entry) error {
	for _, entry := range entries {
		if err := s.store.Put(ctx, entry); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "seeding chain registry")
		}
		s.mu.Lock()
		s.seeds[entry.Prefix] = entry
		s.mu.Unlock()
		s.logger.Debug("chain registered", "prefix", entry.Prefix, "chain_id", entry.ChainID)
	}
	return nil
}

// LookupChainByPrefix resolves routing metadata for an address prefix.
func (s *Service) LookupChainByPrefix(ctx context.Context, prefix string) (ports.ChainInfo, error) {
	entry, err := s.store.GetByPrefix(ctx, prefix)
	if errors.Is(err, sentinel.ErrNotFound) {
		seeded, ok := s.seeded(prefix)
		if !ok {
			return ports.ChainInfo{}, err
		}
		entry = seeded
		if putErr := s.store.Put(ctx, entry); putErr != nil {
			s.logger.Warn("re-registering expired chain entry failed", "prefix", prefix, "error", putErr)
		}
	} else if err != nil {
		return ports.ChainInfo{}, err
	}
	return ports.ChainInfo{ChainID: entry.ChainID, Encoding: entry.Encoding}, nil
}

func (s *Service) seeded(prefix string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.seeds[prefix]
	return entry, ok
}

// Defaults is the built-in registry for the chains this deployment routes to.
func Defaults(localChainID string) []Entry {
	return []Entry{
		{Prefix: "agoric", ChainID: localChainID, Encoding: models.EncodingBech32},
		{Prefix: "noble", ChainID: "noble-1", Encoding: models.EncodingBech32},
		{Prefix: "osmo", ChainID: "osmosis-1", Encoding: models.EncodingBech32},
		{Prefix: "cosmos", ChainID: "cosmoshub-4", Encoding: models.EncodingBech32},
		{Prefix: "dydx", ChainID: "dydx-mainnet-1", Encoding: models.EncodingBech32},
	}
}
