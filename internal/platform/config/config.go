package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process-level configuration for the advance service.
type Config struct {
	Addr          string
	JWTSigningKey string

	// Chain identity of the settlement side.
	LocalChainID      string
	SettlementAddress string
	AdvanceDenom      string

	// Fee schedule applied to gross deposit amounts.
	FlatFee     uint64
	VariableBps uint64

	// Liquidity seeded into the in-memory pool ledger. Ignored when a
	// Postgres ledger is configured; that one is funded operationally.
	PoolBalance uint64

	// Optional infrastructure. Empty values fall back to in-memory adapters.
	PostgresURL  string
	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string

	Redis RedisConfig
}

// RedisConfig tunes the shared redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ChainCacheTTL bounds how long a prefix→chain lookup may be served from cache.
var ChainCacheTTL = 5 * time.Minute

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:              envOr("FASTLP_ADDR", ":8080"),
		JWTSigningKey:     envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		LocalChainID:      envOr("FASTLP_LOCAL_CHAIN_ID", "agoric-3"),
		SettlementAddress: os.Getenv("FASTLP_SETTLEMENT_ADDRESS"),
		AdvanceDenom:      envOr("FASTLP_ADVANCE_DENOM", "uusdc"),
		FlatFee:           envUint("FASTLP_FLAT_FEE", 10_000),
		VariableBps:       envUint("FASTLP_VARIABLE_BPS", 20),
		PoolBalance:       envUint("FASTLP_POOL_BALANCE", 1_000_000_000_000),
		PostgresURL:       os.Getenv("FASTLP_POSTGRES_URL"),
		RedisURL:          os.Getenv("FASTLP_REDIS_URL"),
		KafkaTopic:        envOr("FASTLP_KAFKA_TOPIC", "fastlp.advance.outcomes"),
	}

	if brokers := os.Getenv("FASTLP_KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	cfg.Redis = RedisConfig{
		URL:          cfg.RedisURL,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
