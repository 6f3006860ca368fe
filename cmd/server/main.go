package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"fastlp/internal/advancer"
	"fastlp/internal/advancer/fees"
	"fastlp/internal/advancer/ports"
	"fastlp/internal/advancer/resolver"
	"fastlp/internal/chainhub"
	chainhubstore "fastlp/internal/chainhub/store"
	"fastlp/internal/custody"
	jwttoken "fastlp/internal/jwt_token"
	"fastlp/internal/platform/config"
	"fastlp/internal/platform/httpserver"
	"fastlp/internal/platform/logger"
	platformredis "fastlp/internal/platform/redis"
	"fastlp/internal/pool"
	"fastlp/internal/settlement"
	"fastlp/internal/settlement/publisher"
	"fastlp/internal/status"
	statusstore "fastlp/internal/status/store"
	httptransport "fastlp/internal/transport/http"
)

// main wires adapters to the saga engine and keeps the server lifecycle
// small. Every infrastructure dependency is optional: without Postgres,
// Redis, or Kafka the service runs fully in memory.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("fastlp exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Status history store.
	var statusStore status.Store
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer db.Close()

		pgStore := statusstore.NewPostgres(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			return err
		}
		statusStore = pgStore
	} else {
		statusStore = statusstore.NewMemory()
	}

	statuses, err := status.New(statusStore, status.WithLogger(log))
	if err != nil {
		return err
	}

	// Chain registry, optionally shared through Redis.
	var hubStore chainhub.Store
	if cfg.RedisURL != "" {
		redisClient, err := platformredis.New(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		hubStore = chainhubstore.NewRedis(redisClient.Client)
	} else {
		hubStore = chainhubstore.NewMemory()
	}

	hub, err := chainhub.New(hubStore, chainhub.WithLogger(log))
	if err != nil {
		return err
	}
	if err := hub.Seed(ctx, chainhub.Defaults(cfg.LocalChainID)); err != nil {
		return err
	}

	// Pool ledger.
	var ledger ports.Borrower
	if cfg.PostgresURL != "" {
		pgxPool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer pgxPool.Close()

		pgLedger := pool.NewPostgresLedger(pgxPool)
		if err := pgLedger.EnsureSchema(ctx); err != nil {
			return err
		}
		ledger = pgLedger
	} else {
		ledger = pool.NewMemoryLedger(cfg.AdvanceDenom, cfg.PoolBalance)
	}

	accounts := custody.NewAccounts(custody.WithLogger(log))
	borrower := custody.NewBorrowerBridge(ledger, accounts)

	// Outcome notifier, with Kafka fan-out when brokers are configured.
	notifierOpts := []settlement.Option{settlement.WithLogger(log)}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := publisher.NewKafka(ctx, cfg.KafkaBrokers, cfg.KafkaTopic, publisher.WithLogger(log))
		if err != nil {
			return err
		}
		defer kafka.Close()
		notifierOpts = append(notifierOpts, settlement.WithPublisher(kafka))
	}
	notifier, err := settlement.New(statusStore, notifierOpts...)
	if err != nil {
		return err
	}

	engine, err := advancer.New(
		advancer.Deps{
			Borrower: borrower,
			Mover:    accounts,
			Forward:  accounts,
			Notifier: notifier,
			Status:   statuses,
			Resolver: resolver.New(hub, cfg.SettlementAddress),
		},
		fees.Schedule{Denom: cfg.AdvanceDenom, FlatFee: cfg.FlatFee, VariableBps: cfg.VariableBps},
		cfg.LocalChainID,
		advancer.WithLogger(log),
	)
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "fastlp", "fastlp-api")
	handler := httptransport.New(engine, statuses, log)
	router := httptransport.NewRouter(handler, jwttoken.NewJWTServiceAdapter(jwtService), log)

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting fastlp", "addr", cfg.Addr, "local_chain_id", cfg.LocalChainID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
