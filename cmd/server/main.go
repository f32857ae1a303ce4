package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	jwttoken "warden/internal/jwt_token"
	"warden/internal/platform/config"
	"warden/internal/platform/httpserver"
	"warden/internal/platform/logger"
	platformredis "warden/internal/platform/redis"
	"warden/internal/sanction/adapters/relay"
	sanctionhandler "warden/internal/sanction/handler"
	"warden/internal/sanction/metrics"
	"warden/internal/sanction/pending"
	"warden/internal/sanction/service"
	"warden/internal/sanction/store"
	httptransport "warden/internal/transport/http"
	"warden/pkg/platform/audit"
	auditmemory "warden/pkg/platform/audit/store/memory"
	auditpostgres "warden/pkg/platform/audit/store/postgres"
)

const auditInboxSize = 256

// main wires the sanction workflow engine: durable ledger, pending-action
// trackers, audit pipeline, relay adapter, and the HTTP surface. Business
// logic lives in internal/sanction.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The ledger must be readable and structurally valid before we accept
	// a single command. A corrupt file is a deployment problem, not
	// something to paper over at runtime.
	ledger := store.NewFileLedgerStore(cfg.LedgerPath, log)
	if err := ledger.Init(ctx); err != nil {
		log.Error("sanction ledger unusable", "path", cfg.LedgerPath, "error", err.Error())
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	var (
		evidence pending.EvidenceTracker
		disputes pending.DisputeTokens
	)
	if redisClient != nil {
		evidence = pending.NewRedisEvidenceTracker(redisClient.Client)
		disputes = pending.NewRedisDisputeTokens(redisClient.Client, cfg.DisputeTTL)
		log.Info("pending-action state backed by redis")
	} else {
		evidence = pending.NewMemoryEvidenceTracker()
		disputes = pending.NewMemoryDisputeTokens()
	}

	var (
		auditStore  audit.Store
		auditHealth httptransport.HealthChecker
	)
	if cfg.AuditDSN != "" {
		db, err := sql.Open("postgres", cfg.AuditDSN)
		if err != nil {
			log.Error("audit database open failed", "error", err.Error())
			os.Exit(1)
		}
		defer func() { _ = db.Close() }()
		pg := auditpostgres.New(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Error("audit migration failed", "error", err.Error())
			os.Exit(1)
		}
		auditStore = pg
		auditHealth = func() error { return db.Ping() }
		log.Info("audit trail backed by postgres")
	} else {
		auditStore = auditmemory.New()
	}

	auditInbox := make(chan audit.Event, auditInboxSize)
	auditSink := audit.NewChannelSink(auditInbox, auditStore)
	auditWorker := audit.NewWorker(auditStore, auditInbox, log)
	publisher := audit.NewPublisher(auditSink)

	relayClient := relay.New(cfg.RelayURL, cfg.RelayToken, cfg.ManagerRoles, log)

	engine := service.New(service.Config{
		Logger:     log,
		Ledger:     ledger,
		Gateway:    relayClient,
		Notifier:   relayClient,
		Authz:      relayClient,
		Audit:      publisher,
		Evidence:   evidence,
		Disputes:   disputes,
		Metrics:    metrics.New(),
		Channel:    cfg.FineChannel,
		DisputeTTL: cfg.DisputeTTL,
	})

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "warden", "warden-api")
	validator := jwttoken.NewJWTServiceAdapter(jwtService)

	health := map[string]httptransport.HealthChecker{}
	if redisClient != nil {
		health["redis"] = func() error { return redisClient.Health(context.Background()) }
	}
	if auditHealth != nil {
		health["audit"] = auditHealth
	}

	router := httptransport.NewRouter(
		httptransport.Options{
			Logger:     log,
			AdminToken: cfg.AdminToken,
			Health:     health,
		},
		sanctionhandler.New(engine, log, validator),
	)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting warden", "addr", cfg.Addr, "ledger", cfg.LedgerPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := auditWorker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
