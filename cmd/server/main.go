package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	billinghandler "fishbill/internal/billing/handler"
	billingservice "fishbill/internal/billing/service"
	"fishbill/internal/billing/store/artifact"
	"fishbill/internal/billing/validate"
	cataloghandler "fishbill/internal/catalog/handler"
	catalogservice "fishbill/internal/catalog/service"
	catalogstore "fishbill/internal/catalog/store"
	"fishbill/internal/document"
	"fishbill/internal/handoff"
	"fishbill/internal/platform/config"
	"fishbill/internal/platform/httpserver"
	"fishbill/internal/platform/logger"
	"fishbill/internal/platform/metrics"
	"fishbill/internal/platform/middleware"
	"fishbill/internal/platform/postgres"
	"fishbill/internal/platform/redis"
	"fishbill/pkg/platform/audit"
	"fishbill/pkg/platform/httputil"
)

// main wires the billing stack and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.New(ctx, cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Catalog: postgres when configured, otherwise the seeded in-memory list.
	var partyStore catalogservice.Store
	if pool != nil {
		partyStore = catalogstore.NewPostgres(pool)
		log.Info("using postgres catalog")
	} else {
		mem := catalogstore.NewInMemory()
		catalogstore.Seed(mem)
		partyStore = mem
		log.Info("using seeded in-memory catalog")
	}
	catalog, err := catalogservice.New(partyStore, catalogservice.WithLogger(log))
	if err != nil {
		return err
	}

	// Artifacts: redis gives rendered bills a retention window across
	// restarts; memory is fine for the single-user default.
	var artifacts artifact.Store
	if redisClient != nil {
		artifacts = artifact.NewRedis(redisClient, cfg.ArtifactTTL)
	} else {
		artifacts = artifact.NewInMemory()
	}

	var publisher audit.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic,
			audit.WithKafkaLogger(log))
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
	} else {
		publisher = audit.NewStorePublisher(audit.NewInMemoryStore())
	}
	defer publisher.Close()

	dispatcher := handoff.NewDispatcher(
		handoff.WithDispatchLogger(log),
		handoff.WithMetrics(m),
	)
	handoffSvc := handoff.NewService(
		handoff.NewTemplates(handoff.Business{
			Name:    cfg.Business.Name,
			Contact: cfg.Business.Contact,
			Tagline: cfg.Business.Tagline,
		}),
		dispatcher,
		handoff.WithLogger(log),
		handoff.WithFallbackDelay(cfg.HandoffFallbackDelay),
	)
	defer handoffSvc.Close()

	assembler := document.NewAssembler(document.Branding{
		Name:    cfg.Business.Name,
		Contact: cfg.Business.Contact,
		Email:   cfg.Business.Email,
		Tagline: cfg.Business.Tagline,
	})

	billing, err := billingservice.New(catalog, validate.NewGate(cfg.CountryCode),
		assembler, artifacts, handoffSvc,
		billingservice.WithLogger(log),
		billingservice.WithAuditPublisher(publisher),
		billingservice.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(30 * time.Second))

	cataloghandler.New(catalog, log).Register(r)
	billinghandler.New(billing, log).Register(r)

	r.Get("/healthz", healthHandler(pool, redisClient))
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting fishbill", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func healthHandler(pool *postgres.Pool, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK

		if pool != nil {
			if err := pool.Health(r.Context()); err != nil {
				status["postgres"] = err.Error()
				code = http.StatusServiceUnavailable
			}
		}
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				status["redis"] = err.Error()
				code = http.StatusServiceUnavailable
			}
		}
		if code != http.StatusOK {
			status["status"] = "degraded"
		}
		httputil.WriteJSON(w, code, status)
	}
}
