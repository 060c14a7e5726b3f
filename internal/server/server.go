// Package server holds the shared resources of a running bluewave
// process and their start and stop order.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/database"
	"github.com/deppfellow/bluewave/internal/lib/job"
	"github.com/deppfellow/bluewave/internal/lib/metrics"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/bluewave/internal/logger"
)

type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService carries the New Relic app, nil when NR is off.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	// Redis backs the job queue and the health check.
	Redis *redis.Client

	// Job workers start once InitHandlers has wired them.
	Job *job.JobService

	// Registry is served on /metrics.
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	httpServer *http.Server
}

// redisPingTimeout bounds the startup Redis ping.
const redisPingTimeout = 5 * time.Second

// New connects to PostgreSQL and Redis. A database failure is fatal; an
// unreachable Redis is only logged, audit entries then go straight to the
// database.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("redis unreachable, audit falls back to direct writes")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Job:           job.NewJobService(logger, cfg),
		Registry:      registry,
		Metrics:       metrics.New(config.ServiceName, registry),
	}, nil
}

// SetupHTTPServer wraps handler in the net/http server Start runs.
// Timeouts in config are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start blocks serving HTTP until Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("http server not set up")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, runs drain once in-flight requests
// are done, then stops the job workers and closes Redis and the pool.
// Every step runs even when an earlier one fails.
func (s *Server) Shutdown(ctx context.Context, drain ...func()) error {
	var errList []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errList = append(errList, fmt.Errorf("shutting down http server: %w", err))
		}
	}

	for _, fn := range drain {
		fn()
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			s.Logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errList = append(errList, fmt.Errorf("closing database: %w", err))
		}
	}

	return errors.Join(errList...)
}
