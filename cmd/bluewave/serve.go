package main

import (
	"context"

	"github.com/deppfellow/bluewave/internal/database"
	"github.com/deppfellow/bluewave/internal/handler"
	"github.com/deppfellow/bluewave/internal/lib/email"
	"github.com/deppfellow/bluewave/internal/lib/job"
	"github.com/deppfellow/bluewave/internal/middleware"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/router"
	"github.com/deppfellow/bluewave/internal/server"
	"github.com/deppfellow/bluewave/internal/service"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the job workers and the scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func serve(migrate bool) error {
	cfg, log, loggerService, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	ctx, stop := signalContext()
	defer stop()

	if migrate {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	srv.Job.InitHandlers(job.Handlers{
		Email:      email.NewClient(cfg.Integration, log),
		Activities: repos.Activity,
	})
	if err := srv.Job.Start(); err != nil {
		// The API still works without workers; audit falls back to
		// direct inserts when enqueueing fails.
		log.Error().Err(err).Msg("failed to start job workers")
	}

	scheduler, err := job.NewScheduler(log, cfg.Jobs.PromoExpirySchedule, repos.Promo)
	if err != nil {
		log.Error().Err(err).Msg("invalid promo expiry schedule")
		return err
	}
	scheduler.Start()

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)
	r := router.NewRouter(srv, handlers, middlewares)

	srv.SetupHTTPServer(r)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout())
	defer cancel()

	scheduler.Stop()

	// Audit inserts run detached from their requests and need the pool.
	if err := srv.Shutdown(shutdownCtx, services.DirectAudit.Wait); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")

	return nil
}
