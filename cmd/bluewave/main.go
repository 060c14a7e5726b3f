package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/bluewave/internal/config"
	"github.com/deppfellow/bluewave/internal/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultContextTimeout = 30

func main() {
	root := &cobra.Command{
		Use:           "bluewave",
		Short:         "Tourism booking and partner backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), migrateCmd(), seedAdminCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger every command
// shares. The caller must Shutdown the returned LoggerService.
func bootstrap() (*config.Config, *zerolog.Logger, *logger.LoggerService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, &log, loggerService, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func shutdownTimeout() time.Duration {
	return defaultContextTimeout * time.Second
}
