package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/bluewave/internal/database"
	"github.com/deppfellow/bluewave/internal/model"
	"github.com/deppfellow/bluewave/internal/repository"
	"github.com/deppfellow/bluewave/internal/service"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, stop := signalContext()
			defer stop()

			return database.Migrate(ctx, log, cfg)
		},
	}
}

func seedAdminCmd() *cobra.Command {
	var (
		username string
		name     string
		email    string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an admin account or reset its password",
		Long: "Create an admin account or reset its password.\n\n" +
			"The password is read from BLUEWAVE_ADMIN_PASSWORD so it stays out of the shell history.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := os.Getenv("BLUEWAVE_ADMIN_PASSWORD")
			if password == "" {
				return fmt.Errorf("BLUEWAVE_ADMIN_PASSWORD is not set")
			}

			cfg, log, loggerService, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, stop := signalContext()
			defer stop()

			db, err := database.New(cfg, log, loggerService)
			if err != nil {
				return err
			}
			defer db.Close()

			repos := repository.New(db.Pool)
			auth := service.NewAuthService(repos.User, repos.Admin, repos.Mitra, nil, nil, log)

			id, err := auth.SeedAdmin(ctx, model.Account{
				Nama:     name,
				Username: username,
				Email:    email,
				Role:     model.Role(role),
			}, password)
			if err != nil {
				return err
			}

			log.Info().Int64("id", id).Str("username", username).Msg("admin account ready")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "login name")
	cmd.Flags().StringVar(&name, "name", "Administrator", "display name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&role, "role", string(model.RoleSuperadmin), "admin or superadmin")

	return cmd
}
