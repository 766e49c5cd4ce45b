// Package main implements the entry point for the flashcards API server,
// which serves the study progress engine over HTTP and manages the
// database schema.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/slotocki/flashcards/internal/config"
	"github.com/slotocki/flashcards/internal/platform/logger"
	"github.com/slotocki/flashcards/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flashcards",
		Short:         "Flashcard study progress API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (default ./config.yaml)")

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			log.Info("server configuration loaded",
				"port", cfg.Server.Port,
				"log_level", cfg.Server.LogLevel)

			db, err := setupAppDatabase(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, log, db)
			if err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return app.Run(cmd.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [" + strings.Join(postgres.MigrationCommands, "|") + "]",
		Short:     "Manage the database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: postgres.MigrationCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			db, err := setupAppDatabase(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("error closing database connection", "error", err)
				}
			}()

			return postgres.RunMigrations(cmd.Context(), db, args[0], log)
		},
	}
}
