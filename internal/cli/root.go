package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/RubachokBoss/ontrack-service/internal/app"
	"github.com/RubachokBoss/ontrack-service/internal/config"
	"github.com/RubachokBoss/ontrack-service/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configFile string
	address    string
)

var rootCmd = &cobra.Command{
	Use:           "ontrack",
	Short:         "Track tasks, feedback, tutoring and study groups",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to a config file (default ./config/config.yaml or ./config.yaml)")
	rootCmd.Flags().StringVar(&address, "address", "", "HTTP listen address, overrides server.address")
}

func Execute() error {
	return rootCmd.Execute()
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	if address != "" {
		cfg.Server.Address = address
	}

	log := logger.NewWithConfig(cfg.Logging.Level, cfg.Logging.Pretty, cfg.Logging.NoColor)

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case err := <-runErr:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped unexpectedly")
		}
		shutdownErr := shutdown(application, cfg)
		return errors.Join(err, shutdownErr)
	}

	if err := shutdown(application, cfg); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown gracefully")
		return err
	}

	log.Info().Msg("Ontrack service stopped")
	return nil
}

func shutdown(application *app.App, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return application.Shutdown(ctx)
}
