package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	uuid "github.com/google/uuid"
	cobra "github.com/spf13/cobra"
	app "github.com/zoomctl/zoomctl/internal/app"
	bundle "github.com/zoomctl/zoomctl/internal/bundle"
	container "github.com/zoomctl/zoomctl/internal/container"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	zap "go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the menu bar app",
	Long: `Start the zoomctl menu bar app. On launch the accessibility permission is
checked once; if it is missing, an alert offers to open System Settings.
The app keeps running either way and can be quit from its menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runApp(cmd *cobra.Command) error {
	cfg, err := loadedConfig(cmd)
	if err != nil {
		return err
	}

	bundle.Start(bundle.Options{
		Enabled:  cfg.App.Bundle,
		Name:     cfg.App.Name,
		BundleID: cfg.App.BundleID,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.New().String()
	ctx = logger.With(ctx, zap.String("session_id", sessionID))
	logger.L(ctx).Debug("Loaded configuration", zap.String("source", cfg.Source))

	services, err := container.NewServiceContainer(cfg)
	if err != nil {
		return err
	}

	return app.New(services).Run(ctx)
}
