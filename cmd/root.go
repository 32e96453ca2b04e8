package cmd

import (
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	config "github.com/zoomctl/zoomctl/config"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

var (
	cfg     *config.Config
	loadErr error
)

var rootCmd = &cobra.Command{
	Use:   "zoomctl",
	Short: "Zoom any app with Control + scroll",
	Long: `zoomctl is a macOS menu bar accessory that turns Control + scroll wheel
gestures into Command+'+' and Command+'-' keystrokes, so the frontmost
application zooms in and out.

Running zoomctl without a subcommand starts the menu bar app.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	configPath, _ := rootCmd.PersistentFlags().GetString("config")

	cfg, loadErr = config.Load(configPath)

	opts := logger.Options{Debug: verbose}
	if cfg != nil {
		opts.Debug = opts.Debug || cfg.Logging.Debug
		opts.Format = cfg.Logging.Format
		opts.File = cfg.Logging.File
	}

	if _, err := logger.Init(opts); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
}

// loadedConfig returns the configuration read during initialization
func loadedConfig(cmd *cobra.Command) (*config.Config, error) {
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPathFlag(cmd), loadErr)
	}
	return cfg, nil
}

// configPathFlag resolves --config from the root of cmd's command tree
func configPathFlag(cmd *cobra.Command) string {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.GetConfigPath(configPath)
}
