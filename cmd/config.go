package cmd

import (
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	config "github.com/zoomctl/zoomctl/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage zoomctl configuration",
	Long:  `Create, inspect and edit the zoomctl configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default settings",
	Long: fmt.Sprintf(`Write a configuration file with default settings to %s,
or to the path given with --config.`, config.DefaultConfigPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configPathFlag(cmd)

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			if !overwrite {
				return fmt.Errorf("configuration file %s already exists (use --overwrite to replace)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after applying the file, .env and ZOOMCTL_* overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig(cmd)
		if err != nil {
			return err
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# source: %s\n", cfg.Source)
		_, err = out.Write(data)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a dotted configuration key and save the file, for example:

  zoomctl config set zoom.threshold 0.2
  zoomctl config set zoom.debounce 80ms
  zoomctl config set input.injector robotgo`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configPathFlag(cmd)

		if _, err := config.SetValue(configPath, args[0], args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("overwrite", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
