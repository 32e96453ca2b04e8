package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	viper "github.com/spf13/viper"
	gotenv "github.com/subosito/gotenv"
	constants "github.com/zoomctl/zoomctl/internal/constants"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	yaml "gopkg.in/yaml.v3"
)

const (
	ConfigDirName  = ".zoomctl"
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
	EnvPrefix      = "ZOOMCTL"

	// DefaultsSource is reported as Config.Source when no file was read
	DefaultsSource = "<defaults>"
)

// DefaultConfigPath is the config location shown in help output
var DefaultConfigPath = filepath.Join("~", ConfigDirName, ConfigFileName)

// Config represents the zoomctl configuration
type Config struct {
	Zoom        ZoomConfig        `yaml:"zoom" mapstructure:"zoom"`
	Input       InputConfig       `yaml:"input" mapstructure:"input"`
	Permissions PermissionsConfig `yaml:"permissions" mapstructure:"permissions"`
	Menubar     MenubarConfig     `yaml:"menubar" mapstructure:"menubar"`
	App         AppConfig         `yaml:"app" mapstructure:"app"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`

	// Source is the file the configuration was read from, or DefaultsSource
	Source string `yaml:"-" mapstructure:"-"`
}

// ZoomConfig contains the scroll-to-zoom tunables
type ZoomConfig struct {
	Threshold float64       `yaml:"threshold" mapstructure:"threshold"`
	Debounce  time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// InputConfig selects the platform backends
type InputConfig struct {
	Injector string `yaml:"injector" mapstructure:"injector"`
	Source   string `yaml:"source" mapstructure:"source"`
}

// PermissionsConfig contains the accessibility gate settings
type PermissionsConfig struct {
	Prompt      bool   `yaml:"prompt" mapstructure:"prompt"`
	SettingsURL string `yaml:"settings_url" mapstructure:"settings_url"`
}

// MenubarConfig contains the status item settings
type MenubarConfig struct {
	Tooltip      string `yaml:"tooltip" mapstructure:"tooltip"`
	StatusLabel  string `yaml:"status_label" mapstructure:"status_label"`
	ShowActivity bool   `yaml:"show_activity" mapstructure:"show_activity"`
}

// AppConfig contains the app bundle settings
type AppConfig struct {
	Bundle   bool   `yaml:"bundle" mapstructure:"bundle"`
	Name     string `yaml:"name" mapstructure:"name"`
	BundleID string `yaml:"bundle_id" mapstructure:"bundle_id"`
}

// LoggingConfig contains log verbosity and output settings
type LoggingConfig struct {
	Debug  bool   `yaml:"debug" mapstructure:"debug"`
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

var (
	validInjectors = []string{"quartz", "robotgo"}
	validSources   = []string{"tap", "hook"}
	validFormats   = []string{"console", "json"}
)

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Zoom: ZoomConfig{
			Threshold: constants.ZoomScrollThreshold,
			Debounce:  constants.ZoomDebounce,
		},
		Input: InputConfig{
			Injector: "quartz",
			Source:   "tap",
		},
		Permissions: PermissionsConfig{
			Prompt:      true,
			SettingsURL: constants.AccessibilitySettingsURL,
		},
		Menubar: MenubarConfig{
			Tooltip:      "Zoom Control",
			StatusLabel:  "Zoom Control Active",
			ShowActivity: true,
		},
		App: AppConfig{
			Bundle:   false,
			Name:     "ZoomControl",
			BundleID: "dev.zoomctl.app",
		},
		Logging: LoggingConfig{
			Debug:  false,
			Format: "console",
			File:   "",
		},
		Source: DefaultsSource,
	}
}

// GetConfigDir returns the directory holding config.yaml and .env
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ConfigDirName
	}
	return filepath.Join(home, ConfigDirName)
}

// GetConfigPath resolves the config file path, preferring an explicit one
func GetConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	return filepath.Join(GetConfigDir(), ConfigFileName)
}

// NewViper returns a viper instance seeded with defaults and ZOOMCTL_* env overrides
func NewViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("zoom.threshold", d.Zoom.Threshold)
	v.SetDefault("zoom.debounce", d.Zoom.Debounce)
	v.SetDefault("input.injector", d.Input.Injector)
	v.SetDefault("input.source", d.Input.Source)
	v.SetDefault("permissions.prompt", d.Permissions.Prompt)
	v.SetDefault("permissions.settings_url", d.Permissions.SettingsURL)
	v.SetDefault("menubar.tooltip", d.Menubar.Tooltip)
	v.SetDefault("menubar.status_label", d.Menubar.StatusLabel)
	v.SetDefault("menubar.show_activity", d.Menubar.ShowActivity)
	v.SetDefault("app.bundle", d.App.Bundle)
	v.SetDefault("app.name", d.App.Name)
	v.SetDefault("app.bundle_id", d.App.BundleID)
	v.SetDefault("logging.debug", d.Logging.Debug)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// Load reads the configuration from configPath (or the default location),
// applying a .env file next to it and ZOOMCTL_* environment overrides.
// A missing file is not an error unless the path was given explicitly.
func Load(configPath string) (*Config, error) {
	explicit := strings.TrimSpace(configPath) != ""
	path := GetConfigPath(configPath)

	if err := loadEnvFile(filepath.Join(filepath.Dir(path), EnvFileName)); err != nil {
		return nil, err
	}

	v := NewViper(path)
	cfg, err := read(v, path, explicit)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded config", "source", cfg.Source, "injector", cfg.Input.Injector, "source_backend", cfg.Input.Source)
	return cfg, nil
}

func read(v *viper.Viper, path string, explicit bool) (*Config, error) {
	source := DefaultsSource
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		source = path
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	} else if explicit {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded environment file", "path", path)
	return nil
}

// Validate checks value ranges and backend names
func (c *Config) Validate() error {
	if c.Zoom.Threshold < 0 {
		return fmt.Errorf("zoom.threshold must not be negative, got %v", c.Zoom.Threshold)
	}
	if c.Zoom.Debounce < 0 {
		return fmt.Errorf("zoom.debounce must not be negative, got %s", c.Zoom.Debounce)
	}
	if err := oneOf("input.injector", c.Input.Injector, validInjectors); err != nil {
		return err
	}
	if err := oneOf("input.source", c.Input.Source, validSources); err != nil {
		return err
	}
	if err := oneOf("logging.format", c.Logging.Format, validFormats); err != nil {
		return err
	}
	if c.Permissions.Prompt && strings.TrimSpace(c.Permissions.SettingsURL) == "" {
		return errors.New("permissions.settings_url must be set when permissions.prompt is enabled")
	}
	if c.App.Bundle {
		if strings.TrimSpace(c.App.Name) == "" {
			return errors.New("app.name must be set when app.bundle is enabled")
		}
		if strings.TrimSpace(c.App.BundleID) == "" {
			return errors.New("app.bundle_id must be set when app.bundle is enabled")
		}
	}
	return nil
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}

// SaveConfig writes the configuration as YAML with 2-space indentation
func (c *Config) SaveConfig(configPath string) error {
	configPath = GetConfigPath(configPath)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger.Debug("Saved config", "path", configPath, "size", len(data))
	return nil
}

// Marshal renders the configuration as YAML with 2-space indentation
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// SetValue sets a dotted key in the config file and saves it.
// The result is validated before anything is written.
func SetValue(configPath, key, value string) (*Config, error) {
	path := GetConfigPath(configPath)
	v := NewViper(path)

	if _, err := read(v, path, false); err != nil {
		return nil, err
	}
	if !v.IsSet(key) {
		return nil, fmt.Errorf("unknown config key %q", key)
	}

	v.Set(key, value)
	updated := &Config{}
	if err := v.Unmarshal(updated); err != nil {
		return nil, fmt.Errorf("failed to apply %s=%s: %w", key, value, err)
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	updated.Source = path
	if err := updated.SaveConfig(path); err != nil {
		return nil, err
	}
	return updated, nil
}
