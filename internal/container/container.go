package container

import (
	"errors"
	"fmt"

	config "github.com/zoomctl/zoomctl/config"
	domain "github.com/zoomctl/zoomctl/internal/domain"
	events "github.com/zoomctl/zoomctl/internal/events"
	input "github.com/zoomctl/zoomctl/internal/input"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	menubar "github.com/zoomctl/zoomctl/internal/menubar"
	monitor "github.com/zoomctl/zoomctl/internal/monitor"
	permission "github.com/zoomctl/zoomctl/internal/permission"
	zoom "github.com/zoomctl/zoomctl/internal/zoom"
)

// ServiceContainer manages all application dependencies
type ServiceContainer struct {
	config *config.Config

	// Permission gate
	checker  domain.TrustChecker
	prompter domain.Prompter
	opener   domain.SettingsOpener
	gate     *permission.Gate

	// Input pipeline
	source     domain.ScrollSource
	injector   domain.KeyInjector
	translator *zoom.Translator
	bridge     *events.Bridge

	// Menu bar
	tray menubar.Tray
}

// Option overrides a dependency before the container wires the rest
type Option func(*ServiceContainer)

func WithTrustChecker(checker domain.TrustChecker) Option {
	return func(c *ServiceContainer) { c.checker = checker }
}

func WithPrompter(prompter domain.Prompter) Option {
	return func(c *ServiceContainer) { c.prompter = prompter }
}

func WithSettingsOpener(opener domain.SettingsOpener) Option {
	return func(c *ServiceContainer) { c.opener = opener }
}

func WithScrollSource(source domain.ScrollSource) Option {
	return func(c *ServiceContainer) { c.source = source }
}

func WithKeyInjector(injector domain.KeyInjector) Option {
	return func(c *ServiceContainer) { c.injector = injector }
}

func WithTray(tray menubar.Tray) Option {
	return func(c *ServiceContainer) { c.tray = tray }
}

// NewServiceContainer creates a new service container with all dependencies
func NewServiceContainer(cfg *config.Config, opts ...Option) (*ServiceContainer, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	container := &ServiceContainer{
		config: cfg,
	}
	for _, opt := range opts {
		opt(container)
	}

	container.initializePermission()
	if err := container.initializeInput(); err != nil {
		return nil, err
	}
	if err := container.initializeZoom(); err != nil {
		_ = container.injector.Close()
		return nil, err
	}
	container.initializeMenubar()

	return container, nil
}

// initializePermission creates the accessibility gate
func (c *ServiceContainer) initializePermission() {
	if c.checker == nil {
		c.checker = permission.AXChecker{}
	}
	if c.prompter == nil {
		c.prompter = permission.NewAlertPrompter()
	}
	if c.opener == nil {
		c.opener = permission.NewOpenOpener()
	}

	c.gate = permission.NewGate(permission.Options{
		Checker:     c.checker,
		Prompter:    c.prompter,
		Opener:      c.opener,
		Prompt:      c.config.Permissions.Prompt,
		SettingsURL: c.config.Permissions.SettingsURL,
	})
}

// initializeInput selects the scroll source and key injector backends
func (c *ServiceContainer) initializeInput() error {
	if c.source == nil {
		source, err := monitor.New(c.config.Input.Source)
		if err != nil {
			return fmt.Errorf("failed to create scroll source: %w", err)
		}
		c.source = source
	}

	if c.injector == nil {
		injector, err := input.New(c.config.Input.Injector)
		if err != nil {
			return fmt.Errorf("failed to create key injector: %w", err)
		}
		c.injector = injector
	}

	logger.Debug("Input backends selected", "source", c.source.Name(), "injector", c.injector.Name())
	return nil
}

// initializeZoom creates the activity bridge and the translator
func (c *ServiceContainer) initializeZoom() error {
	c.bridge = events.NewBridge()

	translator, err := zoom.NewTranslator(zoom.Options{
		Threshold: c.config.Zoom.Threshold,
		Debounce:  c.config.Zoom.Debounce,
		Injector:  c.injector,
		Publisher: c.bridge,
	})
	if err != nil {
		c.bridge.Close()
		return fmt.Errorf("failed to create translator: %w", err)
	}
	c.translator = translator
	return nil
}

func (c *ServiceContainer) initializeMenubar() {
	if c.tray == nil {
		c.tray = menubar.SystrayTray{}
	}
}

// Close releases the injector and closes the activity bridge
func (c *ServiceContainer) Close() error {
	c.bridge.Close()
	if err := c.injector.Close(); err != nil {
		return fmt.Errorf("failed to close key injector: %w", err)
	}
	return nil
}

func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

func (c *ServiceContainer) GetGate() *permission.Gate {
	return c.gate
}

func (c *ServiceContainer) GetScrollSource() domain.ScrollSource {
	return c.source
}

func (c *ServiceContainer) GetKeyInjector() domain.KeyInjector {
	return c.injector
}

func (c *ServiceContainer) GetTranslator() *zoom.Translator {
	return c.translator
}

func (c *ServiceContainer) GetBridge() *events.Bridge {
	return c.bridge
}

func (c *ServiceContainer) GetTray() menubar.Tray {
	return c.tray
}
