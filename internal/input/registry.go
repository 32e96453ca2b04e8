package input

import (
	"fmt"
	"sync"

	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// Registry manages key injection providers
type Registry struct {
	providers []Provider
	mu        sync.RWMutex
}

var (
	globalRegistry = &Registry{
		providers: make([]Provider, 0),
	}
)

// Register adds a provider to the global registry.
// This is called from init() in the platform files.
func Register(provider Provider) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = append(globalRegistry.providers, provider)
}

// Detect returns the first available provider.
// Priority is determined by registration order.
func Detect() (Provider, error) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	for _, p := range globalRegistry.providers {
		if p.IsAvailable() {
			return p, nil
		}
	}

	return nil, fmt.Errorf("no usable key injector (tried %d providers): %w", len(globalRegistry.providers), domain.ErrUnsupported)
}

// Providers returns all registered providers
func Providers() []Provider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	providers := make([]Provider, len(globalRegistry.providers))
	copy(providers, globalRegistry.providers)
	return providers
}

// Get returns the provider registered under name
func Get(name string) (Provider, error) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	for _, p := range globalRegistry.providers {
		if p.Info().Name == name {
			return p, nil
		}
	}

	return nil, fmt.Errorf("key injector %q: %w", name, domain.ErrUnknownProvider)
}

// New creates an injector from the named provider, or from the first
// available one when name is empty.
func New(name string) (domain.KeyInjector, error) {
	var (
		p   Provider
		err error
	)
	if name == "" {
		p, err = Detect()
	} else {
		p, err = Get(name)
	}
	if err != nil {
		return nil, err
	}

	if !p.IsAvailable() {
		return nil, fmt.Errorf("key injector %q is not available on this system: %w", p.Info().Name, domain.ErrUnsupported)
	}

	inj, err := p.NewInjector()
	if err != nil {
		return nil, fmt.Errorf("failed to create %s injector: %w", p.Info().Name, err)
	}

	logger.Debug("Created key injector", "injector", inj.Name())
	return inj, nil
}

// ClearProviders removes all registered providers (primarily for testing)
func ClearProviders() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = make([]Provider, 0)
}
