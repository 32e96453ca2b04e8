package input

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// Provider creates key injectors for a specific posting backend
type Provider interface {
	// NewInjector creates a ready-to-use injector
	NewInjector() (domain.KeyInjector, error)

	// Info returns metadata about the backend
	Info() Info

	// IsAvailable returns true if the backend can post events on this system
	IsAvailable() bool
}

// Info contains metadata about a key injection backend
type Info struct {
	Name        string // "quartz", "robotgo"
	Description string
	UsesKeyCode bool // posts virtual key codes rather than key names
}
