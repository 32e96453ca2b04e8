package monitor

import (
	"fmt"
	"sort"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

const (
	SourceTap  = "tap"
	SourceHook = "hook"
)

// Names returns the known source names in preference order
func Names() []string {
	return []string{SourceTap, SourceHook}
}

// New returns the named scroll source
func New(name string) (domain.ScrollSource, error) {
	factory, ok := factories[name]
	if !ok {
		known := make([]string, 0, len(factories))
		for n := range factories {
			known = append(known, n)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("scroll source %q (known: %v): %w", name, known, domain.ErrUnknownProvider)
	}
	return factory()
}
