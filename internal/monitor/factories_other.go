//go:build !darwin

package monitor

import (
	"fmt"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

func unsupported(name string) func() (domain.ScrollSource, error) {
	return func() (domain.ScrollSource, error) {
		return nil, fmt.Errorf("scroll source %q: %w", name, domain.ErrUnsupported)
	}
}

var factories = map[string]func() (domain.ScrollSource, error){
	SourceTap:  unsupported(SourceTap),
	SourceHook: unsupported(SourceHook),
}
