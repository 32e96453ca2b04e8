//go:build darwin

package monitor

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

var factories = map[string]func() (domain.ScrollSource, error){
	SourceTap: func() (domain.ScrollSource, error) {
		return NewTapSource(), nil
	},
	SourceHook: func() (domain.ScrollSource, error) {
		return NewHookSource(), nil
	},
}
