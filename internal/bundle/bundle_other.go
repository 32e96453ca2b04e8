//go:build !darwin

package bundle

import (
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// Start is a no-op outside macOS
func Start(opts Options) bool {
	if opts.Enabled {
		logger.Debug("App bundle relaunch skipped on this platform")
	}
	return false
}
