//go:build darwin

package bundle

import (
	macgo "github.com/tmc/macgo"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// Start configures macgo and relaunches inside the bundle when needed.
// It returns true when the current process is already running from a bundle.
func Start(opts Options) bool {
	if !opts.Enabled {
		return macgo.IsInAppBundle()
	}

	macgo.WithAppName(opts.Name)
	macgo.WithBundleID(opts.BundleID)
	macgo.WithPlistEntry("LSUIElement", true)
	macgo.Start()

	inBundle := macgo.IsInAppBundle()
	logger.Debug("App bundle configured", "name", opts.Name, "bundle_id", opts.BundleID, "in_bundle", inBundle)
	return inBundle
}
