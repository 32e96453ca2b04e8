//go:build darwin

package input

import (
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// Register the macOS providers; quartz is preferred by Detect
func init() {
	Register(NewQuartzProvider())
	Register(NewRobotgoProvider())
	logger.Debug("Registered macOS key injectors")
}
