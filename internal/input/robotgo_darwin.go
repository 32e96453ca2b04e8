//go:build darwin

package input

import (
	"context"
	"fmt"
	"runtime"

	robotgo "github.com/go-vgo/robotgo"
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// RobotgoInjector posts keys by name through robotgo
type RobotgoInjector struct{}

var _ domain.KeyInjector = (*RobotgoInjector)(nil)

// Post toggles one key, attaching the event's modifiers
func (r *RobotgoInjector) Post(ctx context.Context, event domain.KeyEvent) error {
	key, args := toggleArgs(event)
	if err := robotgo.KeyToggle(key, args...); err != nil {
		return fmt.Errorf("failed to toggle key %s: %w", event, err)
	}
	return nil
}

func (r *RobotgoInjector) Name() string {
	return "robotgo"
}

// Close is a no-op; robotgo holds no per-injector state
func (r *RobotgoInjector) Close() error {
	return nil
}

// RobotgoProvider implements Provider using RobotGo
type RobotgoProvider struct{}

var _ Provider = (*RobotgoProvider)(nil)

func NewRobotgoProvider() *RobotgoProvider {
	return &RobotgoProvider{}
}

func (p *RobotgoProvider) NewInjector() (domain.KeyInjector, error) {
	return &RobotgoInjector{}, nil
}

func (p *RobotgoProvider) Info() Info {
	return Info{
		Name:        "robotgo",
		Description: "RobotGo key toggles by key name",
		UsesKeyCode: false,
	}
}

func (p *RobotgoProvider) IsAvailable() bool {
	return runtime.GOOS == "darwin"
}
