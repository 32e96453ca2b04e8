//go:build darwin

package monitor

import (
	"context"
	"sync"

	hook "github.com/robotn/gohook"
	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// hookMu serializes global hooks; libuiohook supports one per process
var hookMu sync.Mutex

// HookSource listens for wheel events with the gohook global hook
type HookSource struct{}

var _ domain.ScrollSource = (*HookSource)(nil)

func NewHookSource() *HookSource {
	return &HookSource{}
}

func (s *HookSource) Name() string {
	return SourceHook
}

// Stream starts the global hook and forwards wheel events until ctx is done
func (s *HookSource) Stream(ctx context.Context, handle domain.ScrollHandler) error {
	hookMu.Lock()
	defer hookMu.Unlock()

	events := hook.Start()
	defer hook.End()

	logger.L(ctx).Debug("Global scroll hook started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Kind != hook.MouseWheel {
				continue
			}
			handle(ctx, scrollFromHook(ev.Rotation, ev.Mask, ev.When))
		}
	}
}
