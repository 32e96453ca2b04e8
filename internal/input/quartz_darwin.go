//go:build darwin

package input

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

static CGEventSourceRef newHIDSource() {
    return CGEventSourceCreate(kCGEventSourceStateHIDSystemState);
}

static void releaseSource(CGEventSourceRef src) {
    if (src != NULL) {
        CFRelease(src);
    }
}

// Returns 0 on success, -1 if the event could not be created.
static int postKey(CGEventSourceRef src, CGKeyCode key, bool down, CGEventFlags flags) {
    CGEventRef ev = CGEventCreateKeyboardEvent(src, key, down);
    if (ev == NULL) {
        return -1;
    }
    if (flags != 0) {
        CGEventSetFlags(ev, flags);
    }
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}
*/
import "C"

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// QuartzInjector posts virtual key codes through CGEventPost
type QuartzInjector struct {
	mu     sync.Mutex
	source C.CGEventSourceRef
	closed bool
}

var _ domain.KeyInjector = (*QuartzInjector)(nil)

// Post creates and posts one keyboard event to the HID event tap
func (q *QuartzInjector) Post(ctx context.Context, event domain.KeyEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return fmt.Errorf("quartz injector is closed")
	}

	rc := C.postKey(q.source, C.CGKeyCode(event.Key), C.bool(event.Down), C.CGEventFlags(event.Flags.CGFlags()))
	if rc != 0 {
		return fmt.Errorf("%w: key %s", domain.ErrEventCreate, event)
	}
	return nil
}

func (q *QuartzInjector) Name() string {
	return "quartz"
}

// Close releases the event source
func (q *QuartzInjector) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		C.releaseSource(q.source)
		q.closed = true
	}
	return nil
}

// QuartzProvider implements Provider using Core Graphics events
type QuartzProvider struct{}

var _ Provider = (*QuartzProvider)(nil)

func NewQuartzProvider() *QuartzProvider {
	return &QuartzProvider{}
}

// NewInjector creates an injector with an HID-system-state event source.
// A NULL source is allowed: events are then posted without one.
func (p *QuartzProvider) NewInjector() (domain.KeyInjector, error) {
	return &QuartzInjector{source: C.newHIDSource()}, nil
}

func (p *QuartzProvider) Info() Info {
	return Info{
		Name:        "quartz",
		Description: "Core Graphics keyboard events posted to the HID event tap",
		UsesKeyCode: true,
	}
}

func (p *QuartzProvider) IsAvailable() bool {
	return runtime.GOOS == "darwin"
}
