//go:build darwin

package monitor

/*
#cgo darwin CFLAGS: -x objective-c
#cgo darwin LDFLAGS: -framework CoreGraphics -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdint.h>

extern CGEventRef goHandleScroll(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *userInfo);

static CFRunLoopSourceRef startScrollTap(uintptr_t handle, CFMachPortRef *tapOut) {
        CGEventMask mask = ((CGEventMask)1) << kCGEventScrollWheel;
        CFMachPortRef tap = CGEventTapCreate(kCGSessionEventTap,
                                             kCGHeadInsertEventTap,
                                             kCGEventTapOptionListenOnly,
                                             mask,
                                             goHandleScroll,
                                             (void *)handle);
        if (tap == NULL) {
                return NULL;
        }
        CGEventTapEnable(tap, true);
        CFRunLoopSourceRef source = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, tap, 0);
        *tapOut = tap;
        return source;
}

static void enableTap(CFMachPortRef tap) {
        if (tap != NULL) {
                CGEventTapEnable(tap, true);
        }
}

static CFRunLoopRef currentRunLoop(void) {
        return CFRunLoopGetCurrent();
}

static void addSourceToRunLoop(CFRunLoopRef loop, CFRunLoopSourceRef source) {
        CFRunLoopAddSource(loop, source, kCFRunLoopCommonModes);
}

static void runCurrentRunLoop(void) {
        CFRunLoopRun();
}

static void stopRunLoop(CFRunLoopRef loop) {
        CFRunLoopStop(loop);
}

static double scrollDeltaY(CGEventRef event) {
        return CGEventGetDoubleValueField(event, kCGScrollWheelEventFixedPtDeltaAxis1);
}

static uint64_t eventFlags(CGEventRef event) {
        return (uint64_t)CGEventGetFlags(event);
}
*/
import "C"

import (
	"context"
	"errors"
	"runtime"
	"runtime/cgo"
	"sync"
	"time"
	"unsafe"

	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

// ErrTapCreate is returned when the OS refuses to install the event tap,
// usually because accessibility permission is missing
var ErrTapCreate = errors.New("failed to create scroll event tap")

// TapSource listens for scroll-wheel events with a listen-only Quartz event tap
type TapSource struct {
	now func() time.Time
}

var _ domain.ScrollSource = (*TapSource)(nil)

func NewTapSource() *TapSource {
	return &TapSource{now: time.Now}
}

func (s *TapSource) Name() string {
	return SourceTap
}

type tapStream struct {
	ctx    context.Context
	handle domain.ScrollHandler
	now    func() time.Time
	tap    C.CFMachPortRef
}

// Stream installs the tap on a dedicated OS thread and runs its run loop
// until ctx is done.
func (s *TapSource) Stream(ctx context.Context, handle domain.ScrollHandler) error {
	if ctx == nil {
		ctx = context.Background()
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	stream := &tapStream{ctx: ctx, handle: handle, now: s.now}
	h := cgo.NewHandle(stream)
	defer h.Delete()

	var tap C.CFMachPortRef
	source := C.startScrollTap(C.uintptr_t(h), &tap)
	if source == 0 {
		return ErrTapCreate
	}
	defer C.CFRelease(C.CFTypeRef(source))
	defer C.CFRelease(C.CFTypeRef(tap))
	stream.tap = tap

	loop := C.currentRunLoop()
	var stopOnce sync.Once
	stop := func() {
		stopOnce.Do(func() {
			C.stopRunLoop(loop)
		})
	}
	C.addSourceToRunLoop(loop, source)

	stopped := make(chan struct{})
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		select {
		case <-ctx.Done():
			stop()
		case <-stopped:
		}
	}()

	logger.L(ctx).Debug("Scroll event tap installed")
	C.runCurrentRunLoop()
	stop()
	close(stopped)
	<-watcherDone

	return ctx.Err()
}

//export goHandleScroll
func goHandleScroll(_ C.CGEventTapProxy, eventType C.CGEventType, event C.CGEventRef, userInfo unsafe.Pointer) C.CGEventRef {
	stream, ok := cgo.Handle(uintptr(userInfo)).Value().(*tapStream)
	if !ok {
		return event
	}

	switch eventType {
	case C.kCGEventTapDisabledByTimeout, C.kCGEventTapDisabledByUserInput:
		logger.L(stream.ctx).Warn("Scroll event tap disabled by the system, re-enabling")
		C.enableTap(stream.tap)
	case C.kCGEventScrollWheel:
		stream.handle(stream.ctx, scrollFromTap(
			float64(C.scrollDeltaY(event)),
			uint64(C.eventFlags(event)),
			stream.now(),
		))
	}

	return event
}
