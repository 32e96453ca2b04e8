// Package monitor delivers system-wide scroll-wheel events.
//
// Two sources exist on macOS: "tap", a listen-only Quartz event tap, and
// "hook", a libuiohook global hook. Other platforms build but every source
// reports domain.ErrUnsupported.
package monitor
