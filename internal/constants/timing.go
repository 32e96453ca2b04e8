package constants

import "time"

// ZoomTiming contains the defaults for the scroll-to-zoom translator
const (
	// Minimum spacing between two posted keystroke sequences
	ZoomDebounce = 50 * time.Millisecond

	// Scroll deltas with an absolute value at or below this are ignored
	ZoomScrollThreshold = 0.1
)

// PlatformTiming contains timeouts for calls out to macOS helpers
const (
	PermissionPromptTimeout = 5 * time.Minute  // The alert blocks until the user answers
	OpenSettingsTimeout     = 10 * time.Second // `open` returns as soon as the pane is requested
	SourceStopTimeout       = 2 * time.Second  // Wait for a scroll source to unwind on shutdown
	EventBridgeBufferSize   = 16               // Replayed zoom events for late subscribers
	EventBridgeChannelSize  = 64               // Per-subscriber channel capacity
)

// AccessibilitySettingsURL opens System Settings > Privacy & Security > Accessibility
const AccessibilitySettingsURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"
