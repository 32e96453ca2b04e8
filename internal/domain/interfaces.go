package domain

import (
	"context"
)

// ScrollHandler receives scroll events from a ScrollSource.
// It must not block: sources call it on the OS event delivery thread.
type ScrollHandler func(ctx context.Context, event ScrollEvent)

// ScrollSource delivers system-wide scroll-wheel events until ctx is cancelled
type ScrollSource interface {
	// Stream blocks until ctx is done or the source fails
	Stream(ctx context.Context, handle ScrollHandler) error

	// Name returns the registered backend name ("tap", "hook")
	Name() string
}

// KeyInjector posts synthetic keyboard events to the OS HID event tap
type KeyInjector interface {
	// Post emits a single key event. Posting is fire-and-forget: a nil error
	// only means the event was handed to the OS.
	Post(ctx context.Context, event KeyEvent) error

	// Name returns the registered backend name ("quartz", "robotgo")
	Name() string

	// Close releases any resources held by the injector
	Close() error
}

// TrustChecker reports whether the process holds accessibility trust
type TrustChecker interface {
	IsTrusted() (bool, error)
}

// Prompter presents the blocking accessibility permission modal
type Prompter interface {
	// Prompt returns the action chosen by the user
	Prompt(ctx context.Context, title, message string) (PromptAction, error)
}

// SettingsOpener navigates to an OS settings pane
type SettingsOpener interface {
	Open(ctx context.Context, url string) error
}

// PromptAction is the button chosen in the permission modal
type PromptAction int

const (
	PromptCancel       PromptAction = iota // Continue without permission
	PromptOpenSettings                     // Open the accessibility pane and continue
)

// String returns the string representation of a prompt action
func (a PromptAction) String() string {
	switch a {
	case PromptOpenSettings:
		return "open_settings"
	default:
		return "cancel"
	}
}

// ZoomPublisher receives zoom activity
type ZoomPublisher interface {
	Publish(event ZoomEvent)
}
