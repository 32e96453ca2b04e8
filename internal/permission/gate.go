package permission

import (
	"context"
	"errors"

	constants "github.com/zoomctl/zoomctl/internal/constants"
	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	zap "go.uber.org/zap"
)

const (
	PromptTitle   = "Accessibility Permission Required"
	PromptMessage = "Please grant accessibility permission in System Settings > Privacy & Security > Accessibility"
)

// Status is the accessibility trust state observed at startup
type Status int

const (
	StatusUnavailable Status = iota
	StatusGranted
	StatusDenied
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusGranted:
		return "granted"
	case StatusDenied:
		return "denied"
	default:
		return "unavailable"
	}
}

// Result records what the gate observed and did
type Result struct {
	Status         Status
	Prompted       bool // set once the modal was attempted, even if it failed
	PromptFailed   bool
	Action         domain.PromptAction
	OpenedSettings bool
}

// Options configures a Gate
type Options struct {
	Checker     domain.TrustChecker
	Prompter    domain.Prompter
	Opener      domain.SettingsOpener
	Prompt      bool
	SettingsURL string
}

// Gate checks accessibility trust once at startup and optionally asks the
// user to grant it. It never fails: every problem is logged and startup
// continues without the capability.
type Gate struct {
	checker     domain.TrustChecker
	prompter    domain.Prompter
	opener      domain.SettingsOpener
	prompt      bool
	settingsURL string
}

// NewGate creates a gate; a missing settings URL falls back to the
// accessibility pane
func NewGate(opts Options) *Gate {
	url := opts.SettingsURL
	if url == "" {
		url = constants.AccessibilitySettingsURL
	}
	return &Gate{
		checker:     opts.Checker,
		prompter:    opts.Prompter,
		opener:      opts.Opener,
		prompt:      opts.Prompt,
		settingsURL: url,
	}
}

// Check queries the trust state without prompting
func (g *Gate) Check(ctx context.Context) Status {
	if g.checker == nil {
		return StatusUnavailable
	}

	trusted, err := g.checker.IsTrusted()
	switch {
	case err != nil:
		level := zap.WarnLevel
		if errors.Is(err, domain.ErrUnsupported) {
			level = zap.DebugLevel
		}
		logger.L(ctx).Check(level, "Accessibility trust state unavailable").Write(zap.Error(err))
		return StatusUnavailable
	case trusted:
		return StatusGranted
	default:
		return StatusDenied
	}
}

// Run performs the startup check and, when untrusted, the one-time prompt
func (g *Gate) Run(ctx context.Context) Result {
	log := logger.L(ctx)

	result := Result{Status: g.Check(ctx)}
	if result.Status != StatusDenied {
		log.Info("Accessibility check complete", zap.Stringer("status", result.Status))
		return result
	}

	log.Warn("Accessibility permission not granted; zoom keystrokes will not be delivered")
	if !g.prompt || g.prompter == nil {
		return result
	}

	promptCtx, cancel := context.WithTimeout(ctx, constants.PermissionPromptTimeout)
	defer cancel()

	action, err := g.prompter.Prompt(promptCtx, PromptTitle, PromptMessage)
	result.Prompted = true
	if err != nil {
		result.PromptFailed = true
		log.Warn("Permission prompt failed", zap.Error(err))
		return result
	}
	result.Action = action
	log.Info("Permission prompt answered", zap.Stringer("action", action))

	if action == domain.PromptOpenSettings {
		if err := g.OpenSettings(ctx); err != nil {
			log.Warn("Failed to open accessibility settings", zap.String("url", g.settingsURL), zap.Error(err))
		} else {
			result.OpenedSettings = true
		}
	}

	return result
}

// OpenSettings navigates to the accessibility privacy pane
func (g *Gate) OpenSettings(ctx context.Context) error {
	if g.opener == nil {
		return domain.ErrUnsupported
	}

	openCtx, cancel := context.WithTimeout(ctx, constants.OpenSettingsTimeout)
	defer cancel()

	return g.opener.Open(openCtx, g.settingsURL)
}
