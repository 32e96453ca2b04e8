package permission

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

const (
	ButtonCancel       = "Cancel"
	ButtonOpenSettings = "Open System Settings"
)

// AlertPrompter shows the permission modal with `osascript -e 'display alert ...'`
type AlertPrompter struct {
	Runner CommandRunner
}

var _ domain.Prompter = (*AlertPrompter)(nil)

// NewAlertPrompter creates a prompter backed by osascript
func NewAlertPrompter() *AlertPrompter {
	return &AlertPrompter{Runner: ExecRunner{}}
}

// Prompt blocks until the user picks a button or ctx expires
func (p *AlertPrompter) Prompt(ctx context.Context, title, message string) (domain.PromptAction, error) {
	out, err := p.Runner.Run(ctx, "osascript", "-e", alertScript(title, message))
	if err != nil {
		return domain.PromptCancel, fmt.Errorf("failed to show permission alert: %w", err)
	}
	return parseAlertResult(string(out))
}

func alertScript(title, message string) string {
	return fmt.Sprintf(
		`display alert %s message %s as warning buttons {%s, %s} default button %s`,
		appleScriptString(title),
		appleScriptString(message),
		appleScriptString(ButtonCancel),
		appleScriptString(ButtonOpenSettings),
		appleScriptString(ButtonOpenSettings),
	)
}

// appleScriptString quotes s as an AppleScript string literal
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// parseAlertResult reads osascript output such as "button returned:Cancel"
func parseAlertResult(out string) (domain.PromptAction, error) {
	const prefix = "button returned:"

	for _, field := range strings.Split(strings.TrimSpace(out), ",") {
		field = strings.TrimSpace(field)
		if !strings.HasPrefix(field, prefix) {
			continue
		}
		switch strings.TrimPrefix(field, prefix) {
		case ButtonOpenSettings:
			return domain.PromptOpenSettings, nil
		case ButtonCancel:
			return domain.PromptCancel, nil
		default:
			return domain.PromptCancel, fmt.Errorf("unexpected alert button %q", strings.TrimPrefix(field, prefix))
		}
	}
	return domain.PromptCancel, fmt.Errorf("unexpected alert output %q", strings.TrimSpace(out))
}
