package permission

import (
	"context"
	"fmt"
	"runtime"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// OpenOpener hands a URL to LaunchServices with the `open` command
type OpenOpener struct {
	Runner CommandRunner
	GOOS   string
}

var _ domain.SettingsOpener = (*OpenOpener)(nil)

func NewOpenOpener() *OpenOpener {
	return &OpenOpener{Runner: ExecRunner{}, GOOS: runtime.GOOS}
}

func (o *OpenOpener) Open(ctx context.Context, url string) error {
	if o.GOOS != "darwin" {
		return fmt.Errorf("system settings: %w", domain.ErrUnsupported)
	}
	if _, err := o.Runner.Run(ctx, "open", url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
