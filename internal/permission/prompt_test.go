package permission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

type fakeRunner struct {
	out  string
	err  error
	name string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return []byte(f.out), f.err
}

func TestAlertPrompter_Prompt(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		runErr   error
		expected domain.PromptAction
		wantErr  bool
	}{
		{name: "open settings", out: "button returned:Open System Settings\n", expected: domain.PromptOpenSettings},
		{name: "cancel", out: "button returned:Cancel\n", expected: domain.PromptCancel},
		{name: "extra fields", out: "button returned:Open System Settings, gave up:false\n", expected: domain.PromptOpenSettings},
		{name: "unknown button", out: "button returned:Later\n", expected: domain.PromptCancel, wantErr: true},
		{name: "garbage", out: "", expected: domain.PromptCancel, wantErr: true},
		{name: "osascript failure", runErr: errors.New("exit status 1"), expected: domain.PromptCancel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: tt.out, err: tt.runErr}
			p := &AlertPrompter{Runner: runner}

			action, err := p.Prompt(context.Background(), "Title", "Message")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, action)

			assert.Equal(t, "osascript", runner.name)
			require.Len(t, runner.args, 2)
			assert.Equal(t, "-e", runner.args[0])
		})
	}
}

func TestAlertScript(t *testing.T) {
	script := alertScript(`Say "hi"`, `a\b`)

	assert.Equal(t,
		`display alert "Say \"hi\"" message "a\\b" as warning buttons {"Cancel", "Open System Settings"} default button "Open System Settings"`,
		script)
}

func TestOpenOpener(t *testing.T) {
	runner := &fakeRunner{}
	o := &OpenOpener{Runner: runner, GOOS: "darwin"}

	require.NoError(t, o.Open(context.Background(), "x-apple.systempreferences:pane"))
	assert.Equal(t, "open", runner.name)
	assert.Equal(t, []string{"x-apple.systempreferences:pane"}, runner.args)

	failing := &OpenOpener{Runner: &fakeRunner{err: errors.New("no handler")}, GOOS: "darwin"}
	err := failing.Open(context.Background(), "x-apple.systempreferences:pane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")

	linux := &OpenOpener{Runner: runner, GOOS: "linux"}
	assert.ErrorIs(t, linux.Open(context.Background(), "x"), domain.ErrUnsupported)
}
