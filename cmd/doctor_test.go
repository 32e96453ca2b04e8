package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/zoomctl/zoomctl/config"
	permission "github.com/zoomctl/zoomctl/internal/permission"
	ui "github.com/zoomctl/zoomctl/internal/ui"
)

type staticChecker struct{ trusted bool }

func (s staticChecker) IsTrusted() (bool, error) { return s.trusted, nil }

func TestCollectDoctorReport(t *testing.T) {
	cfg := config.DefaultConfig()
	gate := permission.NewGate(permission.Options{Checker: staticChecker{trusted: true}})

	report := collectDoctorReport(context.Background(), cfg, gate)

	assert.Equal(t, permission.StatusGranted, report.Accessibility)
	assert.Equal(t, config.DefaultsSource, report.ConfigSource)
	require.Len(t, report.Sources, 2)
	assert.Equal(t, "tap", report.Sources[0].Name)
	assert.True(t, report.Sources[0].Selected)
	assert.Equal(t, cfg.Zoom, report.Zoom)
}

func TestRenderDoctorReport(t *testing.T) {
	report := doctorReport{
		Platform:      "darwin/arm64",
		ConfigSource:  "/tmp/config.yaml",
		Accessibility: permission.StatusDenied,
		Injectors: []backendStatus{
			{Name: "quartz", Available: true, Selected: true},
			{Name: "robotgo", Available: true},
		},
		Sources: []backendStatus{
			{Name: "tap", Available: true, Selected: true},
			{Name: "hook", Detail: "not supported"},
		},
		Zoom: config.ZoomConfig{Threshold: 0.1, Debounce: 50 * time.Millisecond},
	}

	out := renderDoctorReport(report, ui.NewStyles())

	for _, want := range []string{
		"darwin/arm64",
		"/tmp/config.yaml",
		"denied",
		"Privacy & Security > Accessibility",
		"quartz",
		"available, selected",
		"hook",
		"(not supported)",
		"0.1",
		"50ms",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderDoctorReport_NoInjectors(t *testing.T) {
	out := renderDoctorReport(doctorReport{Accessibility: permission.StatusUnavailable}, ui.NewStyles())
	assert.Contains(t, out, "no backends registered")
	assert.Contains(t, out, "unavailable")
}
