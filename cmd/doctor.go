package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	cobra "github.com/spf13/cobra"
	config "github.com/zoomctl/zoomctl/config"
	domain "github.com/zoomctl/zoomctl/internal/domain"
	input "github.com/zoomctl/zoomctl/internal/input"
	monitor "github.com/zoomctl/zoomctl/internal/monitor"
	permission "github.com/zoomctl/zoomctl/internal/permission"
	ui "github.com/zoomctl/zoomctl/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check permissions and available backends",
	Long: `Report the accessibility trust state, the key injectors and scroll sources
usable on this system, and the configuration in effect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig(cmd)
		if err != nil {
			return err
		}

		gate := permission.NewGate(permission.Options{Checker: permission.AXChecker{}})
		report := collectDoctorReport(cmd.Context(), cfg, gate)
		fmt.Fprint(cmd.OutOrStdout(), renderDoctorReport(report, ui.NewStyles()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

type backendStatus struct {
	Name      string
	Available bool
	Selected  bool
	Detail    string
}

type doctorReport struct {
	Platform      string
	ConfigSource  string
	Accessibility permission.Status
	Injectors     []backendStatus
	Sources       []backendStatus
	Zoom          config.ZoomConfig
}

func collectDoctorReport(ctx context.Context, cfg *config.Config, gate *permission.Gate) doctorReport {
	if ctx == nil {
		ctx = context.Background()
	}

	report := doctorReport{
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		ConfigSource:  cfg.Source,
		Accessibility: gate.Check(ctx),
		Zoom:          cfg.Zoom,
	}

	for _, p := range input.Providers() {
		info := p.Info()
		report.Injectors = append(report.Injectors, backendStatus{
			Name:      info.Name,
			Available: p.IsAvailable(),
			Selected:  info.Name == cfg.Input.Injector,
			Detail:    info.Description,
		})
	}

	for _, name := range monitor.Names() {
		status := backendStatus{Name: name, Selected: name == cfg.Input.Source}
		if _, err := monitor.New(name); err != nil {
			status.Detail = err.Error()
			if errors.Is(err, domain.ErrUnsupported) {
				status.Detail = "not supported on " + runtime.GOOS
			}
		} else {
			status.Available = true
		}
		report.Sources = append(report.Sources, status)
	}

	return report
}

func renderDoctorReport(r doctorReport, s *ui.Styles) string {
	var b strings.Builder

	b.WriteString(s.Header.Render("zoomctl doctor") + "\n\n")
	b.WriteString(s.Line(ui.LevelInfo, "platform", r.Platform, "") + "\n")
	b.WriteString(s.Line(ui.LevelInfo, "config", r.ConfigSource, "") + "\n")

	switch r.Accessibility {
	case permission.StatusGranted:
		b.WriteString(s.Line(ui.LevelOK, "accessibility", "granted", "") + "\n")
	case permission.StatusDenied:
		b.WriteString(s.Line(ui.LevelWarn, "accessibility", "denied", "System Settings > Privacy & Security > Accessibility") + "\n")
	default:
		b.WriteString(s.Line(ui.LevelError, "accessibility", "unavailable", "") + "\n")
	}

	b.WriteString(s.Line(ui.LevelInfo, "threshold", fmt.Sprintf("%g", r.Zoom.Threshold), "") + "\n")
	b.WriteString(s.Line(ui.LevelInfo, "debounce", r.Zoom.Debounce.String(), "") + "\n")

	b.WriteString("\n" + s.Header.Render("Key injectors") + "\n")
	writeBackends(&b, s, r.Injectors)

	b.WriteString("\n" + s.Header.Render("Scroll sources") + "\n")
	writeBackends(&b, s, r.Sources)

	return b.String()
}

func writeBackends(b *strings.Builder, s *ui.Styles, backends []backendStatus) {
	if len(backends) == 0 {
		b.WriteString(s.Line(ui.LevelError, "none", "no backends registered on "+runtime.GOOS, "") + "\n")
		return
	}

	for _, be := range backends {
		level := ui.LevelError
		value := "unavailable"
		if be.Available {
			level = ui.LevelOK
			value = "available"
		}
		if be.Selected {
			value += ", selected"
		}
		b.WriteString(s.Line(level, be.Name, value, be.Detail) + "\n")
	}
}
