package menubar

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	zap "go.uber.org/zap"
)

const (
	SettingsTitle = "Accessibility Settings…"
	QuitTitle     = "Quit"
	IdleStatus    = "No zoom yet"
)

// Options configures the status menu
type Options struct {
	Tooltip      string
	StatusLabel  string
	ShowActivity bool

	// Activity delivers zoom events for the status line
	Activity <-chan domain.ZoomEvent

	OnOpenSettings func(ctx context.Context)
	OnQuit         func()
}

// Menu owns the status item and its menu
type Menu struct {
	tray Tray
	opts Options

	mu       sync.Mutex
	status   MenuItem
	settings MenuItem
	quit     MenuItem
	total    int
	quitOnce sync.Once
}

// New creates a menu on tray
func New(tray Tray, opts Options) *Menu {
	return &Menu{tray: tray, opts: opts}
}

// Run shows the status item and blocks until Quit. onReady runs after the
// menu has been built, on the tray's thread.
func (m *Menu) Run(ctx context.Context, onReady func()) {
	m.tray.Run(func() {
		m.build(ctx)
		if onReady != nil {
			onReady()
		}
	}, func() {
		logger.L(ctx).Debug("Menu bar exited")
	})
}

// Quit removes the status item and makes Run return
func (m *Menu) Quit() {
	m.quitOnce.Do(m.tray.Quit)
}

func (m *Menu) build(ctx context.Context) {
	log := logger.L(ctx)

	icon, err := TemplateIcon()
	if err != nil {
		log.Warn("Menu bar icon unavailable", zap.Error(err))
	} else {
		m.tray.SetTemplateIcon(icon, icon)
	}
	m.tray.SetTooltip(m.opts.Tooltip)

	label := m.tray.AddMenuItem(m.opts.StatusLabel, "")
	label.Disable()

	m.mu.Lock()
	if m.opts.ShowActivity {
		m.status = m.tray.AddMenuItem(IdleStatus, "")
		m.status.Disable()
	}
	m.tray.AddSeparator()
	m.settings = m.tray.AddMenuItem(SettingsTitle, "Open Privacy & Security > Accessibility")
	m.tray.AddSeparator()
	m.quit = m.tray.AddMenuItem(QuitTitle, "")
	settings, quit := m.settings, m.quit
	m.mu.Unlock()

	go m.handleClicks(ctx, settings.Clicked(), quit.Clicked())
	if m.opts.ShowActivity && m.opts.Activity != nil {
		go m.trackActivity(ctx, m.opts.Activity)
	}

	log.Debug("Menu bar ready", zap.Bool("activity", m.opts.ShowActivity))
}

func (m *Menu) handleClicks(ctx context.Context, settings, quit <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-settings:
			if !ok {
				return
			}
			if m.opts.OnOpenSettings != nil {
				m.opts.OnOpenSettings(ctx)
			}
		case _, ok := <-quit:
			if !ok {
				return
			}
			logger.L(ctx).Info("Quit requested from menu bar")
			if m.opts.OnQuit != nil {
				m.opts.OnQuit()
			}
			m.Quit()
			return
		}
	}
}

func (m *Menu) trackActivity(ctx context.Context, events <-chan domain.ZoomEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.record(ev)
		}
	}
}

func (m *Menu) record(ev domain.ZoomEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	if m.status != nil {
		m.status.SetTitle(ActivityTitle(ev, m.total))
	}
}

// ActivityTitle renders the status line, e.g. "Last zoom: in · 3 total"
func ActivityTitle(last domain.ZoomEvent, total int) string {
	dir := last.Direction.String()
	if last.Err != nil {
		dir += " (failed)"
	}
	return fmt.Sprintf("Last zoom: %s · %d total", dir, total)
}
