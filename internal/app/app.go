package app

import (
	"context"
	"errors"
	"sync"
	"time"

	constants "github.com/zoomctl/zoomctl/internal/constants"
	container "github.com/zoomctl/zoomctl/internal/container"
	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	menubar "github.com/zoomctl/zoomctl/internal/menubar"
	permission "github.com/zoomctl/zoomctl/internal/permission"
	zap "go.uber.org/zap"
)

// App owns the process lifecycle: permission gate, menu bar and the
// scroll-to-zoom pipeline
type App struct {
	services *container.ServiceContainer
	menu     *menubar.Menu

	mu      sync.Mutex
	cancel  context.CancelFunc
	result  permission.Result
	started bool
	running bool

	sourceDone   chan struct{}
	shutdownOnce sync.Once
	shutdownErr  error
}

// New creates an application from a wired container
func New(services *container.ServiceContainer) *App {
	return &App{
		services:   services,
		sourceDone: make(chan struct{}),
	}
}

// Run performs the permission gate, shows the menu bar and starts listening
// for scroll events. It blocks until the menu bar quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		cancel()
		return errors.New("app already started")
	}
	a.started = true
	a.cancel = cancel
	a.mu.Unlock()

	log := logger.L(ctx)
	cfg := a.services.GetConfig()
	gate := a.services.GetGate()
	bridge := a.services.GetBridge()

	result := gate.Run(ctx)
	a.mu.Lock()
	a.result = result
	a.mu.Unlock()

	var activity <-chan domain.ZoomEvent
	if cfg.Menubar.ShowActivity {
		activity = bridge.Subscribe()
	}
	go a.logActivity(ctx, bridge.Subscribe())

	menu := menubar.New(a.services.GetTray(), menubar.Options{
		Tooltip:      cfg.Menubar.Tooltip,
		StatusLabel:  cfg.Menubar.StatusLabel,
		ShowActivity: cfg.Menubar.ShowActivity,
		Activity:     activity,
		OnOpenSettings: func(ctx context.Context) {
			if err := gate.OpenSettings(ctx); err != nil {
				logger.L(ctx).Warn("Failed to open accessibility settings", zap.Error(err))
			}
		},
		OnQuit: func() {
			_ = a.Shutdown()
		},
	})
	a.mu.Lock()
	a.menu = menu
	a.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = a.Shutdown()
	}()

	log.Info("Starting zoom control",
		zap.Stringer("accessibility", result.Status),
		zap.Bool("prompted", result.Prompted),
		zap.Bool("prompt_failed", result.PromptFailed),
		zap.String("source", a.services.GetScrollSource().Name()),
		zap.String("injector", a.services.GetKeyInjector().Name()),
	)

	menu.Run(ctx, func() {
		a.startSource(ctx)
	})

	return a.Shutdown()
}

// Result returns what the permission gate observed
func (a *App) Result() permission.Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

func (a *App) startSource(ctx context.Context) {
	source := a.services.GetScrollSource()
	handler := a.services.GetTranslator().Handler()

	a.mu.Lock()
	a.running = true
	a.mu.Unlock()

	go func() {
		defer close(a.sourceDone)

		err := source.Stream(ctx, handler)
		if err != nil && !errors.Is(err, context.Canceled) {
			// Without accessibility the tap cannot be installed; the app
			// keeps running with an inert menu bar.
			logger.L(ctx).Warn("Scroll source stopped", zap.String("source", source.Name()), zap.Error(err))
		}
	}()
}

func (a *App) logActivity(ctx context.Context, events <-chan domain.ZoomEvent) {
	log := logger.L(ctx)
	for ev := range events {
		log.Debug("Zoom",
			zap.Stringer("direction", ev.Direction),
			zap.Float64("delta", ev.Delta),
			zap.Bool("failed", ev.Err != nil),
		)
	}
}

// Shutdown stops the scroll source, releases the injector and removes the
// status item. It is safe to call more than once.
func (a *App) Shutdown() error {
	a.shutdownOnce.Do(func() {
		a.mu.Lock()
		cancel, menu, running := a.cancel, a.menu, a.running
		a.mu.Unlock()

		if cancel != nil {
			cancel()
		}

		if running {
			a.waitForSource()
		}

		a.shutdownErr = a.services.Close()

		if menu != nil {
			menu.Quit()
		}
		logger.Debug("Zoom control stopped")
	})
	return a.shutdownErr
}

func (a *App) waitForSource() {
	select {
	case <-a.sourceDone:
	case <-time.After(constants.SourceStopTimeout):
		logger.Warn("Scroll source did not stop in time", "timeout", constants.SourceStopTimeout)
	}
}
