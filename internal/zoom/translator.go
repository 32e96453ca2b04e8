package zoom

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
	zap "go.uber.org/zap"
)

// Outcome describes what Handle did with a scroll event
type Outcome int

const (
	OutcomeNoModifier Outcome = iota
	OutcomeBelowThreshold
	OutcomeDebounced
	OutcomeZoomIn
	OutcomeZoomOut
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNoModifier:
		return "no_modifier"
	case OutcomeBelowThreshold:
		return "below_threshold"
	case OutcomeDebounced:
		return "debounced"
	case OutcomeZoomIn:
		return "zoom_in"
	case OutcomeZoomOut:
		return "zoom_out"
	default:
		return "unknown"
	}
}

// Triggered reports whether a keystroke sequence was posted
func (o Outcome) Triggered() bool {
	return o == OutcomeZoomIn || o == OutcomeZoomOut
}

// Options configures a Translator
type Options struct {
	Threshold float64
	Debounce  time.Duration
	Injector  domain.KeyInjector
	Publisher domain.ZoomPublisher
	Clock     func() time.Time
}

// Stats is a snapshot of translator counters
type Stats struct {
	ZoomIn         uint64
	ZoomOut        uint64
	NoModifier     uint64
	BelowThreshold uint64
	Debounced      uint64
	Failed         uint64
}

// Triggered returns the number of posted sequences
func (s Stats) Triggered() uint64 {
	return s.ZoomIn + s.ZoomOut
}

// Translator converts Control+scroll events into zoom keystrokes
type Translator struct {
	threshold float64
	debouncer *Debouncer
	injector  domain.KeyInjector
	publisher domain.ZoomPublisher
	clock     func() time.Time

	zoomIn         atomic.Uint64
	zoomOut        atomic.Uint64
	noModifier     atomic.Uint64
	belowThreshold atomic.Uint64
	debounced      atomic.Uint64
	failed         atomic.Uint64
}

// NewTranslator validates options and constructs a translator
func NewTranslator(opts Options) (*Translator, error) {
	if opts.Injector == nil {
		return nil, domain.ErrNilInjector
	}
	if opts.Threshold < 0 || math.IsNaN(opts.Threshold) {
		return nil, fmt.Errorf("threshold must not be negative, got %v", opts.Threshold)
	}
	if opts.Debounce < 0 {
		return nil, fmt.Errorf("debounce must not be negative, got %s", opts.Debounce)
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Translator{
		threshold: opts.Threshold,
		debouncer: NewDebouncer(opts.Debounce),
		injector:  opts.Injector,
		publisher: opts.Publisher,
		clock:     clock,
	}, nil
}

// Handle processes one scroll event. The returned error is non-nil only when
// a sequence was triggered and at least one key event failed to post.
func (t *Translator) Handle(ctx context.Context, event domain.ScrollEvent) (Outcome, error) {
	if !event.Modifiers.Has(domain.ModControl) {
		t.noModifier.Add(1)
		return OutcomeNoModifier, nil
	}

	if math.IsNaN(event.DeltaY) || math.Abs(event.DeltaY) <= t.threshold {
		t.belowThreshold.Add(1)
		return OutcomeBelowThreshold, nil
	}

	now := event.Timestamp
	if now.IsZero() {
		now = t.clock()
	}
	if !t.debouncer.Allow(now) {
		t.debounced.Add(1)
		logger.L(ctx).Debug("Scroll debounced", zap.Float64("delta", event.DeltaY))
		return OutcomeDebounced, nil
	}

	direction := Classify(event.DeltaY)
	outcome := OutcomeZoomOut
	if direction == domain.ZoomIn {
		outcome = OutcomeZoomIn
		t.zoomIn.Add(1)
	} else {
		t.zoomOut.Add(1)
	}

	err := t.post(ctx, direction)
	if err != nil {
		t.failed.Add(1)
	}

	if t.publisher != nil {
		t.publisher.Publish(domain.ZoomEvent{
			Direction: direction,
			Delta:     event.DeltaY,
			At:        now,
			Err:       err,
		})
	}

	return outcome, err
}

// Handler adapts the translator to a scroll source callback.
// Injection errors are already logged by Handle.
func (t *Translator) Handler() domain.ScrollHandler {
	return func(ctx context.Context, event domain.ScrollEvent) {
		_, _ = t.Handle(ctx, event)
	}
}

// post emits every event of the sequence, even after a failure, so that
// Command is always released.
func (t *Translator) post(ctx context.Context, direction domain.ZoomDirection) error {
	var errs []error
	for _, key := range Sequence(direction) {
		if err := t.injector.Post(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("post %s: %w", key, err))
		}
	}

	log := logger.L(ctx).With(
		zap.String("direction", direction.String()),
		zap.String("injector", t.injector.Name()),
	)

	if len(errs) > 0 {
		err := errors.Join(errs...)
		log.Warn("Zoom keystroke injection failed", zap.Int("failed_events", len(errs)), zap.Error(err))
		return err
	}

	log.Debug("Zoom sequence posted")
	return nil
}

// Stats returns a snapshot of the counters
func (t *Translator) Stats() Stats {
	return Stats{
		ZoomIn:         t.zoomIn.Load(),
		ZoomOut:        t.zoomOut.Load(),
		NoModifier:     t.noModifier.Load(),
		BelowThreshold: t.belowThreshold.Load(),
		Debounced:      t.debounced.Load(),
		Failed:         t.failed.Load(),
	}
}

// Threshold returns the configured magnitude threshold
func (t *Translator) Threshold() float64 {
	return t.threshold
}

// Debounce returns the configured minimum spacing between sequences
func (t *Translator) Debounce() time.Duration {
	return t.debouncer.Interval()
}
