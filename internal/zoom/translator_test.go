package zoom

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	domain "github.com/zoomctl/zoomctl/internal/domain"
	logger "github.com/zoomctl/zoomctl/internal/logger"
)

type recordingInjector struct {
	mu     sync.Mutex
	events []domain.KeyEvent
	failOn func(domain.KeyEvent) error
}

func (r *recordingInjector) Post(_ context.Context, event domain.KeyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	if r.failOn != nil {
		return r.failOn(event)
	}
	return nil
}

func (r *recordingInjector) Name() string { return "recording" }
func (r *recordingInjector) Close() error { return nil }

func (r *recordingInjector) posted() []domain.KeyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.KeyEvent(nil), r.events...)
}

type recordingPublisher struct {
	events []domain.ZoomEvent
}

func (p *recordingPublisher) Publish(event domain.ZoomEvent) {
	p.events = append(p.events, event)
}

var base = time.Unix(1700000000, 0)

func ctrlScroll(delta float64, offset time.Duration) domain.ScrollEvent {
	return domain.ScrollEvent{DeltaY: delta, Modifiers: domain.ModControl, Timestamp: base.Add(offset)}
}

func newTestTranslator(t *testing.T, inj domain.KeyInjector, pub domain.ZoomPublisher) *Translator {
	t.Helper()
	tr, err := NewTranslator(Options{
		Threshold: 0.1,
		Debounce:  50 * time.Millisecond,
		Injector:  inj,
		Publisher: pub,
	})
	require.NoError(t, err)
	return tr
}

func keys(events []domain.KeyEvent) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.String())
	}
	return out
}

func TestNewTranslator_Validation(t *testing.T) {
	inj := &recordingInjector{}

	tests := []struct {
		name    string
		opts    Options
		wantErr error
		errText string
	}{
		{name: "nil injector", opts: Options{Threshold: 0.1}, wantErr: domain.ErrNilInjector},
		{name: "negative threshold", opts: Options{Threshold: -1, Injector: inj}, errText: "threshold"},
		{name: "negative debounce", opts: Options{Debounce: -time.Millisecond, Injector: inj}, errText: "debounce"},
		{name: "zero values accepted", opts: Options{Injector: inj}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTranslator(tt.opts)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, tr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
			default:
				require.NoError(t, err)
				assert.NotNil(t, tr)
			}
		})
	}
}

func keyCodes(events []domain.KeyEvent) []domain.VirtualKey {
	out := make([]domain.VirtualKey, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Key)
	}
	return out
}

func TestTranslator_Handle(t *testing.T) {
	zoomIn := []string{"cmd down", "=[cmd] down", "= up", "cmd up"}
	zoomOut := []string{"cmd down", "-[cmd] down", "- up", "cmd up"}
	zoomInCodes := []domain.VirtualKey{0x37, 0x18, 0x18, 0x37}
	zoomOutCodes := []domain.VirtualKey{0x37, 0x1B, 0x1B, 0x37}

	tests := []struct {
		name     string
		event    domain.ScrollEvent
		expected Outcome
		posted   []string
		codes    []domain.VirtualKey
	}{
		{
			name:     "no modifier is ignored",
			event:    domain.ScrollEvent{DeltaY: -3, Timestamp: base},
			expected: OutcomeNoModifier,
		},
		{
			name:     "command alone is ignored",
			event:    domain.ScrollEvent{DeltaY: -3, Modifiers: domain.ModCommand, Timestamp: base},
			expected: OutcomeNoModifier,
		},
		{
			name:     "delta at threshold is ignored",
			event:    ctrlScroll(0.1, 0),
			expected: OutcomeBelowThreshold,
		},
		{
			name:     "negative delta at threshold is ignored",
			event:    ctrlScroll(-0.1, 0),
			expected: OutcomeBelowThreshold,
		},
		{
			name:     "zero delta is ignored",
			event:    ctrlScroll(0, 0),
			expected: OutcomeBelowThreshold,
		},
		{
			name:     "negative delta zooms in",
			event:    ctrlScroll(-0.5, 0),
			expected: OutcomeZoomIn,
			posted:   zoomIn,
			codes:    zoomInCodes,
		},
		{
			name:     "positive delta zooms out",
			event:    ctrlScroll(0.5, 0),
			expected: OutcomeZoomOut,
			posted:   zoomOut,
			codes:    zoomOutCodes,
		},
		{
			name: "control with other modifiers still zooms",
			event: domain.ScrollEvent{
				DeltaY:    -2,
				Modifiers: domain.ModControl | domain.ModShift,
				Timestamp: base,
			},
			expected: OutcomeZoomIn,
			posted:   zoomIn,
			codes:    zoomInCodes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inj := &recordingInjector{}
			tr := newTestTranslator(t, inj, nil)

			outcome, err := tr.Handle(logger.NopContext(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)

			got := keys(inj.posted())
			if tt.posted == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.posted, got)
				assert.Equal(t, tt.codes, keyCodes(inj.posted()))
			}
		})
	}
}

func TestTranslator_Debounce(t *testing.T) {
	inj := &recordingInjector{}
	tr := newTestTranslator(t, inj, nil)
	ctx := logger.NopContext()

	outcomes := make([]Outcome, 0, 5)
	for _, off := range []time.Duration{0, 10, 49, 50, 70} {
		o, err := tr.Handle(ctx, ctrlScroll(-1, off*time.Millisecond))
		require.NoError(t, err)
		outcomes = append(outcomes, o)
	}

	assert.Equal(t, []Outcome{OutcomeZoomIn, OutcomeDebounced, OutcomeDebounced, OutcomeZoomIn, OutcomeDebounced}, outcomes)
	assert.Len(t, inj.posted(), 8)

	stats := tr.Stats()
	assert.Equal(t, uint64(2), stats.ZoomIn)
	assert.Equal(t, uint64(3), stats.Debounced)
	assert.Equal(t, uint64(2), stats.Triggered())
}

func TestTranslator_IgnoredEventsDoNotStartWindow(t *testing.T) {
	inj := &recordingInjector{}
	tr := newTestTranslator(t, inj, nil)
	ctx := logger.NopContext()

	o, _ := tr.Handle(ctx, domain.ScrollEvent{DeltaY: -1, Timestamp: base})
	assert.Equal(t, OutcomeNoModifier, o)
	o, _ = tr.Handle(ctx, ctrlScroll(0.05, time.Millisecond))
	assert.Equal(t, OutcomeBelowThreshold, o)

	o, _ = tr.Handle(ctx, ctrlScroll(1, 2*time.Millisecond))
	assert.Equal(t, OutcomeZoomOut, o)
}

func TestTranslator_UsesClockWithoutTimestamp(t *testing.T) {
	inj := &recordingInjector{}
	now := base
	tr, err := NewTranslator(Options{
		Threshold: 0.1,
		Debounce:  50 * time.Millisecond,
		Injector:  inj,
		Clock:     func() time.Time { return now },
	})
	require.NoError(t, err)
	ctx := logger.NopContext()

	ev := domain.ScrollEvent{DeltaY: -1, Modifiers: domain.ModControl}

	o, _ := tr.Handle(ctx, ev)
	assert.Equal(t, OutcomeZoomIn, o)

	now = now.Add(20 * time.Millisecond)
	o, _ = tr.Handle(ctx, ev)
	assert.Equal(t, OutcomeDebounced, o)

	now = now.Add(40 * time.Millisecond)
	o, _ = tr.Handle(ctx, ev)
	assert.Equal(t, OutcomeZoomIn, o)
}

func TestTranslator_InjectionFailure(t *testing.T) {
	errPost := errors.New("event source unavailable")
	inj := &recordingInjector{
		failOn: func(ev domain.KeyEvent) error {
			if ev.Key == domain.KeyEqual && ev.Down {
				return errPost
			}
			return nil
		},
	}
	pub := &recordingPublisher{}
	tr := newTestTranslator(t, inj, pub)
	ctx, logs := logger.TestContext()

	outcome, err := tr.Handle(ctx, ctrlScroll(-1, 0))
	assert.Equal(t, OutcomeZoomIn, outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, errPost)

	// Command is released even though the key down failed
	posted := inj.posted()
	require.Len(t, posted, 4)
	assert.Equal(t, domain.KeyCommand, posted[3].Key)
	assert.False(t, posted[3].Down)

	entries := logs.FilterMessage("Zoom keystroke injection failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "in", fields["direction"])
	assert.Equal(t, "recording", fields["injector"])

	require.Len(t, pub.events, 1)
	assert.ErrorIs(t, pub.events[0].Err, errPost)
	assert.Equal(t, uint64(1), tr.Stats().Failed)
}

func TestTranslator_PublishesActivity(t *testing.T) {
	pub := &recordingPublisher{}
	tr := newTestTranslator(t, &recordingInjector{}, pub)
	ctx := logger.NopContext()

	_, _ = tr.Handle(ctx, ctrlScroll(-1, 0))
	_, _ = tr.Handle(ctx, ctrlScroll(1, 10*time.Millisecond))
	_, _ = tr.Handle(ctx, ctrlScroll(1, 100*time.Millisecond))

	require.Len(t, pub.events, 2)
	assert.Equal(t, domain.ZoomIn, pub.events[0].Direction)
	assert.Equal(t, domain.ZoomOut, pub.events[1].Direction)
	assert.Equal(t, base.Add(100*time.Millisecond), pub.events[1].At)
	assert.NoError(t, pub.events[1].Err)
}

func TestTranslator_Handler(t *testing.T) {
	inj := &recordingInjector{}
	tr := newTestTranslator(t, inj, nil)

	handle := tr.Handler()
	handle(logger.NopContext(), ctrlScroll(0.5, 0))

	assert.Len(t, inj.posted(), 4)
	assert.Equal(t, uint64(1), tr.Stats().ZoomOut)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "no_modifier", OutcomeNoModifier.String())
	assert.Equal(t, "below_threshold", OutcomeBelowThreshold.String())
	assert.Equal(t, "debounced", OutcomeDebounced.String())
	assert.Equal(t, "zoom_in", OutcomeZoomIn.String())
	assert.Equal(t, "zoom_out", OutcomeZoomOut.String())
	assert.Equal(t, "unknown", Outcome(42).String())
	assert.True(t, OutcomeZoomIn.Triggered())
	assert.False(t, OutcomeDebounced.Triggered())
}
