package monitor

import (
	"time"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// scrollFromTap builds a scroll event from a Quartz scroll-wheel event:
// axis1 is kCGScrollWheelEventFixedPtDeltaAxis1, flags is CGEventGetFlags.
func scrollFromTap(axis1 float64, flags uint64, when time.Time) domain.ScrollEvent {
	return domain.ScrollEvent{
		DeltaY:    axis1,
		Modifiers: domain.ModifiersFromCGFlags(flags),
		Timestamp: when,
	}
}
