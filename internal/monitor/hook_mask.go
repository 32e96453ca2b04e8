package monitor

import (
	"time"

	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// libuiohook modifier mask bits
const (
	hookMaskShiftL uint16 = 1 << 0
	hookMaskCtrlL  uint16 = 1 << 1
	hookMaskMetaL  uint16 = 1 << 2
	hookMaskAltL   uint16 = 1 << 3
	hookMaskShiftR uint16 = 1 << 4
	hookMaskCtrlR  uint16 = 1 << 5
	hookMaskMetaR  uint16 = 1 << 6
	hookMaskAltR   uint16 = 1 << 7
)

// modifiersFromHookMask folds left and right modifier bits together
func modifiersFromHookMask(mask uint16) domain.ModifierFlags {
	var m domain.ModifierFlags
	if mask&(hookMaskShiftL|hookMaskShiftR) != 0 {
		m |= domain.ModShift
	}
	if mask&(hookMaskCtrlL|hookMaskCtrlR) != 0 {
		m |= domain.ModControl
	}
	if mask&(hookMaskAltL|hookMaskAltR) != 0 {
		m |= domain.ModOption
	}
	if mask&(hookMaskMetaL|hookMaskMetaR) != 0 {
		m |= domain.ModCommand
	}
	return m
}

// scrollFromHook builds a scroll event from a wheel hook sample.
// The hook reports rotation as the negated Quartz axis 1 delta, so it is
// flipped back to line up with scrollFromTap.
func scrollFromHook(rotation int32, mask uint16, when time.Time) domain.ScrollEvent {
	return domain.ScrollEvent{
		DeltaY:    -float64(rotation),
		Modifiers: modifiersFromHookMask(mask),
		Timestamp: when,
	}
}
