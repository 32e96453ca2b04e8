package domain

import (
	"strings"
	"time"
)

// ModifierFlags is a bitmask of modifier keys held during an input event
type ModifierFlags uint8

const (
	ModShift ModifierFlags = 1 << iota
	ModControl
	ModOption
	ModCommand
)

// Has reports whether every flag in mask is set
func (m ModifierFlags) Has(mask ModifierFlags) bool {
	return mask != 0 && m&mask == mask
}

// String returns a "+"-joined list of held modifiers, e.g. "ctrl+cmd"
func (m ModifierFlags) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModControl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModOption) {
		parts = append(parts, "alt")
	}
	if m.Has(ModCommand) {
		parts = append(parts, "cmd")
	}
	return strings.Join(parts, "+")
}

// ScrollEvent is one scroll-wheel sample from the global event stream
type ScrollEvent struct {
	DeltaY    float64
	Modifiers ModifierFlags
	Timestamp time.Time
}

// ZoomDirection is derived from the sign of a scroll delta
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

// String returns the string representation of a zoom direction
func (d ZoomDirection) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// ZoomEvent is published after a keystroke sequence has been posted
type ZoomEvent struct {
	Direction ZoomDirection
	Delta     float64
	At        time.Time
	Err       error
}
