package zoom

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// Classify maps a scroll delta to a zoom direction.
// Negative deltas (scrolling up with natural scrolling) zoom in.
func Classify(delta float64) domain.ZoomDirection {
	if delta < 0 {
		return domain.ZoomIn
	}
	return domain.ZoomOut
}

// ZoomKey returns the key that zooms in the given direction
func ZoomKey(direction domain.ZoomDirection) domain.VirtualKey {
	if direction == domain.ZoomIn {
		return domain.KeyEqual
	}
	return domain.KeyMinus
}

// Sequence returns the keystrokes for one zoom step, in posting order:
// Command down, zoom key down (with the Command flag), zoom key up, Command up.
func Sequence(direction domain.ZoomDirection) []domain.KeyEvent {
	key := ZoomKey(direction)
	name := domain.KeyName(key)
	cmd := domain.KeyName(domain.KeyCommand)

	return []domain.KeyEvent{
		{Key: domain.KeyCommand, Name: cmd, Down: true},
		{Key: key, Name: name, Down: true, Flags: domain.ModCommand},
		{Key: key, Name: name, Down: false},
		{Key: domain.KeyCommand, Name: cmd, Down: false},
	}
}
