package input

import (
	domain "github.com/zoomctl/zoomctl/internal/domain"
)

// robotgo modifier names, in the order robotgo expects them
var robotgoModifiers = []struct {
	mod  domain.ModifierFlags
	name string
}{
	{domain.ModCommand, "cmd"},
	{domain.ModControl, "ctrl"},
	{domain.ModOption, "alt"},
	{domain.ModShift, "shift"},
}

// toggleArgs converts a key event into the arguments of robotgo.KeyToggle:
// the key name, then "down" or "up", then any held modifiers.
func toggleArgs(event domain.KeyEvent) (string, []any) {
	name := event.Name
	if name == "" {
		name = domain.KeyName(event.Key)
	}

	state := "up"
	if event.Down {
		state = "down"
	}

	args := []any{state}
	for _, m := range robotgoModifiers {
		if event.Flags.Has(m.mod) {
			args = append(args, m.name)
		}
	}
	return name, args
}
