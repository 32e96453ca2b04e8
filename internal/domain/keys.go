package domain

import "fmt"

// VirtualKey is a macOS virtual key code (Carbon kVK_* values)
type VirtualKey uint16

const (
	KeyEqual   VirtualKey = 0x18 // kVK_ANSI_Equal, the '+' key
	KeyMinus   VirtualKey = 0x1B // kVK_ANSI_Minus
	KeyCommand VirtualKey = 0x37 // kVK_Command
)

// keyNames maps virtual keys to the portable names used by name-based injectors
var keyNames = map[VirtualKey]string{
	KeyEqual:   "=",
	KeyMinus:   "-",
	KeyCommand: "cmd",
}

// KeyName returns the portable name of a virtual key
func KeyName(k VirtualKey) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(k))
}

// KeyEvent is a single synthetic key transition
type KeyEvent struct {
	Key   VirtualKey
	Name  string
	Down  bool
	Flags ModifierFlags
}

// String returns a compact form such as "=[cmd] down"
func (e KeyEvent) String() string {
	state := "up"
	if e.Down {
		state = "down"
	}
	name := e.Name
	if name == "" {
		name = KeyName(e.Key)
	}
	if e.Flags != 0 {
		return fmt.Sprintf("%s[%s] %s", name, e.Flags, state)
	}
	return fmt.Sprintf("%s %s", name, state)
}
