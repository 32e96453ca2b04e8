package domain

// Quartz CGEventFlags device-independent modifier masks
const (
	CGFlagShift     uint64 = 0x00020000
	CGFlagControl   uint64 = 0x00040000
	CGFlagAlternate uint64 = 0x00080000
	CGFlagCommand   uint64 = 0x00100000
)

var cgFlagTable = []struct {
	mod  ModifierFlags
	mask uint64
}{
	{ModShift, CGFlagShift},
	{ModControl, CGFlagControl},
	{ModOption, CGFlagAlternate},
	{ModCommand, CGFlagCommand},
}

// ModifiersFromCGFlags converts a CGEventFlags value. Bits other than the four
// modifier masks (caps lock, numeric pad, device-dependent bits) are dropped.
func ModifiersFromCGFlags(flags uint64) ModifierFlags {
	var m ModifierFlags
	for _, e := range cgFlagTable {
		if flags&e.mask != 0 {
			m |= e.mod
		}
	}
	return m
}

// CGFlags converts modifiers to a CGEventFlags value
func (m ModifierFlags) CGFlags() uint64 {
	var flags uint64
	for _, e := range cgFlagTable {
		if m.Has(e.mod) {
			flags |= e.mask
		}
	}
	return flags
}
