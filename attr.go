package coreterm

// ColorMode identifies how a color component of an Attr should be resolved.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota
	ColorIndexed
)

// AttrFlag holds the boolean style bits of an Attr.
type AttrFlag uint16

const (
	FlagBold AttrFlag = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagBlink
	FlagInverse
	FlagInvisible
	FlagWrapped
	FlagWide
	FlagWideSpacer
)

// Attr is the packed style attribute word for a Cell: a 9-bit foreground
// index, a 9-bit background index, and flag bits. It is a value type —
// every cell write copies it, never shares it.
type Attr struct {
	fg    uint16
	bg    uint16
	Flags AttrFlag
}

// DefaultAttr is the attribute word used for blank cells: default
// foreground and background, no flags set.
var DefaultAttr = Attr{fg: packColor(ColorDefault, 0), bg: packColor(ColorDefault, 0)}

func packColor(mode ColorMode, index int) uint16 {
	v := uint16(index) & 0x1FF
	if mode == ColorIndexed {
		v |= 0x200
	}
	return v
}

// Foreground returns the foreground color mode and palette index.
func (a Attr) Foreground() (ColorMode, int) {
	if a.fg&0x200 != 0 {
		return ColorIndexed, int(a.fg & 0x1FF)
	}
	return ColorDefault, 0
}

// Background returns the background color mode and palette index.
func (a Attr) Background() (ColorMode, int) {
	if a.bg&0x200 != 0 {
		return ColorIndexed, int(a.bg & 0x1FF)
	}
	return ColorDefault, 0
}

// WithForeground returns a copy of a with the foreground set to palette index.
func (a Attr) WithForeground(index int) Attr {
	a.fg = packColor(ColorIndexed, index)
	return a
}

// WithBackground returns a copy of a with the background set to palette index.
func (a Attr) WithBackground(index int) Attr {
	a.bg = packColor(ColorIndexed, index)
	return a
}

// WithDefaultForeground returns a copy of a with the foreground reset to default.
func (a Attr) WithDefaultForeground() Attr {
	a.fg = packColor(ColorDefault, 0)
	return a
}

// WithDefaultBackground returns a copy of a with the background reset to default.
func (a Attr) WithDefaultBackground() Attr {
	a.bg = packColor(ColorDefault, 0)
	return a
}

// Has reports whether every bit in flag is set.
func (a Attr) Has(flag AttrFlag) bool {
	return a.Flags&flag == flag
}

// Set returns a copy of a with flag set.
func (a Attr) Set(flag AttrFlag) Attr {
	a.Flags |= flag
	return a
}

// Clear returns a copy of a with flag cleared.
func (a Attr) Clear(flag AttrFlag) Attr {
	a.Flags &^= flag
	return a
}

// ForErase returns the attribute used to fill erased cells: current
// background, default foreground, flags cleared. Matches §4.3's erase-cell
// contract (background carried, foreground reset).
func (a Attr) ForErase() Attr {
	erase := DefaultAttr
	erase.bg = a.bg
	return erase
}
