package coreterm

import "fmt"

// encodeMouse renders a mouse event per the active tracking flavor (§6):
// X10 legacy, SGR (CSI < b;x;y M/m), or URXVT (CSI b;x;y M). x and y are
// 1-based. release indicates a button-release event (relevant to SGR,
// which uses 'm' instead of 'M').
func encodeMouse(mode Mode, buttonFlags, x, y int, release bool) []byte {
	switch {
	case mode.Has(ModeMouseSGR):
		final := byte('M')
		if release {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", buttonFlags, x, y, final))
	case mode.Has(ModeMouseURXVT):
		return []byte(fmt.Sprintf("\x1b[%d;%d;%dM", buttonFlags+32, x, y))
	default:
		// X10 legacy: single bytes, clamped so coordinates stay printable
		// (values above 223 cannot be represented and are clamped).
		cb := clampMouseByte(buttonFlags + 32)
		cx := clampMouseByte(x + 32)
		cy := clampMouseByte(y + 32)
		return []byte{0x1b, '[', 'M', cb, cx, cy}
	}
}

func clampMouseByte(v int) byte {
	if v < 32 {
		v = 32
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
