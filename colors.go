package coreterm

// RGB is a resolved 24-bit color, used only at the point of rendering or
// nearest-palette matching; cells never store RGB directly.
type RGB struct {
	R, G, B uint8
}

// Palette is the 256-entry indexed color table: 16 named colors, a 6x6x6
// color cube, and a 24-step grayscale ramp, in the standard xterm layout.
var Palette [256]RGB

var namedPalette = [16]RGB{
	{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
	{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
	{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

var cubeSteps = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func init() {
	copy(Palette[0:16], namedPalette[:])

	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[idx] = RGB{cubeSteps[r], cubeSteps[g], cubeSteps[b]}
				idx++
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		Palette[232+i] = RGB{v, v, v}
	}
}

// Default foreground, background and cursor colors used when an Attr
// component resolves to ColorDefault.
var (
	DefaultForeground = RGB{0xe5, 0xe5, 0xe5}
	DefaultBackground = RGB{0x00, 0x00, 0x00}
	DefaultCursor     = RGB{0xe5, 0xe5, 0xe5}
)

// ResolveForeground resolves a's foreground component to a concrete color.
func ResolveForeground(a Attr) RGB {
	mode, idx := a.Foreground()
	if mode == ColorDefault {
		return DefaultForeground
	}
	return Palette[idx&0xFF]
}

// ResolveBackground resolves a's background component to a concrete color.
func ResolveBackground(a Attr) RGB {
	mode, idx := a.Background()
	if mode == ColorDefault {
		return DefaultBackground
	}
	return Palette[idx&0xFF]
}

// NearestPaletteIndex implements the Open Question (a) decision: squared
// Euclidean distance in RGB space against the 256-entry palette, used for
// SGR 38;2/48;2 true-color requests (spec Non-goal: exact 24-bit fidelity
// is not required, nearest-palette is sufficient).
func NearestPaletteIndex(r, g, b uint8) int {
	best := 0
	bestDist := -1
	for i, c := range Palette {
		dr := int(c.R) - int(r)
		dg := int(c.G) - int(g)
		db := int(c.B) - int(b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// ToHex renders c as a "#rrggbb" string, used by Snapshot output.
func (c RGB) ToHex() string {
	const hex = "0123456789abcdef"
	buf := [7]byte{'#'}
	buf[1] = hex[c.R>>4]
	buf[2] = hex[c.R&0xF]
	buf[3] = hex[c.G>>4]
	buf[4] = hex[c.G&0xF]
	buf[5] = hex[c.B>>4]
	buf[6] = hex[c.B&0xF]
	return string(buf[:])
}
