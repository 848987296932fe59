package coreterm

// Charset identifies a single-byte translation table designated into a G-slot.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
	CharsetUK
)

// GSlot indexes the four designation slots G0..G3.
type GSlot int

const (
	G0 GSlot = iota
	G1
	G2
	G3
)

// lineDrawingMap implements the DEC Special Graphics character set (ESC ( 0),
// used for box-drawing output by full-screen applications.
var lineDrawingMap = map[rune]rune{
	'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌', 'd': '␍',
	'e': '␊', 'f': '°', 'g': '±', 'h': '␤', 'i': '␋',
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼',
	'o': '⎺', 'p': '⎻', 'q': '─', 'r': '⎼', 's': '⎽',
	't': '├', 'u': '┤', 'v': '┴', 'w': '┬', 'x': '│',
	'y': '≤', 'z': '≥', '{': 'π', '|': '≠', '}': '£',
	'~': '·',
}

// charsetTable holds the G0..G3 designations and the active GL/GR level.
type charsetTable struct {
	slots  [4]Charset
	gLevel int // 0..3, selects slots[gLevel] as GL
}

func newCharsetTable() charsetTable {
	return charsetTable{}
}

// Translate maps r through the active G-set if it designates line drawing;
// only ASCII codepoints (<127) are subject to translation per §4.3.
func (t *charsetTable) Translate(r rune) rune {
	if r >= 127 {
		return r
	}
	switch t.slots[t.gLevel] {
	case CharsetLineDrawing:
		if mapped, ok := lineDrawingMap[r]; ok {
			return mapped
		}
	}
	return r
}

func (t *charsetTable) Designate(slot GSlot, cs Charset) {
	t.slots[slot] = cs
}

func (t *charsetTable) LockingShift(level int) {
	if level >= 0 && level <= 3 {
		t.gLevel = level
	}
}
