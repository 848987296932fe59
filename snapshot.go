package coreterm

// CellSnapshot is the JSON-serializable form of a single Cell.
type CellSnapshot struct {
	Char  string `json:"char"`
	FgIdx int    `json:"fgIndex,omitempty"`
	FgDef bool   `json:"fgDefault,omitempty"`
	BgIdx int    `json:"bgIndex,omitempty"`
	BgDef bool   `json:"bgDefault,omitempty"`
	Flags uint16 `json:"flags"`
	Link  string `json:"link,omitempty"`
}

// LineSnapshot is the JSON-serializable form of a single Line.
type LineSnapshot struct {
	Cells     []CellSnapshot `json:"cells"`
	IsWrapped bool           `json:"isWrapped"`
}

// Snapshot is a point-in-time, renderer-agnostic capture of everything a
// host needs to draw the terminal: the visible grid, cursor position and
// visibility, title, and whether the alternate buffer is active. Pixel-graphics state (sixel/kitty placements) is intentionally
// absent — a declared Non-goal.
type Snapshot struct {
	Cols, Rows int
	Lines      []LineSnapshot
	CursorX    int
	CursorY    int
	CursorShow bool
	Title      string
	Alternate  bool
}

// Snapshot captures the active buffer's visible viewport.
func (t *Terminal) Snapshot() Snapshot {
	b := t.active()
	s := Snapshot{
		Cols:       b.Cols(),
		Rows:       b.Rows(),
		CursorX:    b.X,
		CursorY:    b.Y,
		CursorShow: t.mode.Has(ModeCursorVisible),
		Title:      t.title,
		Alternate:  t.buffers.IsAlternate(),
		Lines:      make([]LineSnapshot, b.Rows()),
	}
	for y := 0; y < b.Rows(); y++ {
		line := b.Line(y)
		if line == nil {
			continue
		}
		s.Lines[y] = snapshotLine(line)
	}
	return s
}

func snapshotLine(line *Line) LineSnapshot {
	cells := line.Cells()
	ls := LineSnapshot{Cells: make([]CellSnapshot, len(cells)), IsWrapped: line.IsWrapped()}
	for i, c := range cells {
		ls.Cells[i] = snapshotCell(c)
	}
	return ls
}

func snapshotCell(c Cell) CellSnapshot {
	cs := CellSnapshot{Char: string(c.Char), Flags: uint16(c.Attr.Flags)}
	if mode, idx := c.Attr.Foreground(); mode == ColorIndexed {
		cs.FgIdx = idx
	} else {
		cs.FgDef = true
	}
	if mode, idx := c.Attr.Background(); mode == ColorIndexed {
		cs.BgIdx = idx
	} else {
		cs.BgDef = true
	}
	if c.Hyperlink != nil {
		cs.Link = c.Hyperlink.URI
	}
	return cs
}
