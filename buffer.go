package coreterm

// Buffer is a RingOfLines plus cursor, scroll-region, saved-cursor and
// tab-stop state for one screen (normal or alternate). Capacity of the
// underlying ring is rows+scrollback for the normal buffer, rows for the
// alternate buffer (§3).
type Buffer struct {
	ring *RingOfLines

	cols, rows int

	X, Y int // cursor column/row, 0 <= X <= cols, 0 <= Y < rows

	yBase int // index of the first visible line inside the ring
	yDisp int // first line currently displayed; yDisp <= yBase

	scrollTop, scrollBottom int // inclusive, viewport coordinates

	savedX, savedY int
	savedAttr      Attr
	savedOrigin    bool

	tabStops []bool
}

// NewBuffer allocates a buffer of rows x cols with the given scrollback
// capacity (0 for the alternate buffer) filled with attr.
func NewBuffer(rows, cols, scrollback int, attr Attr) *Buffer {
	if scrollback < 0 {
		scrollback = 0
	}
	b := &Buffer{
		ring:         NewRingOfLines(rows + scrollback),
		cols:         cols,
		rows:         rows,
		scrollBottom: rows - 1,
		tabStops:     make([]bool, cols),
	}
	for i := 0; i < rows; i++ {
		b.ring.Push(NewLine(cols, attr))
	}
	b.yBase = 0
	b.yDisp = 0
	b.resetTabStops(0)
	return b
}

func (b *Buffer) resetTabStops(from int) {
	for i := from; i < b.cols; i++ {
		b.tabStops[i] = i%8 == 0
	}
}

// Rows, Cols return the viewport dimensions.
func (b *Buffer) Rows() int { return b.rows }
func (b *Buffer) Cols() int { return b.cols }

// ScrollbackLen returns the number of lines above the viewport.
func (b *Buffer) ScrollbackLen() int { return b.yBase }

// Line returns the visible line at viewport row y (0-based), or nil if
// out of range.
func (b *Buffer) Line(y int) *Line {
	if y < 0 || y >= b.rows {
		return nil
	}
	return b.ring.Get(b.yBase + y)
}

// ScrollbackLine returns scrollback line index (0 = oldest).
func (b *Buffer) ScrollbackLine(index int) *Line {
	if index < 0 || index >= b.yBase {
		return nil
	}
	return b.ring.Get(index)
}

// DisplayLine returns the line currently displayed at row y, honoring a
// decoupled yDisp (user scrolled back). Used by hosts rendering the
// scrolled-back viewport rather than the live one.
func (b *Buffer) DisplayLine(y int) *Line {
	if y < 0 || y >= b.rows {
		return nil
	}
	return b.ring.Get(b.yDisp + y)
}

// Cell returns the cell at viewport (y, x), or nil if out of range.
func (b *Buffer) Cell(y, x int) *Cell {
	line := b.Line(y)
	if line == nil {
		return nil
	}
	return line.Cell(x)
}

// IsScrolledBack reports whether the display has decoupled from the live
// viewport (yDisp < yBase).
func (b *Buffer) IsScrolledBack() bool { return b.yDisp < b.yBase }

// ScrollViewport moves yDisp by delta lines, clamped to [0, yBase].
// Returns the new yDisp.
func (b *Buffer) ScrollViewport(delta int) int {
	b.yDisp += delta
	if b.yDisp < 0 {
		b.yDisp = 0
	}
	if b.yDisp > b.yBase {
		b.yDisp = b.yBase
	}
	return b.yDisp
}

// Scroll implements §4.2's scroll(isWrapped): advance past scrollBottom.
// When scrollTop==0 a fresh blank line is spliced in immediately after the
// region, at logical index yBase+scrollBottom+1 — not appended at the
// ring's true tail, since rows below scrollBottom (outside the region)
// must stay exactly where they are. The line scrolled out of the region's
// top becomes scrollback (preserved in the ring, revealed by yBase
// advancing) rather than being discarded. When scrollTop!=0 lines
// [scrollTop+1,scrollBottom] shift up by one with a blank at
// scrollBottom — no scrollback produced.
func (b *Buffer) Scroll(isWrapped bool, attr Attr) {
	if b.scrollTop != 0 {
		b.shiftRegionUp(b.scrollTop, b.scrollBottom, 1, attr)
		if line := b.Line(b.scrollBottom); line != nil {
			line.SetWrapped(isWrapped)
		}
		return
	}

	blank := NewLine(b.cols, attr)
	blank.SetWrapped(isWrapped)

	before := b.ring.Len()
	b.ring.Splice(b.yBase+b.scrollBottom+1, 0, []*Line{blank})

	wasAtBase := b.yDisp == b.yBase
	if b.ring.Len() > before {
		// The ring did not drop its oldest line, so the viewport moves down.
		b.yBase++
	}
	if wasAtBase {
		b.yDisp = b.yBase
	}
}

// ReverseIndex is symmetric to Scroll but at scrollTop: shift lines down
// one, blank at scrollTop.
func (b *Buffer) ReverseIndex(attr Attr) {
	b.shiftRegionDown(b.scrollTop, b.scrollBottom, 1, attr)
}

// shiftRegionUp shifts viewport rows [top,bottom] up by n, filling the
// vacated bottom rows with blanks.
func (b *Buffer) shiftRegionUp(top, bottom, n int, attr Attr) {
	if n <= 0 || top > bottom {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	b.ring.ShiftElements(b.yBase+top+n, bottom-top+1-n, -n)
	for y := bottom - n + 1; y <= bottom; y++ {
		b.ring.Set(b.yBase+y, NewLine(b.cols, attr))
	}
}

// shiftRegionDown shifts viewport rows [top,bottom] down by n, filling the
// vacated top rows with blanks.
func (b *Buffer) shiftRegionDown(top, bottom, n int, attr Attr) {
	if n <= 0 || top > bottom {
		return
	}
	if n > bottom-top+1 {
		n = bottom - top + 1
	}
	b.ring.ShiftElements(b.yBase+top, bottom-top+1-n, n)
	for y := top; y < top+n; y++ {
		b.ring.Set(b.yBase+y, NewLine(b.cols, attr))
	}
}

// InsertLines implements IL: push lines down within [y, scrollBottom],
// appending n blanks at the top of that range (spec names it as pushing
// lines down and appending blanks at scrollBottom+1, which is equivalent
// to a downward shift bounded at y).
func (b *Buffer) InsertLines(y, n int, attr Attr) {
	if y < b.scrollTop || y > b.scrollBottom {
		return
	}
	b.shiftRegionDown(y, b.scrollBottom, n, attr)
}

// DeleteLines implements DL within [y, scrollBottom].
func (b *Buffer) DeleteLines(y, n int, attr Attr) {
	if y < b.scrollTop || y > b.scrollBottom {
		return
	}
	b.shiftRegionUp(y, b.scrollBottom, n, attr)
}

// InsertCells shifts cells on the cursor's line right by n at column x.
func (b *Buffer) InsertCells(y, x, n int, fill Cell) {
	if line := b.Line(y); line != nil {
		line.insertCells(x, n, fill)
	}
}

// DeleteCells shifts cells on line y left by n at column x.
func (b *Buffer) DeleteCells(y, x, n int, fill Cell) {
	if line := b.Line(y); line != nil {
		line.deleteCells(x, n, fill)
	}
}

// ReplaceCells overwrites [start,end) on line y with fill.
func (b *Buffer) ReplaceCells(y, start, end int, fill Cell) {
	if line := b.Line(y); line != nil {
		line.replaceCells(start, end, fill)
	}
}

// ClearLine resets every cell on line y.
func (b *Buffer) ClearLine(y int, fill Cell) {
	if line := b.Line(y); line != nil {
		line.replaceCells(0, line.Len(), fill)
		line.SetWrapped(false)
	}
}

// SaveCursor snapshots (X, Y, attr, originMode) per DECSC.
func (b *Buffer) SaveCursor(attr Attr, origin bool) {
	b.savedX, b.savedY = b.X, b.Y
	b.savedAttr = attr
	b.savedOrigin = origin
}

// RestoreCursor restores the DECSC snapshot and returns (attr, origin).
func (b *Buffer) RestoreCursor() (Attr, bool) {
	b.X, b.Y = b.savedX, b.savedY
	b.clampCursor()
	return b.savedAttr, b.savedOrigin
}

func (b *Buffer) clampCursor() {
	if b.X < 0 {
		b.X = 0
	}
	if b.X > b.cols {
		b.X = b.cols
	}
	if b.Y < 0 {
		b.Y = 0
	}
	if b.Y >= b.rows {
		b.Y = b.rows - 1
	}
}

// SetScrollRegion sets scrollTop/scrollBottom (0-based, inclusive).
func (b *Buffer) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= b.rows {
		bottom = b.rows - 1
	}
	if top > bottom {
		return
	}
	b.scrollTop = top
	b.scrollBottom = bottom
}

// ScrollRegion returns the current scroll-region bounds.
func (b *Buffer) ScrollRegion() (top, bottom int) { return b.scrollTop, b.scrollBottom }

// SetTabStop, ClearTabStop, ClearAllTabStops, NextTabStop, PrevTabStop
// manage the column tab-stop bitset.
func (b *Buffer) SetTabStop(col int) {
	if col >= 0 && col < b.cols {
		b.tabStops[col] = true
	}
}

func (b *Buffer) ClearTabStop(col int) {
	if col >= 0 && col < b.cols {
		b.tabStops[col] = false
	}
}

func (b *Buffer) ClearAllTabStops() {
	for i := range b.tabStops {
		b.tabStops[i] = false
	}
}

func (b *Buffer) NextTabStop(col int) int {
	for c := col + 1; c < b.cols; c++ {
		if b.tabStops[c] {
			return c
		}
	}
	return b.cols - 1
}

func (b *Buffer) PrevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if b.tabStops[c] {
			return c
		}
	}
	return 0
}

// Resize implements §4.2's resize contract: pad/truncate each visible line
// to newCols, then grow or trim the ring so exactly newRows lines are
// visible, and reset tab stops from the old column count onward.
func (b *Buffer) Resize(newCols, newRows int, attr Attr) {
	if newCols <= 0 || newRows <= 0 {
		return
	}
	oldCols := b.cols

	for i := 0; i < b.ring.Len(); i++ {
		line := b.ring.Get(i)
		if line == nil {
			continue
		}
		resizeLine(line, newCols, attr)
	}

	if newRows > b.rows {
		if newRows > b.ring.Cap() {
			grown := NewRingOfLines(newRows)
			for i := 0; i < b.ring.Len(); i++ {
				grown.Push(b.ring.Get(i))
			}
			b.ring = grown
		}
		for i := b.rows; i < newRows; i++ {
			if b.ring.Len() < b.ring.Cap() {
				b.ring.Push(NewLine(newCols, attr))
			}
		}
	}
	// Shrinking needs no ring mutation: yBase is left unchanged below so the
	// top-left viewport content is preserved; rows that fall out of the
	// now-smaller viewport simply become unreferenced ring entries (they
	// are below yBase, so they are not reachable as scrollback either —
	// scrollback is strictly what came before yBase).

	b.cols = newCols
	b.rows = newRows
	if b.yBase+b.rows > b.ring.Len() {
		b.yBase = b.ring.Len() - b.rows
	}
	if b.yBase < 0 {
		b.yBase = 0
	}
	b.yDisp = b.yBase

	if b.scrollBottom >= b.rows {
		b.scrollBottom = b.rows - 1
	}
	if b.scrollTop > b.scrollBottom {
		b.scrollTop = 0
	}

	newTabStops := make([]bool, newCols)
	copy(newTabStops, b.tabStops)
	b.tabStops = newTabStops
	if newCols > oldCols {
		b.resetTabStops(oldCols)
	}

	b.clampCursor()
}

func resizeLine(l *Line, newCols int, attr Attr) {
	old := l.cells
	if newCols == len(old) {
		return
	}
	cells := make([]Cell, newCols)
	n := len(old)
	if n > newCols {
		n = newCols
	}
	copy(cells, old[:n])
	for i := n; i < newCols; i++ {
		cells[i] = BlankCell(attr)
	}
	l.cells = cells
}

// TrimScrollback discards every retained line above the current viewport,
// per ED 3. Cursor position, scroll region, and tab stops are untouched;
// only the ring's history is dropped.
func (b *Buffer) TrimScrollback() {
	fresh := NewRingOfLines(b.ring.Cap())
	for y := 0; y < b.rows; y++ {
		line := b.Line(y)
		if line == nil {
			line = NewLine(b.cols, DefaultAttr)
		}
		fresh.Push(line)
	}
	b.ring = fresh
	b.yBase = 0
	b.yDisp = 0
}

// Clear resets every visible line to blank, for ED 2/3 and alternate-buffer
// activation.
func (b *Buffer) Clear(attr Attr) {
	for y := 0; y < b.rows; y++ {
		b.ClearLine(y, BlankCell(attr))
	}
}

// FillWithE fills every visible cell with 'E' for DECALN.
func (b *Buffer) FillWithE() {
	for y := 0; y < b.rows; y++ {
		line := b.Line(y)
		if line == nil {
			continue
		}
		for x := 0; x < line.Len(); x++ {
			c := line.Cell(x)
			c.Reset()
			c.Char = 'E'
		}
	}
}
