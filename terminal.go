// Package coreterm implements a headless, VT-compatible terminal emulation
// engine: it consumes a byte stream produced by a shell or program, tracks
// screen and scrollback state, and emits host-facing events through a
// delegate interface. It performs no rendering and owns no I/O of its own.
//
// Thread safety: Terminal is NOT safe for concurrent use. Callers MUST
// serialize calls to Feed, Resize, and the other public methods — there is
// no internal locking. HostDelegate callbacks fire synchronously from
// within these calls and must not re-enter the Terminal that invoked them.
package coreterm

// Terminal is a complete terminal emulation session: two screen buffers
// (normal and alternate), an escape-sequence parser, and the command
// semantics that interpret parsed actions against the active buffer.
type Terminal struct {
	buffers *BufferSet
	parser  *Parser

	mode    Mode
	curAttr Attr

	charsets charsetTable

	scrollback int
	savedCols  int // column count before DECCOLM 132-mode, 0 if not toggled

	termName   string
	title      string
	titleStack []string

	workingDirectory string
	activeLink       *Hyperlink
	promptMarks      []PromptMark
	clipboard        ClipboardProvider

	convertEOL       bool // maps LF to CRLF on output, i.e. forces ModeAutoNewline semantics
	screenReaderMode bool // emits a per-character callback on print

	delegate    HostDelegate
	diagnostics DiagnosticsSink

	dirtyFrom, dirtyTo int // dirty row range in the active buffer, -1 if clean

	pendingCols, pendingRows int // staged by WithSize until New builds the buffer set
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial viewport dimensions (default 80x25).
func WithSize(cols, rows int) Option {
	return func(t *Terminal) { t.pendingCols, t.pendingRows = cols, rows }
}

// WithScrollback sets the normal buffer's scrollback capacity in lines
// (default 200).
func WithScrollback(lines int) Option {
	return func(t *Terminal) { t.scrollback = lines }
}

// WithTermName sets the TERM-like name used to select DA1/DA2 reply
// variants (default "xterm-256color").
func WithTermName(name string) Option {
	return func(t *Terminal) { t.termName = name }
}

// WithDelegate attaches the host callback sink.
func WithDelegate(d HostDelegate) Option {
	return func(t *Terminal) { t.delegate = d }
}

// WithDiagnostics attaches the protocol-error/warning sink.
func WithDiagnostics(d DiagnosticsSink) Option {
	return func(t *Terminal) { t.diagnostics = d }
}

// WithClipboard attaches the OSC 52 clipboard provider (default: discards
// writes, returns nothing on read).
func WithClipboard(c ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// WithConvertEOL forces line feeds to also return the cursor to column 0,
// equivalent to the host pre-setting LNM (ModeAutoNewline) at construction.
func WithConvertEOL(convert bool) Option {
	return func(t *Terminal) { t.convertEOL = convert }
}

// WithScreenReaderMode enables a per-character callback on every printed
// rune via HostDelegate.ScreenReaderChar, for accessibility tooling.
func WithScreenReaderMode(enabled bool) Option {
	return func(t *Terminal) { t.screenReaderMode = enabled }
}

func New(opts ...Option) *Terminal {
	t := &Terminal{
		mode:        ModeAutoWrap | ModeCursorVisible,
		curAttr:     DefaultAttr,
		charsets:    newCharsetTable(),
		scrollback:  200,
		termName:    "xterm-256color",
		delegate:    NoopHostDelegate{},
		diagnostics: StdLogDiagnostics{},
		clipboard:   NoopClipboard{},
		dirtyFrom:   -1,
		dirtyTo:     -1,
	}
	t.pendingCols, t.pendingRows = 80, 25
	for _, opt := range opts {
		opt(t)
	}
	if t.convertEOL {
		t.mode |= ModeAutoNewline
	}
	t.buffers = NewBufferSet(t.pendingRows, t.pendingCols, t.scrollback, DefaultAttr)
	t.parser = NewParser(t)
	return t
}

// active returns the currently visible buffer.
func (t *Terminal) active() *Buffer { return t.buffers.Active() }

// Feed consumes a chunk of the host-provided byte stream, driving the
// parser and dispatching every completed action synchronously. Must not be
// called re-entrantly from within a HostDelegate callback.
func (t *Terminal) Feed(data []byte) {
	t.markDirty(t.active().Y, t.active().Y)
	t.parser.Feed(data)
}

// respond delivers terminal-originated bytes (replies, mouse reports) to
// the host via the delegate's Send.
func (t *Terminal) respond(b []byte) {
	t.delegate.Send(b)
}

// Resize changes the viewport dimensions of both buffers and clamps the
// cursor.
func (t *Terminal) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	t.buffers.Resize(cols, rows, t.curAttr)
	t.delegate.SizeChanged()
	t.markDirty(0, rows-1)
}

// Title returns the current window title set by OSC 0/2.
func (t *Terminal) Title() string { return t.title }

// Rows, Cols return the active buffer's viewport dimensions.
func (t *Terminal) Rows() int { return t.active().Rows() }
func (t *Terminal) Cols() int { return t.active().Cols() }

// CursorPos returns the cursor's (row, col), both 0-based viewport
// coordinates.
func (t *Terminal) CursorPos() (row, col int) {
	b := t.active()
	return b.Y, b.X
}

// LineContent returns the trimmed text content of visible row y.
func (t *Terminal) LineContent(y int) string {
	line := t.active().Line(y)
	if line == nil {
		return ""
	}
	return line.Content()
}

// WriteString is a convenience wrapper over Feed for string input.
func (t *Terminal) WriteString(s string) {
	t.Feed([]byte(s))
}

// Mode returns the current mode bitmask (read-only snapshot for hosts that
// need to branch on e.g. mouse-reporting state).
func (t *Terminal) Mode() Mode { return t.mode }

// Buffers exposes the underlying buffer set for host rendering.
func (t *Terminal) Buffers() *BufferSet { return t.buffers }

// SendEvent encodes and delivers a mouse button press/release per the
// active mouse-tracking mode; x, y are 1-based. release marks a button-up.
func (t *Terminal) SendEvent(buttonFlags, x, y int, release bool) {
	if !t.mode.MouseReportingActive() {
		return
	}
	t.respond(encodeMouse(t.mode, buttonFlags, x, y, release))
}

// SendMotion encodes and delivers a mouse-motion report; only emitted when
// any-event or button-event tracking is active, per X10/SGR/URXVT
// conventions.
func (t *Terminal) SendMotion(buttonFlags, x, y int) {
	if !t.mode.Has(ModeMouseAnyEvent) && !t.mode.Has(ModeMouseButtonEvent) {
		return
	}
	t.respond(encodeMouse(t.mode, buttonFlags+32, x, y, false))
}

// SendResponse delivers an out-of-band host-originated reply directly to
// the delegate's Send, bypassing the reply-table helpers in reply.go —
// used by hosts answering a custom or application-specific query.
func (t *Terminal) SendResponse(text string) {
	t.respond([]byte(text))
}

// resetAll implements RIS (ESC c): clears both buffers, resets modes,
// attributes, charsets, scroll region and tab stops to power-on defaults.
func (t *Terminal) resetAll() {
	attr := DefaultAttr
	t.buffers = NewBufferSet(t.active().Rows(), t.active().Cols(), t.scrollback, attr)
	t.mode = ModeAutoWrap | ModeCursorVisible
	t.curAttr = attr
	t.charsets = newCharsetTable()
	t.title = ""
	t.titleStack = nil
	t.activeLink = nil
	t.promptMarks = nil
	t.parser.Reset()
}

// --- dirty-region tracking (§6: hosts poll GetUpdateRange/ClearUpdateRange
// rather than re-scanning the whole viewport every frame) ---

func (t *Terminal) markDirty(from, to int) {
	if from > to {
		from, to = to, from
	}
	if t.dirtyFrom < 0 {
		t.dirtyFrom, t.dirtyTo = from, to
		return
	}
	if from < t.dirtyFrom {
		t.dirtyFrom = from
	}
	if to > t.dirtyTo {
		t.dirtyTo = to
	}
}

// GetUpdateRange returns the inclusive row range marked dirty since the
// last ClearUpdateRange, and whether anything is dirty at all. Rows are
// marked when printed to, the cursor row is marked at the start of each
// Feed, and the whole viewport is marked on Resize; erase, scroll and
// line-edit operations mark no rows of their own.
func (t *Terminal) GetUpdateRange() (from, to int, ok bool) {
	if t.dirtyFrom < 0 {
		return 0, 0, false
	}
	return t.dirtyFrom, t.dirtyTo, true
}

// ClearUpdateRange resets the dirty-row tracker.
func (t *Terminal) ClearUpdateRange() {
	t.dirtyFrom, t.dirtyTo = -1, -1
}

// --- printing ---

// printRune places a single decoded, charset-translated rune at the cursor,
// implementing wrap-at-margin, wide-glyph spacer insertion, and insert-mode
// shifting (§4.2).
func (t *Terminal) printRune(r rune) {
	if isCombining(r) {
		t.combineIntoPrevious(r)
		return
	}

	r = t.charsets.Translate(r)
	w := runeWidth(r)
	if w <= 0 {
		w = 1
	}

	b := t.active()

	if b.X+w > b.cols {
		if !t.mode.Has(ModeAutoWrap) {
			b.X = b.cols - w
			if b.X < 0 {
				b.X = 0
			}
		} else {
			t.newlineForWrap()
			b = t.active()
			if line := b.Line(b.Y); line != nil {
				line.SetWrapped(true)
			}
		}
	}

	if t.mode.Has(ModeInsert) {
		b.InsertCells(b.Y, b.X, w, BlankCell(t.curAttr))
	}

	t.setGlyph(b, b.X, r, w)
	t.markDirty(b.Y, b.Y)
	if t.screenReaderMode {
		t.delegate.ScreenReaderChar(r)
	}

	b.X += w
	if b.X > b.cols {
		b.X = b.cols
	}
}

func (t *Terminal) setGlyph(b *Buffer, x int, r rune, w int) {
	line := b.Line(b.Y)
	if line == nil {
		return
	}
	attr := t.curAttr
	if w == 2 {
		attr = attr.Set(FlagWide)
	}
	line.Set(x, Cell{Char: r, Width: uint8(w), Attr: attr, Hyperlink: t.activeLink})
	if w == 2 && x+1 < line.Len() {
		line.Set(x+1, Cell{Char: 0, Width: 0, Attr: t.curAttr.Set(FlagWideSpacer), Hyperlink: t.activeLink})
	}
}

func (t *Terminal) combineIntoPrevious(r rune) {
	b := t.active()
	x := b.X - 1
	if x < 0 {
		return
	}
	line := b.Line(b.Y)
	if line == nil {
		return
	}
	c := line.Cell(x)
	if c == nil {
		return
	}
	// The mark is discarded: a Cell holds a single rune, so combining marks
	// are not folded into the preceding cell.
	_ = r
}

// newlineForWrap advances the cursor to column 0 of the next row,
// scrolling if already at scrollBottom — the wrap-specific variant of
// index() that always resets X.
func (t *Terminal) newlineForWrap() {
	b := t.active()
	if b.Y == b.scrollBottom {
		b.Scroll(true, t.curAttr.ForErase())
		t.delegate.Scrolled(b.yDisp)
	} else {
		b.Y++
	}
	b.X = 0
}
