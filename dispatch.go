package coreterm

import (
	"strconv"
	"strings"
)

// csiHandler is one entry of the final-byte-indexed CSI dispatch table —
// the §9 "array of function pointers" redesign flag, replacing a
// dictionary-of-closures.
type csiHandler func(t *Terminal, params []int, collect []byte)

var csiHandlers [128]csiHandler
var escHandlers = map[string]func(t *Terminal){}

func registerCsi(final byte, fn csiHandler) { csiHandlers[final] = fn }

func init() {
	registerCsi('A', func(t *Terminal, p []int, c []byte) { t.cursorUp(param(p, 0, 1)) })
	registerCsi('B', func(t *Terminal, p []int, c []byte) { t.cursorDown(param(p, 0, 1)) })
	registerCsi('C', func(t *Terminal, p []int, c []byte) { t.cursorForward(param(p, 0, 1)) })
	registerCsi('D', func(t *Terminal, p []int, c []byte) { t.cursorBackward(param(p, 0, 1)) })
	registerCsi('E', func(t *Terminal, p []int, c []byte) { t.cursorNextLine(param(p, 0, 1)) })
	registerCsi('F', func(t *Terminal, p []int, c []byte) { t.cursorPrevLine(param(p, 0, 1)) })
	registerCsi('G', func(t *Terminal, p []int, c []byte) { t.cursorHAbs(param(p, 0, 1)) })
	registerCsi('d', func(t *Terminal, p []int, c []byte) { t.cursorVAbs(param(p, 0, 1)) })
	registerCsi('H', func(t *Terminal, p []int, c []byte) { t.cursorPosition(p) })
	registerCsi('f', func(t *Terminal, p []int, c []byte) { t.cursorPosition(p) })
	registerCsi('Z', func(t *Terminal, p []int, c []byte) { t.cursorBackTab(param(p, 0, 1)) })
	registerCsi('I', func(t *Terminal, p []int, c []byte) { t.cursorForwardTab(param(p, 0, 1)) })

	registerCsi('J', func(t *Terminal, p []int, c []byte) { t.eraseInDisplay(param(p, 0, 0)) })
	registerCsi('K', func(t *Terminal, p []int, c []byte) { t.eraseInLine(param(p, 0, 0)) })
	registerCsi('X', func(t *Terminal, p []int, c []byte) { t.eraseChars(param(p, 0, 1)) })

	registerCsi('L', func(t *Terminal, p []int, c []byte) { t.insertLines(param(p, 0, 1)) })
	registerCsi('M', func(t *Terminal, p []int, c []byte) { t.deleteLines(param(p, 0, 1)) })
	registerCsi('@', func(t *Terminal, p []int, c []byte) { t.insertChars(param(p, 0, 1)) })
	registerCsi('P', func(t *Terminal, p []int, c []byte) { t.deleteChars(param(p, 0, 1)) })
	registerCsi('S', func(t *Terminal, p []int, c []byte) { t.scrollUp(param(p, 0, 1)) })
	registerCsi('T', func(t *Terminal, p []int, c []byte) { t.scrollDown(param(p, 0, 1)) })

	registerCsi('m', func(t *Terminal, p []int, c []byte) { t.selectGraphicRendition(p) })

	registerCsi('h', func(t *Terminal, p []int, c []byte) { t.setModes(p, c, true) })
	registerCsi('l', func(t *Terminal, p []int, c []byte) { t.setModes(p, c, false) })

	registerCsi('r', func(t *Terminal, p []int, c []byte) { t.setScrollRegion(p) })
	registerCsi('s', func(t *Terminal, p []int, c []byte) { t.saveCursor() })
	registerCsi('u', func(t *Terminal, p []int, c []byte) { t.restoreCursor() })

	registerCsi('n', func(t *Terminal, p []int, c []byte) { t.deviceStatus(param(p, 0, 0)) })
	registerCsi('c', func(t *Terminal, p []int, c []byte) { t.deviceAttributes(p, c) })
	registerCsi('g', func(t *Terminal, p []int, c []byte) { t.clearTabs(param(p, 0, 0)) })

	registerCsi('t', func(t *Terminal, p []int, c []byte) { t.windowOp(p) })

	// 'p' is shared across several collect-qualified sequences (DECSTR,
	// DECRQM, DECSCL); only DECSTR ("CSI ! p") is implemented.
	registerCsi('p', func(t *Terminal, p []int, c []byte) {
		if len(c) == 1 && c[0] == '!' {
			t.softReset()
		}
	})

	escHandlers["7"] = func(t *Terminal) { t.saveCursor() }
	escHandlers["8"] = func(t *Terminal) { t.restoreCursor() }
	escHandlers["D"] = func(t *Terminal) { t.index() }
	escHandlers["M"] = func(t *Terminal) { t.reverseIndexOp() }
	escHandlers["E"] = func(t *Terminal) { t.nextLineOp() }
	escHandlers["H"] = func(t *Terminal) { t.horizontalTabSet() }
	escHandlers["c"] = func(t *Terminal) { t.hardReset() }
	escHandlers["="] = func(t *Terminal) { t.mode |= ModeApplicationKeypad }
	escHandlers[">"] = func(t *Terminal) { t.mode &^= ModeApplicationKeypad }
	escHandlers["n"] = func(t *Terminal) { t.charsets.LockingShift(2) }
	escHandlers["o"] = func(t *Terminal) { t.charsets.LockingShift(3) }
	escHandlers["~"] = func(t *Terminal) { t.charsets.LockingShift(1) }
	escHandlers["}"] = func(t *Terminal) { t.charsets.LockingShift(2) }
	escHandlers["|"] = func(t *Terminal) { t.charsets.LockingShift(3) }
	escHandlers["%@"] = func(t *Terminal) {}
	escHandlers["%G"] = func(t *Terminal) {}
	escHandlers["#8"] = func(t *Terminal) { t.active().FillWithE() }
}

func param(p []int, i, def int) int {
	if i >= len(p) || p[i] == 0 {
		return def
	}
	return p[i]
}

func paramOr(p []int, i, def int) int {
	if i >= len(p) {
		return def
	}
	return p[i]
}

// --- ParserHandler implementation ---

func (t *Terminal) Print(r rune) {
	t.printRune(r)
}

func (t *Terminal) Execute(b byte) {
	switch b {
	case '\a':
		t.delegate.Bell()
	case '\b':
		t.cursorBackward(1)
	case '\t':
		t.horizontalTab()
	case '\n', '\v', '\f':
		t.lineFeedOp()
	case '\r':
		t.active().X = 0
	case 0x0E: // SO
		t.charsets.LockingShift(1)
	case 0x0F: // SI
		t.charsets.LockingShift(0)
	}
}

func (t *Terminal) EscDispatch(collect []byte, ignored bool, final byte) {
	key := string(collect) + string(final)
	if fn, ok := escHandlers[key]; ok {
		fn(t)
		return
	}
	if len(collect) == 1 && isCharsetDesignator(collect[0]) {
		t.designateCharset(collect[0], final)
		return
	}
	t.diagnostics.Warnf("unhandled ESC %s", key)
}

func isCharsetDesignator(b byte) bool {
	switch b {
	case '(', ')', '*', '+', '-', '.', '/':
		return true
	}
	return false
}

func (t *Terminal) designateCharset(intro, final byte) {
	slot := map[byte]GSlot{'(': G0, ')': G1, '*': G2, '+': G3}[intro]
	cs := CharsetASCII
	if final == '0' {
		cs = CharsetLineDrawing
	}
	t.charsets.Designate(slot, cs)
}

func (t *Terminal) CsiDispatch(params []int, collect []byte, ignored bool, final byte) {
	if ignored {
		t.diagnostics.Warnf("CSI parameter overflow before final %q", final)
	}
	if int(final) < len(csiHandlers) && csiHandlers[final] != nil {
		csiHandlers[final](t, params, collect)
		return
	}
	t.diagnostics.Warnf("unhandled CSI final %q", final)
}

func (t *Terminal) OscDispatch(payload []byte, bellTerminated bool) {
	t.dispatchOSC(payload)
}

func (t *Terminal) Hook(collect []byte, params []int, ignored bool, final byte) DcsHandler {
	if len(collect) == 1 && collect[0] == '$' && final == 'q' {
		return &decrqssHandler{t: t}
	}
	return &noopDcsHandler{}
}

func (t *Terminal) Error() {
	t.diagnostics.Warnf("parser protocol error")
}

type noopDcsHandler struct{}

func (noopDcsHandler) Hook([]byte, []int, byte) {}
func (noopDcsHandler) Put(byte)                 {}
func (noopDcsHandler) Unhook()                  {}

// decrqssHandler implements DECRQSS (DCS $q), replying with the serialized
// current setting for the requested mode (§4.3).
type decrqssHandler struct {
	t       *Terminal
	request []byte
}

func (h *decrqssHandler) Hook(collect []byte, params []int, final byte) {}
func (h *decrqssHandler) Put(b byte)                                    { h.request = append(h.request, b) }
func (h *decrqssHandler) Unhook() {
	t := h.t
	req := string(h.request)
	switch {
	case req == "r":
		top, bottom := t.active().ScrollRegion()
		setting := strconv.Itoa(top+1) + ";" + strconv.Itoa(bottom+1)
		t.respond(decrqssReply(true, setting, 'r'))
	case req == "m":
		t.respond(decrqssReply(true, "0", 'm'))
	case req == `"q`:
		t.respond(decrqssReply(true, `0"`, 'q'))
	case req == `"p`:
		t.respond(decrqssReply(true, `61"`, 'p'))
	default:
		t.respond(decrqssReply(false, "", 'r'))
	}
}

// --- cursor motion ---

func (t *Terminal) cursorUp(n int)      { b := t.active(); b.Y -= n; t.clampCursorToRegion(b) }
func (t *Terminal) cursorDown(n int)    { b := t.active(); b.Y += n; t.clampCursorToRegion(b) }
func (t *Terminal) cursorForward(n int) { b := t.active(); b.X += n; t.clampCursor(b) }
func (t *Terminal) cursorBackward(n int) {
	b := t.active()
	b.X -= n
	t.clampCursor(b)
}

func (t *Terminal) cursorNextLine(n int) {
	b := t.active()
	b.Y += n
	b.X = 0
	t.clampCursorToRegion(b)
}

func (t *Terminal) cursorPrevLine(n int) {
	b := t.active()
	b.Y -= n
	b.X = 0
	t.clampCursorToRegion(b)
}

func (t *Terminal) cursorHAbs(col int) {
	b := t.active()
	b.X = col - 1
	t.clampCursor(b)
}

func (t *Terminal) cursorVAbs(row int) {
	b := t.active()
	b.Y = t.originOffset() + row - 1
	t.clampCursorToRegion(b)
}

func (t *Terminal) cursorPosition(p []int) {
	row := param(p, 0, 1)
	col := param(p, 1, 1)
	b := t.active()
	b.Y = t.originOffset() + row - 1
	b.X = col - 1
	t.clampCursorToRegion(b)
}

func (t *Terminal) originOffset() int {
	if t.mode.Has(ModeOriginMode) {
		top, _ := t.active().ScrollRegion()
		return top
	}
	return 0
}

func (t *Terminal) clampCursor(b *Buffer) {
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

func (t *Terminal) clampCursorToRegion(b *Buffer) {
	top, bottom := b.ScrollRegion()
	lo, hi := 0, b.rows-1
	if t.mode.Has(ModeOriginMode) {
		lo, hi = top, bottom
	}
	if b.Y < lo {
		b.Y = lo
	}
	if b.Y > hi {
		b.Y = hi
	}
	t.clampCursor(b)
}

func (t *Terminal) cursorBackTab(n int) {
	b := t.active()
	for i := 0; i < n; i++ {
		b.X = b.PrevTabStop(b.X)
	}
}

func (t *Terminal) cursorForwardTab(n int) {
	b := t.active()
	for i := 0; i < n; i++ {
		b.X = b.NextTabStop(b.X)
	}
}

func (t *Terminal) horizontalTab() {
	b := t.active()
	b.X = b.NextTabStop(b.X)
}

func (t *Terminal) horizontalTabSet() {
	b := t.active()
	b.SetTabStop(b.X)
}

func (t *Terminal) clearTabs(mode int) {
	b := t.active()
	switch mode {
	case 0:
		b.ClearTabStop(b.X)
	case 3:
		b.ClearAllTabStops()
	}
}

// --- erase ---

func (t *Terminal) eraseInDisplay(mode int) {
	b := t.active()
	fill := BlankCell(t.curAttr.ForErase())
	switch mode {
	case 0:
		b.ReplaceCells(b.Y, b.X, b.cols, fill)
		for y := b.Y + 1; y < b.rows; y++ {
			b.ClearLine(y, fill)
		}
	case 1:
		b.ReplaceCells(b.Y, 0, b.X+1, fill)
		for y := 0; y < b.Y; y++ {
			b.ClearLine(y, fill)
		}
	case 2:
		b.Clear(t.curAttr.ForErase())
	case 3:
		// Also trims scrollback, but unlike a hard reset this must not move
		// the cursor or disturb the scroll region or tab stops.
		b.Clear(t.curAttr.ForErase())
		b.TrimScrollback()
	}
}

func (t *Terminal) eraseInLine(mode int) {
	b := t.active()
	fill := BlankCell(t.curAttr.ForErase())
	switch mode {
	case 0:
		b.ReplaceCells(b.Y, b.X, b.cols, fill)
	case 1:
		b.ReplaceCells(b.Y, 0, b.X+1, fill)
	case 2:
		b.ClearLine(b.Y, fill)
	}
	if mode != 0 {
		if line := b.Line(b.Y); line != nil {
			line.SetWrapped(false)
		}
	}
}

func (t *Terminal) eraseChars(n int) {
	b := t.active()
	fill := BlankCell(t.curAttr.ForErase())
	b.ReplaceCells(b.Y, b.X, b.X+n, fill)
}

// --- line / char edit ---

func (t *Terminal) insertLines(n int) {
	b := t.active()
	top, bottom := b.ScrollRegion()
	if b.Y < top || b.Y > bottom {
		return
	}
	b.InsertLines(b.Y, n, t.curAttr.ForErase())
}

func (t *Terminal) deleteLines(n int) {
	b := t.active()
	top, bottom := b.ScrollRegion()
	if b.Y < top || b.Y > bottom {
		return
	}
	b.DeleteLines(b.Y, n, t.curAttr.ForErase())
}

func (t *Terminal) insertChars(n int) {
	b := t.active()
	b.InsertCells(b.Y, b.X, n, BlankCell(t.curAttr.ForErase()))
}

func (t *Terminal) deleteChars(n int) {
	b := t.active()
	b.DeleteCells(b.Y, b.X, n, BlankCell(t.curAttr.ForErase()))
}

func (t *Terminal) scrollUp(n int) {
	b := t.active()
	top, bottom := b.ScrollRegion()
	b.shiftRegionUp(top, bottom, n, t.curAttr.ForErase())
}

func (t *Terminal) scrollDown(n int) {
	b := t.active()
	top, bottom := b.ScrollRegion()
	b.shiftRegionDown(top, bottom, n, t.curAttr.ForErase())
}

// --- index / newline ---

func (t *Terminal) index() {
	b := t.active()
	if b.Y == b.scrollBottom {
		b.Scroll(false, t.curAttr.ForErase())
		t.delegate.Scrolled(b.yDisp)
	} else {
		b.Y++
		t.clampCursor(b)
	}
}

func (t *Terminal) reverseIndexOp() {
	b := t.active()
	if b.Y == b.scrollTop {
		b.ReverseIndex(t.curAttr.ForErase())
	} else {
		b.Y--
		t.clampCursor(b)
	}
}

func (t *Terminal) nextLineOp() {
	t.index()
	t.active().X = 0
}

func (t *Terminal) lineFeedOp() {
	t.index()
	if t.mode.Has(ModeAutoNewline) {
		t.active().X = 0
	}
	t.delegate.Linefeed()
}

// --- SGR ---

func (t *Terminal) selectGraphicRendition(params []int) {
	if len(params) == 0 {
		t.curAttr = DefaultAttr
		return
	}
	i := 0
	for i < len(params) {
		code := params[i]
		switch {
		case code == 0:
			t.curAttr = DefaultAttr
		case code == 1:
			t.curAttr = t.curAttr.Set(FlagBold)
		case code == 2:
			t.curAttr = t.curAttr.Set(FlagDim)
		case code == 3:
			t.curAttr = t.curAttr.Set(FlagItalic)
		case code == 4:
			t.curAttr = t.curAttr.Set(FlagUnderline)
		case code == 5:
			t.curAttr = t.curAttr.Set(FlagBlink)
		case code == 7:
			t.curAttr = t.curAttr.Set(FlagInverse)
		case code == 8:
			t.curAttr = t.curAttr.Set(FlagInvisible)
		case code == 22:
			t.curAttr = t.curAttr.Clear(FlagBold).Clear(FlagDim)
		case code == 23:
			t.curAttr = t.curAttr.Clear(FlagItalic)
		case code == 24:
			t.curAttr = t.curAttr.Clear(FlagUnderline)
		case code == 25:
			t.curAttr = t.curAttr.Clear(FlagBlink)
		case code == 27:
			t.curAttr = t.curAttr.Clear(FlagInverse)
		case code == 28:
			t.curAttr = t.curAttr.Clear(FlagInvisible)
		case code >= 30 && code <= 37:
			t.curAttr = t.curAttr.WithForeground(code - 30)
		case code == 38:
			n := t.consumeExtendedColor(params, &i)
			if n >= 0 {
				t.curAttr = t.curAttr.WithForeground(n)
			}
			continue
		case code == 39:
			t.curAttr = t.curAttr.WithDefaultForeground()
		case code >= 40 && code <= 47:
			t.curAttr = t.curAttr.WithBackground(code - 40)
		case code == 48:
			n := t.consumeExtendedColor(params, &i)
			if n >= 0 {
				t.curAttr = t.curAttr.WithBackground(n)
			}
			continue
		case code == 49:
			t.curAttr = t.curAttr.WithDefaultBackground()
		case code >= 90 && code <= 97:
			t.curAttr = t.curAttr.WithForeground(code - 90 + 8)
		case code >= 100 && code <= 107:
			t.curAttr = t.curAttr.WithBackground(code - 100 + 8)
		default:
			t.diagnostics.Warnf("unhandled SGR code %d", code)
		}
		i++
	}
}

// consumeExtendedColor parses the "5;N" or "2;R;G;B" tail following an
// SGR 38/48 code, advancing i past it, and returns the resolved palette
// index (nearest-match for true color, per Open Question (a)), or -1 if
// malformed.
func (t *Terminal) consumeExtendedColor(params []int, i *int) int {
	if *i+1 >= len(params) {
		*i = len(params)
		return -1
	}
	switch params[*i+1] {
	case 5:
		if *i+2 >= len(params) {
			*i = len(params)
			return -1
		}
		idx := params[*i+2]
		*i += 3
		return idx
	case 2:
		if *i+4 >= len(params) {
			*i = len(params)
			return -1
		}
		r, g, b := params[*i+2], params[*i+3], params[*i+4]
		*i += 5
		return NearestPaletteIndex(uint8(r), uint8(g), uint8(b))
	default:
		*i = len(params)
		return -1
	}
}

// --- modes ---

func (t *Terminal) setModes(params []int, collect []byte, set bool) {
	private := len(collect) == 1 && collect[0] == '?'
	for _, code := range params {
		if private {
			t.setPrivateMode(code, set)
		} else {
			t.setAnsiMode(code, set)
		}
	}
}

func (t *Terminal) setPrivateMode(code int, set bool) {
	switch code {
	case 1:
		t.setMode(ModeApplicationCursor, set)
	case 3:
		t.toggleColumn132(set)
	case 5:
		t.setMode(ModeReverseVideo, set)
	case 6:
		t.setMode(ModeOriginMode, set)
		b := t.active()
		b.X, b.Y = 0, t.originOffset()
	case 7:
		t.setMode(ModeAutoWrap, set)
	case 9:
		t.setMode(ModeMouseX10, set)
	case 1000:
		t.setMode(ModeMouseX10, set)
	case 1002:
		t.setMode(ModeMouseButtonEvent, set)
	case 1003:
		t.setMode(ModeMouseAnyEvent, set)
	case 1004:
		t.setMode(ModeFocusReporting, set)
	case 1005:
		t.setMode(ModeMouseUTF8, set)
	case 1006:
		t.setMode(ModeMouseSGR, set)
	case 1015:
		t.setMode(ModeMouseURXVT, set)
	case 12:
		t.setMode(ModeCursorBlink, set)
	case 25:
		t.setMode(ModeCursorVisible, set)
		if set {
			t.delegate.ShowCursor()
		}
	case 47, 1047:
		t.swapScreen(set, false)
	case 1048:
		if set {
			t.saveCursor()
		} else {
			t.restoreCursor()
		}
	case 1049:
		t.swapScreen(set, true)
	case 66:
		t.setMode(ModeApplicationKeypad, set)
	case 2004:
		t.setMode(ModeBracketedPaste, set)
	default:
		t.diagnostics.Warnf("unhandled private mode %d", code)
	}
}

func (t *Terminal) setAnsiMode(code int, set bool) {
	switch code {
	case 4:
		t.setMode(ModeInsert, set)
	case 20:
		t.setMode(ModeAutoNewline, set)
	default:
		t.diagnostics.Warnf("unhandled ANSI mode %d", code)
	}
}

func (t *Terminal) setMode(m Mode, set bool) {
	if set {
		t.mode |= m
	} else {
		t.mode &^= m
	}
}

func (t *Terminal) toggleColumn132(set bool) {
	if set {
		t.savedCols = t.buffers.Active().Cols()
		t.Resize(132, t.buffers.Active().Rows())
	} else if t.savedCols > 0 {
		t.Resize(t.savedCols, t.buffers.Active().Rows())
		t.savedCols = 0
	}
	t.setMode(ModeColumn132, set)
}

func (t *Terminal) swapScreen(toAlternate, withCursorSave bool) {
	if toAlternate {
		if withCursorSave {
			t.saveCursor()
		}
		if t.buffers.ActivateAlternate(t.curAttr.ForErase()) {
			t.delegate.BufferActivated()
		}
		return
	}
	if t.buffers.ActivateNormal() {
		t.delegate.BufferActivated()
	}
	if withCursorSave {
		t.restoreCursor()
	}
}

func (t *Terminal) saveCursor() {
	b := t.active()
	b.SaveCursor(t.curAttr, t.mode.Has(ModeOriginMode))
}

func (t *Terminal) restoreCursor() {
	b := t.active()
	attr, origin := b.RestoreCursor()
	t.curAttr = attr
	t.setMode(ModeOriginMode, origin)
}

func (t *Terminal) setScrollRegion(params []int) {
	b := t.active()
	top := param(params, 0, 1) - 1
	bottom := paramOr(params, 1, b.rows) - 1
	if bottom >= b.rows {
		bottom = b.rows - 1
	}
	b.SetScrollRegion(top, bottom)
	b.X = 0
	b.Y = t.originOffset()
}

// --- device attributes / status ---

func (t *Terminal) deviceStatus(code int) {
	switch code {
	case 5:
		t.respond([]byte("\x1b[0n"))
	case 6:
		b := t.active()
		row := b.Y - t.originOffset() + 1
		t.respond(cursorPositionReport(row, b.X+1))
	}
}

func (t *Terminal) deviceAttributes(params []int, collect []byte) {
	if len(collect) == 1 && collect[0] == '>' {
		t.respond(secondaryDA(t.termName, param(params, 0, 0)))
		return
	}
	t.respond(primaryDA(t.termName))
}

func (t *Terminal) windowOp(params []int) {
	switch param(params, 0, 0) {
	case 22:
		t.pushTitle()
	case 23:
		t.popTitle()
	default:
		// Other window-manipulation sequences (resize reports, iconify,
		// raise/lower) are a declared Non-goal.
	}
}

// --- reset ---

func (t *Terminal) hardReset() {
	t.resetAll()
}

func (t *Terminal) softReset() {
	t.mode = ModeAutoWrap | ModeCursorVisible
	t.curAttr = DefaultAttr
	b := t.active()
	b.X, b.Y = 0, 0
	b.SetScrollRegion(0, b.rows-1)
}

// --- OSC ---

func (t *Terminal) dispatchOSC(payload []byte) {
	s := string(payload)
	sep := strings.IndexByte(s, ';')
	code := s
	rest := ""
	if sep >= 0 {
		code = s[:sep]
		rest = s[sep+1:]
	}
	switch code {
	case "0", "2":
		t.setTitle(rest)
	case "1":
		t.setTitle(rest)
	case "4":
		t.oscSetColor(rest)
	case "7":
		t.setWorkingDirectory(rest)
	case "8":
		t.oscHyperlink(rest)
	case "9":
		t.delegate.Notify(rest)
	case "52":
		t.oscClipboard(rest)
	case "104":
		// reset color(s) to default: semantic stub, no per-index palette
		// override is tracked yet.
	case "133":
		t.oscShellIntegration(rest)
	default:
		t.diagnostics.Warnf("unhandled OSC code %q", code)
	}
}

func (t *Terminal) oscSetColor(rest string) {
	// OSC 4 ; index ; spec — dynamic palette override is a semantic stub:
	// we don't maintain a mutable palette copy per terminal instance.
	t.diagnostics.Warnf("OSC 4 dynamic color set is a semantic stub")
	_ = rest
}

func (t *Terminal) setTitle(title string) {
	t.title = title
	t.delegate.SetTerminalTitle(title)
}
