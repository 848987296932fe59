package coreterm

import "testing"

// capturingDelegate records every callback invocation for assertions.
type capturingDelegate struct {
	NoopHostDelegate
	sent []byte
}

func (d *capturingDelegate) Send(data []byte) { d.sent = append(d.sent, data...) }

func newTestTerminal() (*Terminal, *capturingDelegate) {
	d := &capturingDelegate{}
	term := New(WithSize(80, 25), WithDelegate(d))
	return term, d
}

func TestNewTerminalDefaults(t *testing.T) {
	term := New()
	if term.Rows() != 25 || term.Cols() != 80 {
		t.Fatalf("expected default 80x25, got %dx%d", term.Cols(), term.Rows())
	}
}

func TestTerminalWithSize(t *testing.T) {
	term := New(WithSize(40, 120))
	if term.Cols() != 40 || term.Rows() != 120 {
		t.Fatalf("expected 40x120, got %dx%d", term.Cols(), term.Rows())
	}
}

// Boundary scenario 1: "Hello\r\n" -> row 0 contains "Hello", cursor at (0,1).
func TestBoundaryCRLFLeavesLineAndHomesCursor(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("Hello\r\n")

	if got := term.LineContent(0); got != "Hello" {
		t.Errorf("expected row 0 'Hello', got %q", got)
	}
	row, col := term.CursorPos()
	if row != 1 || col != 0 {
		t.Errorf("expected cursor at row 1 col 0, got (%d,%d)", row, col)
	}
}

// Boundary scenario 2: "\x1b[2J\x1b[H" -> all cells blank, cursor at (0,0).
func TestBoundaryEraseDisplayAndHome(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("garbage on screen")
	term.WriteString("\x1b[2J\x1b[H")

	if got := term.LineContent(0); got != "" {
		t.Errorf("expected row 0 blank after ED2, got %q", got)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor homed at (0,0), got (%d,%d)", row, col)
	}
}

// Boundary scenario 3: "\x1b[31mA\x1b[0mB" -> (0,0) 'A' fg=1, (1,0) 'B' default.
func TestBoundarySGRAffectsOnlyPrintedCells(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b[31mA\x1b[0mB")

	cellA := term.active().Cell(0, 0)
	if cellA.Char != 'A' {
		t.Fatalf("expected 'A' at (0,0), got %q", cellA.Char)
	}
	if mode, idx := cellA.Attr.Foreground(); mode != ColorIndexed || idx != 1 {
		t.Errorf("expected fg index 1 on 'A', got mode=%v idx=%d", mode, idx)
	}

	cellB := term.active().Cell(0, 1)
	if cellB.Char != 'B' {
		t.Fatalf("expected 'B' at (1,0), got %q", cellB.Char)
	}
	if mode, _ := cellB.Attr.Foreground(); mode != ColorDefault {
		t.Errorf("expected default fg on 'B', got mode=%v", mode)
	}
}

// Boundary scenario 4: alternate-buffer session is invisible after return;
// normal buffer is unchanged.
func TestBoundaryAlternateScreenIsolatesContent(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("normal line")

	term.WriteString("\x1b[?1049h")
	term.WriteString("alt buffer content")
	term.WriteString("\x1b[?1049l")

	if got := term.LineContent(0); got != "normal line" {
		t.Errorf("expected normal buffer content restored, got %q", got)
	}
}

// Boundary scenario 5: CUP then DSR 6 yields a correctly 1-based CPR reply.
func TestBoundaryCursorPositionReport(t *testing.T) {
	term, d := newTestTerminal()
	term.WriteString("\x1b[5;10H")
	term.WriteString("\x1b[6n")

	want := "\x1b[5;10R"
	if string(d.sent) != want {
		t.Errorf("expected delegate to receive %q, got %q", want, string(d.sent))
	}

	row, col := term.CursorPos()
	if row != 4 || col != 9 {
		t.Errorf("expected cursor at 0-based (4,9), got (%d,%d)", row, col)
	}
}

// Boundary scenario 6: DECSTBM scroll region confines LF-triggered scroll.
func TestBoundaryScrollRegionConfinesScroll(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b[1;3r\x1b[3HX\nY")

	if got := term.LineContent(1); got != "X" {
		t.Errorf("expected 'X' pushed to row 1 after scroll, got %q", got)
	}
	row, col := term.CursorPos()
	if row != 2 || col != 2 {
		t.Errorf("expected cursor just past 'Y' at (2,2), got (%d,%d)", row, col)
	}
	if got := term.LineContent(1); len(got) > 0 && got[len(got)-1] != 'X' {
		// sanity check only; exact column of Y checked via cursor above
	}
}

func TestTerminalResizePreservesContent(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("resize me")

	term.Resize(40, 10)

	if term.Cols() != 40 || term.Rows() != 10 {
		t.Fatalf("expected 40x10 after resize, got %dx%d", term.Cols(), term.Rows())
	}
	if got := term.LineContent(0); got != "resize me" {
		t.Errorf("expected content preserved after resize, got %q", got)
	}
}

func TestTerminalHardResetClearsEverything(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b[31msomething")
	term.WriteString("\x1bc")

	if got := term.LineContent(0); got != "" {
		t.Errorf("expected blank screen after RIS, got %q", got)
	}
	row, col := term.CursorPos()
	if row != 0 || col != 0 {
		t.Errorf("expected cursor homed after RIS, got (%d,%d)", row, col)
	}
}

func TestTerminalDirtyRangeTracksPrintedRows(t *testing.T) {
	term, _ := newTestTerminal()
	term.ClearUpdateRange()
	term.WriteString("x")

	from, to, ok := term.GetUpdateRange()
	if !ok {
		t.Fatal("expected a dirty range after printing")
	}
	if from != 0 || to != 0 {
		t.Errorf("expected dirty range (0,0), got (%d,%d)", from, to)
	}

	term.ClearUpdateRange()
	if _, _, ok := term.GetUpdateRange(); ok {
		t.Error("expected no dirty range after clearing")
	}
}

func TestTerminalTitleOSC(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b]0;my title\x07")

	if term.Title() != "my title" {
		t.Errorf("expected title 'my title', got %q", term.Title())
	}
}

func TestTerminalWrapAtMargin(t *testing.T) {
	term := New(WithSize(5, 3))
	term.WriteString("ABCDEF")

	if got := term.LineContent(0); got != "ABCDE" {
		t.Errorf("expected 'ABCDE' on row 0, got %q", got)
	}
	if got := term.LineContent(1); got != "F" {
		t.Errorf("expected wrapped 'F' on row 1, got %q", got)
	}
}
