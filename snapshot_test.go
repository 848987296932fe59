package coreterm

import "testing"

func TestSnapshotCapturesDimensionsAndCursor(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b[5;10H")

	snap := term.Snapshot()
	if snap.Cols != 80 || snap.Rows != 25 {
		t.Fatalf("expected 80x25 snapshot, got %dx%d", snap.Cols, snap.Rows)
	}
	if snap.CursorX != 9 || snap.CursorY != 4 {
		t.Errorf("expected 0-based cursor (9,4), got (%d,%d)", snap.CursorX, snap.CursorY)
	}
	if !snap.CursorShow {
		t.Error("expected cursor visible by default")
	}
}

func TestSnapshotReflectsTitleAndAlternateFlag(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b]0;hello\x07")
	term.WriteString("\x1b[?1049h")

	snap := term.Snapshot()
	if snap.Title != "hello" {
		t.Errorf("expected title 'hello', got %q", snap.Title)
	}
	if !snap.Alternate {
		t.Error("expected Alternate true after switching to alt screen")
	}
}

func TestSnapshotCellColorsAndHyperlink(t *testing.T) {
	term, _ := newTestTerminal()
	term.WriteString("\x1b[31mA\x1b]8;;https://example.com\x07B")

	snap := term.Snapshot()
	cellA := snap.Lines[0].Cells[0]
	if cellA.Char != "A" || cellA.FgDef || cellA.FgIdx != 1 {
		t.Errorf("expected indexed fg 1 on 'A', got %+v", cellA)
	}

	cellB := snap.Lines[0].Cells[1]
	if cellB.Char != "B" || cellB.Link != "https://example.com" {
		t.Errorf("expected 'B' carrying the hyperlink, got %+v", cellB)
	}
}
