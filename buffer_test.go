package coreterm

import "testing"

func TestNewBufferDimensions(t *testing.T) {
	b := NewBuffer(5, 10, 20, DefaultAttr)
	if b.Rows() != 5 || b.Cols() != 10 {
		t.Fatalf("expected 5x10, got %dx%d", b.Rows(), b.Cols())
	}
	if b.ScrollbackLen() != 0 {
		t.Errorf("expected empty scrollback on a fresh buffer, got %d", b.ScrollbackLen())
	}
}

func TestBufferScrollProducesScrollback(t *testing.T) {
	b := NewBuffer(3, 5, 10, DefaultAttr)
	b.Line(0).Set(0, Cell{Char: 'A', Width: 1, Attr: DefaultAttr})

	b.Scroll(false, DefaultAttr)

	if b.ScrollbackLen() != 1 {
		t.Fatalf("expected 1 line of scrollback after scroll, got %d", b.ScrollbackLen())
	}
	if got := b.ScrollbackLine(0).Content(); got != "A" {
		t.Errorf("expected scrolled-off line content 'A', got %q", got)
	}
}

func TestBufferScrollWithRegionDoesNotProduceScrollback(t *testing.T) {
	b := NewBuffer(5, 5, 10, DefaultAttr)
	b.SetScrollRegion(1, 3)
	b.Y = 3

	b.Scroll(false, DefaultAttr)

	if b.ScrollbackLen() != 0 {
		t.Errorf("expected no scrollback when scrollTop != 0, got %d", b.ScrollbackLen())
	}
}

func TestBufferInsertDeleteLines(t *testing.T) {
	b := NewBuffer(4, 3, 0, DefaultAttr)
	for y := 0; y < 4; y++ {
		b.Line(y).Set(0, Cell{Char: rune('A' + y), Width: 1, Attr: DefaultAttr})
	}

	b.InsertLines(1, 1, DefaultAttr)
	if b.Line(1).Content() != "" {
		t.Errorf("expected blank inserted line at 1, got %q", b.Line(1).Content())
	}
	if b.Line(2).Content() != "B" {
		t.Errorf("expected old line B pushed to row 2, got %q", b.Line(2).Content())
	}

	b.DeleteLines(1, 1, DefaultAttr)
	if b.Line(1).Content() != "B" {
		t.Errorf("expected B restored at row 1 after delete, got %q", b.Line(1).Content())
	}
}

func TestBufferSaveRestoreCursor(t *testing.T) {
	b := NewBuffer(5, 5, 0, DefaultAttr)
	b.X, b.Y = 2, 3
	attr := DefaultAttr.WithForeground(1)
	b.SaveCursor(attr, true)

	b.X, b.Y = 0, 0

	restoredAttr, origin := b.RestoreCursor()
	if b.X != 2 || b.Y != 3 {
		t.Errorf("expected cursor restored to (2,3), got (%d,%d)", b.X, b.Y)
	}
	if !origin {
		t.Error("expected origin mode restored true")
	}
	if mode, idx := restoredAttr.Foreground(); mode != ColorIndexed || idx != 1 {
		t.Errorf("expected restored attr foreground index 1, got mode=%v idx=%d", mode, idx)
	}
}

func TestBufferTabStops(t *testing.T) {
	b := NewBuffer(1, 40, 0, DefaultAttr)
	if b.NextTabStop(0) != 8 {
		t.Errorf("expected default tab stop at column 8, got %d", b.NextTabStop(0))
	}
	b.ClearAllTabStops()
	b.SetTabStop(5)
	if b.NextTabStop(0) != 5 {
		t.Errorf("expected tab stop at 5, got %d", b.NextTabStop(0))
	}
	if b.PrevTabStop(10) != 5 {
		t.Errorf("expected prev tab stop at 5, got %d", b.PrevTabStop(10))
	}
}

func TestBufferScrollWithTopAnchoredPartialRegionLeavesRowsBelowUntouched(t *testing.T) {
	// A top-anchored region that doesn't reach the bottom of the screen
	// (e.g. DECSTBM "1;3r" on a taller screen, a status-line/split layout)
	// must only shift lines within [scrollTop, scrollBottom]; rows below
	// the region must not move.
	b := NewBuffer(4, 1, 0, DefaultAttr)
	for y, ch := range []rune{'A', 'B', 'F', 'G'} {
		b.Line(y).Set(0, Cell{Char: ch, Width: 1, Attr: DefaultAttr})
	}
	b.SetScrollRegion(0, 1)

	b.Scroll(false, DefaultAttr)

	if got := b.Line(0).Content(); got != "B" {
		t.Errorf("expected row 0 'B', got %q", got)
	}
	if got := b.Line(1).Content(); got != "" {
		t.Errorf("expected row 1 blank, got %q", got)
	}
	if got := b.Line(2).Content(); got != "F" {
		t.Errorf("expected row 2 untouched 'F', got %q", got)
	}
	if got := b.Line(3).Content(); got != "G" {
		t.Errorf("expected row 3 untouched 'G', got %q", got)
	}
}

func TestBufferScrollWithTopAnchoredFullRegionProducesScrollback(t *testing.T) {
	b := NewBuffer(3, 1, 10, DefaultAttr)
	b.Line(0).Set(0, Cell{Char: 'A', Width: 1, Attr: DefaultAttr})
	b.Line(1).Set(0, Cell{Char: 'B', Width: 1, Attr: DefaultAttr})
	b.Line(2).Set(0, Cell{Char: 'C', Width: 1, Attr: DefaultAttr})

	b.Scroll(false, DefaultAttr)

	if b.ScrollbackLen() != 1 {
		t.Fatalf("expected 1 line of scrollback, got %d", b.ScrollbackLen())
	}
	if got := b.ScrollbackLine(0).Content(); got != "A" {
		t.Errorf("expected 'A' retained as scrollback, got %q", got)
	}
	if got := b.Line(0).Content(); got != "B" {
		t.Errorf("expected row 0 'B', got %q", got)
	}
	if got := b.Line(2).Content(); got != "" {
		t.Errorf("expected row 2 blank, got %q", got)
	}
}

func TestBufferResizePreservesTopLeftContent(t *testing.T) {
	b := NewBuffer(3, 5, 0, DefaultAttr)
	b.Line(0).Set(0, Cell{Char: 'X', Width: 1, Attr: DefaultAttr})

	b.Resize(3, 2, DefaultAttr)

	if b.Cols() != 3 || b.Rows() != 2 {
		t.Fatalf("expected 2x3 after resize, got %dx%d", b.Rows(), b.Cols())
	}
	if got := b.Line(0).Content(); got != "X" {
		t.Errorf("expected content preserved at (0,0), got %q", got)
	}
}
