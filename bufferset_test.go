package coreterm

import "testing"

func TestBufferSetStartsOnNormal(t *testing.T) {
	bs := NewBufferSet(5, 10, 20, DefaultAttr)
	if bs.IsAlternate() {
		t.Fatal("expected to start on the normal buffer")
	}
	if bs.Active() != bs.Normal {
		t.Fatal("expected Active() to return Normal initially")
	}
}

func TestBufferSetActivateAlternateClearsAndHomesCursor(t *testing.T) {
	bs := NewBufferSet(5, 10, 20, DefaultAttr)
	bs.Normal.X, bs.Normal.Y = 3, 2
	bs.Alternate.Line(0).Set(0, Cell{Char: 'Z', Width: 1, Attr: DefaultAttr})

	ok := bs.ActivateAlternate(DefaultAttr)
	if !ok {
		t.Fatal("expected ActivateAlternate to report a switch")
	}
	if !bs.IsAlternate() {
		t.Fatal("expected alternate buffer active")
	}
	if bs.Alternate.X != 0 || bs.Alternate.Y != 0 {
		t.Errorf("expected cursor homed on activation, got (%d,%d)", bs.Alternate.X, bs.Alternate.Y)
	}
	if content := bs.Alternate.Line(0).Content(); content != "" {
		t.Errorf("expected alternate buffer cleared on activation, got %q", content)
	}
}

func TestBufferSetActivateAlternateNoopWhenAlreadyActive(t *testing.T) {
	bs := NewBufferSet(5, 10, 20, DefaultAttr)
	bs.ActivateAlternate(DefaultAttr)
	if bs.ActivateAlternate(DefaultAttr) {
		t.Error("expected second ActivateAlternate to be a no-op")
	}
}

func TestBufferSetActivateNormalLeavesNormalContentsUntouched(t *testing.T) {
	bs := NewBufferSet(5, 10, 20, DefaultAttr)
	bs.Normal.Line(0).Set(0, Cell{Char: 'N', Width: 1, Attr: DefaultAttr})

	bs.ActivateAlternate(DefaultAttr)
	bs.ActivateNormal()

	if content := bs.Normal.Line(0).Content(); content != "N" {
		t.Errorf("expected normal buffer contents preserved, got %q", content)
	}
}
