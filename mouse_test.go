package coreterm

import "testing"

func TestEncodeMouseX10Legacy(t *testing.T) {
	got := encodeMouse(Mode(0), 0, 5, 10, false)
	want := []byte{0x1b, '[', 'M', byte(0 + 32), byte(5 + 32), byte(10 + 32)}
	if string(got) != string(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEncodeMouseX10ClampsLargeCoordinates(t *testing.T) {
	got := encodeMouse(Mode(0), 0, 300, 300, false)
	if got[4] != 255 || got[5] != 255 {
		t.Errorf("expected clamped coordinate bytes at 255, got %v", got)
	}
}

func TestEncodeMouseSGRPress(t *testing.T) {
	m := ModeMouseSGR
	got := encodeMouse(m, 0, 5, 10, false)
	want := "\x1b[<0;5;10M"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestEncodeMouseSGRRelease(t *testing.T) {
	m := ModeMouseSGR
	got := encodeMouse(m, 0, 5, 10, true)
	want := "\x1b[<0;5;10m"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestEncodeMouseURXVT(t *testing.T) {
	m := ModeMouseURXVT
	got := encodeMouse(m, 0, 5, 10, false)
	want := "\x1b[32;5;10M"
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, string(got))
	}
}

func TestTerminalSendEventGatedOnMouseMode(t *testing.T) {
	term, d := newTestTerminal()
	term.SendEvent(0, 1, 1, false)
	if len(d.sent) != 0 {
		t.Fatalf("expected no mouse report without an active tracking mode, got %v", d.sent)
	}

	term.WriteString("\x1b[?1000h")
	term.SendEvent(0, 1, 1, false)
	if len(d.sent) == 0 {
		t.Fatal("expected a mouse report once X10 tracking is enabled")
	}
}

func TestTerminalSendMotionGatedOnButtonOrAnyEventMode(t *testing.T) {
	term, d := newTestTerminal()
	term.WriteString("\x1b[?1000h")
	term.SendMotion(0, 2, 2)
	if len(d.sent) != 0 {
		t.Fatalf("expected no motion report under plain X10 mode, got %v", d.sent)
	}

	term.WriteString("\x1b[?1002h")
	term.SendMotion(0, 2, 2)
	if len(d.sent) == 0 {
		t.Fatal("expected a motion report once button-event tracking is enabled")
	}
}
