package coreterm

// HostDelegate is the single narrow interface a host implements to receive
// terminal-originated events. Every method is called synchronously from
// within Feed (or the originating public call) and MUST NOT re-enter Feed
// (§5). This replaces the teacher package's per-concern provider
// interfaces and its closure-based Middleware dispatch table (§9
// "Dynamic dispatch on delegate").
type HostDelegate interface {
	// Send delivers terminal-originated reply bytes: device attributes,
	// DSR, DECRQSS replies, encoded mouse events.
	Send(data []byte)
	// SetTerminalTitle is called on OSC 0/2 title changes.
	SetTerminalTitle(title string)
	// Bell is called on BEL (0x07).
	Bell()
	// Linefeed is called for each LF, VT or FF control byte.
	Linefeed()
	// ShowCursor is called when DECTCEM (CSI ? 25 h) sets the cursor visible.
	ShowCursor()
	// Scrolled is called after a line feed, index or autowrap at the bottom
	// margin scrolls the active buffer, with that buffer's yDisp.
	Scrolled(yDisp int)
	// BufferActivated is called after a normal/alternate buffer switch.
	BufferActivated()
	// SizeChanged is called after Resize.
	SizeChanged()
	// Notify forwards a desktop notification (OSC 9), a supplemented
	// feature grounded in the teacher's OSC payload-accumulation path.
	Notify(text string)
	// ScreenReaderChar is called once per printed rune when screen-reader
	// mode is enabled, for accessibility tooling.
	ScreenReaderChar(r rune)
}

// NoopHostDelegate discards every callback; used as the default delegate
// so Terminal is usable standalone before a host attaches.
type NoopHostDelegate struct{}

func (NoopHostDelegate) Send(data []byte)        {}
func (NoopHostDelegate) SetTerminalTitle(string) {}
func (NoopHostDelegate) Bell()                   {}
func (NoopHostDelegate) Linefeed()               {}
func (NoopHostDelegate) ShowCursor()             {}
func (NoopHostDelegate) Scrolled(yDisp int)      {}
func (NoopHostDelegate) BufferActivated()        {}
func (NoopHostDelegate) SizeChanged()            {}
func (NoopHostDelegate) Notify(text string)      {}
func (NoopHostDelegate) ScreenReaderChar(r rune) {}

var _ HostDelegate = NoopHostDelegate{}

// DiagnosticsSink receives protocol-error, semantic-stub and warning
// reports (§7). Kept as a narrow stdlib-backed interface rather than a
// third-party logging dependency — see DESIGN.md for why no example repo
// wires one into a library with this shape.
type DiagnosticsSink interface {
	Warnf(format string, args ...any)
}

// NoopDiagnostics discards every report.
type NoopDiagnostics struct{}

func (NoopDiagnostics) Warnf(format string, args ...any) {}

var _ DiagnosticsSink = NoopDiagnostics{}
