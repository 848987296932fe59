package coreterm

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"strings"
)

// PromptMark records one shell-integration checkpoint (OSC 133) at a given
// absolute row (scrollback lines plus viewport row): the start of a prompt,
// the start of a command, or the exit status of a finished command.
type PromptMark struct {
	Kind     PromptMarkKind
	Row      int
	ExitCode int
}

// PromptMarkKind identifies which OSC 133 subcommand produced a PromptMark.
type PromptMarkKind int

const (
	MarkPromptStart PromptMarkKind = iota // OSC 133;A
	MarkCommandStart                      // OSC 133;B
	MarkCommandEnd                        // OSC 133;C
	MarkCommandDone                       // OSC 133;D[;exitcode]
)

// ClipboardProvider is the host hook for OSC 52 clipboard access. Read
// returns the current contents for the named selection ('c' clipboard,
// 'p' primary); Write stores data for that selection. Absent a provider,
// OSC 52 is accepted but discarded.
type ClipboardProvider interface {
	Read(selection byte) []byte
	Write(selection byte, data []byte)
}

// NoopClipboard discards writes and returns no data on read.
type NoopClipboard struct{}

func (NoopClipboard) Read(selection byte) []byte   { return nil }
func (NoopClipboard) Write(selection byte, d []byte) {}

var _ ClipboardProvider = NoopClipboard{}

func (t *Terminal) setWorkingDirectory(rest string) {
	// OSC 7 ; file://host/path — only the path component is kept.
	if u, err := url.Parse(rest); err == nil && u.Path != "" {
		t.workingDirectory = u.Path
		return
	}
	t.workingDirectory = rest
}

// WorkingDirectory returns the most recent path reported via OSC 7.
func (t *Terminal) WorkingDirectory() string { return t.workingDirectory }

// oscHyperlink implements OSC 8 ; params ; uri — an empty uri closes the
// currently open hyperlink so subsequently printed cells carry no link.
func (t *Terminal) oscHyperlink(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	uri := ""
	if len(parts) == 2 {
		uri = parts[1]
	}
	if uri == "" {
		t.activeLink = nil
		return
	}
	id := ""
	if len(parts) == 2 {
		for _, kv := range strings.Split(parts[0], ":") {
			if strings.HasPrefix(kv, "id=") {
				id = kv[3:]
			}
		}
	}
	t.activeLink = &Hyperlink{ID: id, URI: uri}
}

// oscClipboard implements OSC 52 ; selection ; base64-data (or "?" to
// request the current contents, replied as the same OSC sequence).
func (t *Terminal) oscClipboard(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) != 2 {
		return
	}
	selection := byte('c')
	if len(parts[0]) > 0 {
		selection = parts[0][0]
	}
	if parts[1] == "?" {
		data := t.clipboard.Read(selection)
		encoded := base64.StdEncoding.EncodeToString(data)
		t.respond([]byte("\x1b]52;" + string(selection) + ";" + encoded + "\x07"))
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		t.diagnostics.Warnf("OSC 52 invalid base64 payload")
		return
	}
	t.clipboard.Write(selection, decoded)
}

// oscShellIntegration implements OSC 133 prompt marks.
func (t *Terminal) oscShellIntegration(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	// Prompt marks are recorded against absolute, scrollback-inclusive row
	// numbers so they stay meaningful after the mark scrolls out of the
	// viewport.
	row := t.active().ScrollbackLen() + t.active().Y
	switch parts[0] {
	case "A":
		t.addPromptMark(PromptMark{Kind: MarkPromptStart, Row: row})
	case "B":
		t.addPromptMark(PromptMark{Kind: MarkCommandStart, Row: row})
	case "C":
		t.addPromptMark(PromptMark{Kind: MarkCommandEnd, Row: row})
	case "D":
		exitCode := 0
		if len(parts) == 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil {
				exitCode = n
			}
		}
		t.addPromptMark(PromptMark{Kind: MarkCommandDone, Row: row, ExitCode: exitCode})
	}
}

func (t *Terminal) addPromptMark(m PromptMark) {
	t.promptMarks = append(t.promptMarks, m)
}

// PromptMarks returns every recorded shell-integration mark, oldest first.
func (t *Terminal) PromptMarks() []PromptMark { return t.promptMarks }

// ClearPromptMarks discards all recorded marks, e.g. on buffer reset.
func (t *Terminal) ClearPromptMarks() { t.promptMarks = nil }

// --- title stack (CSI 22/23 t, a declared window-op in §6's table) ---

func (t *Terminal) pushTitle() {
	t.titleStack = append(t.titleStack, t.title)
}

func (t *Terminal) popTitle() {
	if len(t.titleStack) == 0 {
		return
	}
	last := len(t.titleStack) - 1
	t.setTitle(t.titleStack[last])
	t.titleStack = t.titleStack[:last]
}
