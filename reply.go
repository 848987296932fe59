package coreterm

import (
	"fmt"
	"strings"
)

// primaryDA returns the DA1 reply for the configured termName (§6).
func primaryDA(termName string) []byte {
	switch {
	case strings.HasPrefix(termName, "linux"):
		return []byte("\x1b[?6c")
	default: // xterm, rxvt-unicode, screen, and unrecognized names default here
		return []byte("\x1b[?1;2c")
	}
}

// secondaryDA returns the DA2 reply for the configured termName (§6).
// For "linux" the request's own parameter is echoed back.
func secondaryDA(termName string, requestParam int) []byte {
	switch {
	case strings.HasPrefix(termName, "xterm"):
		return []byte("\x1b[>0;276;0c")
	case strings.HasPrefix(termName, "rxvt-unicode"):
		return []byte("\x1b[>85;95;0c")
	case strings.HasPrefix(termName, "screen"):
		return []byte("\x1b[>83;40003;0c")
	case strings.HasPrefix(termName, "linux"):
		return []byte(fmt.Sprintf("\x1b[>%dc", requestParam))
	default:
		return []byte("\x1b[>0;276;0c")
	}
}

// cursorPositionReport renders DSR 6's reply: row/col are 1-based viewport
// coordinates.
func cursorPositionReport(row, col int) []byte {
	return []byte(fmt.Sprintf("\x1b[%d;%dR", row, col))
}

// decrqssReply wraps a DECRQSS (DCS $q) response per spec.md §4.3: valid
// requests echo "1$r<setting><final>", invalid ones "0$r<final>",
// terminated by ST.
func decrqssReply(valid bool, setting string, final byte) []byte {
	if !valid {
		return []byte(fmt.Sprintf("\x1bP0$r%c\x1b\\", final))
	}
	return []byte(fmt.Sprintf("\x1bP1$r%s%c\x1b\\", setting, final))
}
