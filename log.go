package coreterm

import "log"

// StdLogDiagnostics adapts the standard library's *log.Logger to
// DiagnosticsSink, the default sink a Terminal uses when WithDiagnostics
// is not supplied.
type StdLogDiagnostics struct {
	Logger *log.Logger
}

func (d StdLogDiagnostics) Warnf(format string, args ...any) {
	if d.Logger == nil {
		log.Printf(format, args...)
		return
	}
	d.Logger.Printf(format, args...)
}

var _ DiagnosticsSink = StdLogDiagnostics{}
