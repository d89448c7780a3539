// =============================================================================
// Amazon Order Ledger - Logging
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is the leveled, printf-style logging surface used throughout the
// pipeline. The processor takes it as an interface so tests can capture
// output.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// New returns a stderr logger. Debug output is emitted only in verbose mode.
func New(verbose bool) Logger {
	return &stdLogger{out: os.Stderr, verbose: verbose}
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(w io.Writer, verbose bool) Logger {
	return &stdLogger{out: w, verbose: verbose}
}

type stdLogger struct {
	out     io.Writer
	verbose bool
}

func (l *stdLogger) Debug(format string, args ...any) {
	if l.verbose {
		l.write("DEBUG", format, args...)
	}
}

func (l *stdLogger) Info(format string, args ...any)  { l.write("INFO", format, args...) }
func (l *stdLogger) Warn(format string, args ...any)  { l.write("WARN", format, args...) }
func (l *stdLogger) Error(format string, args ...any) { l.write("ERROR", format, args...) }

func (l *stdLogger) write(level, format string, args ...any) {
	fmt.Fprintf(l.out, "[%s] %s\n", level, fmt.Sprintf(format, args...))
}
