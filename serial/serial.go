// Package serial writes diagnostic lines to the USB CDC console.
package serial

import (
	"fmt"
	"io"
)

// Logger prefixes each line with its level. It is not safe for concurrent use;
// the firmware has a single loop.
type Logger struct {
	out io.Writer
}

// NewLogger wraps out, usually machine.Serial.
func NewLogger(out io.Writer) *Logger {
	return &Logger{out: out}
}

// Infof writes an INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO ", fmt.Sprintf(format, args...))
}

// Errorf writes an ERROR line.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR ", fmt.Sprintf(format, args...))
}

// Println writes msg as-is.
func (l *Logger) Println(msg string) {
	l.write("", msg)
}

func (l *Logger) write(prefix, msg string) {
	if l == nil || l.out == nil {
		return
	}
	l.out.Write([]byte(prefix + msg + "\n"))
}
