package app

import (
	"dogm/console"
	"dogm/hal"
)

// consoleLogger copies every log line onto the panel console.
type consoleLogger struct {
	base hal.Logger
	con  *console.Console
}

func (l consoleLogger) WriteLineString(s string) {
	if l.base != nil {
		l.base.WriteLineString(s)
	}
	_, _ = l.con.Write([]byte(s + "\n"))
}

func (l consoleLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
