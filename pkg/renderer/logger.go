package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

// DefaultLogger writes progress output to a writer, normally stderr
type DefaultLogger struct {
	w io.Writer
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}
