package renderer

import (
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer.
// Integers are printed with digit grouping (1,234,567).
type DefaultLogger struct {
	w       io.Writer
	printer *message.Printer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.printer.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger writing to w, or to stderr when w is nil.
// Stdout is left free for image output.
func NewDefaultLogger(w io.Writer) core.Logger {
	if w == nil {
		w = os.Stderr
	}
	return &DefaultLogger{
		w:       w,
		printer: message.NewPrinter(language.English),
	}
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
