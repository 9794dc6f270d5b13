package renderer

import (
	"log"
	"os"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger on top of the standard log package
type DefaultLogger struct {
	out *log.Logger
}

// NewDefaultLogger creates a logger writing to stderr, tagging lines with renderID when set
func NewDefaultLogger(renderID string) core.Logger {
	prefix := ""
	if renderID != "" {
		prefix = "[" + renderID + "] "
	}
	return &DefaultLogger{out: log.New(os.Stderr, prefix, log.LstdFlags|log.Lmsgprefix)}
}

// Printf implements core.Logger
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.out.Printf(format, args...)
}
