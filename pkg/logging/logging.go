// Package logging builds the diagnostic logger used by depgate.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Writer  io.Writer // defaults to os.Stderr
	Verbose bool      // debug level instead of warn
	NoColor bool
}

// New returns a console logger. Diagnostics stay off stdout so the report
// can be piped.
func New(opts Options) zerolog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = writer
	console.TimeFormat = time.TimeOnly
	console.NoColor = opts.NoColor

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
