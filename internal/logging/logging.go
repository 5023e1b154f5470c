// Package logging builds the zerolog loggers used by the command line tools.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// Verbose enables debug output; otherwise only warnings and errors pass.
// Color is disabled so output stays readable when redirected to a file.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}
