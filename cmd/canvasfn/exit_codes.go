package main

import (
	"errors"
	"os"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/config"
)

// Exit codes for canvasfn.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Function written (possibly with an empty body)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid arguments, flags or config
	ExitIO      = 3 // stdin/stdout failure
)

// exitCodeFor returns the appropriate exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2).
	// Checked first: an unreadable config wraps os.ErrPermission.
	if errors.Is(err, ErrNoFunctionName) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownStyle) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigRead) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, iconpipe.ErrReadMarkup) ||
		errors.Is(err, iconpipe.ErrWriteFunc) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, os.ErrNotExist) {
		return ExitIO
	}

	return ExitGeneral
}
