package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/config"
)

// Exit codes for svg2png.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Rasterization failures are not errors and never reach exitCodeFor.
const (
	ExitSuccess = 0 // Run completed, whatever the backend did
	ExitGeneral = 1 // Interrupted or unexpected error
	ExitUsage   = 2 // Invalid arguments, flags or config
	ExitIO      = 3 // Filesystem error outside config loading
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, iconpipe.ErrUnknownBackend) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigRead) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist) {
		return ExitIO
	}

	return ExitGeneral
}
