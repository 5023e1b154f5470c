package iconpipe

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrUnknownBackend = errors.New("unknown backend")

	// Builtin backend errors.
	ErrSVGParse   = errors.New("failed to parse SVG")
	ErrPNGEncode  = errors.New("failed to encode PNG")
	ErrWritePNG   = errors.New("failed to write PNG file")
	ErrEmptyImage = errors.New("SVG has no drawable area")

	ErrNoDrawableElements = errors.New("no supported drawable elements")

	// Canvas function errors.
	ErrReadMarkup = errors.New("failed to read markup")
	ErrWriteFunc  = errors.New("failed to write function")
)
