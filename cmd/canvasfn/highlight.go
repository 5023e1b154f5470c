package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/hints"
)

// defaultStyle is the chroma style used by --highlight.
const defaultStyle = "monokai"

// ErrUnknownStyle is returned for a --style chroma does not know.
var ErrUnknownStyle = errors.New("unknown highlight style")

// validateStyle checks name against the chroma style registry.
func validateStyle(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q%s", ErrUnknownStyle, name, hints.ForHighlightStyle())
	}
	return nil
}

// writeHighlighted generates the function in memory, then writes it to w
// with 256-color terminal escapes.
func writeHighlighted(w io.Writer, r io.Reader, name, style string) error {
	var src bytes.Buffer
	if err := iconpipe.WriteCanvasFunc(&src, r, name); err != nil {
		return err
	}

	lexer := chroma.Coalesce(lexers.Get("javascript"))
	it, err := lexer.Tokenise(nil, src.String())
	if err != nil {
		return fmt.Errorf("highlighting: %w", err)
	}

	if err := formatters.TTY256.Format(w, styles.Get(style), it); err != nil {
		return fmt.Errorf("%w: %v", iconpipe.ErrWriteFunc, err)
	}
	return nil
}
