package iconpipe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Markers that delimit the drawing statements in an Inkscape canvas export.
const (
	CanvasStartMarker = "getContext"
	CanvasEndMarker   = "</script>"
)

// WriteCanvasFunc reads an Inkscape HTML5 canvas export from r and writes a
// JavaScript function named name to w:
//
//	const <name> = function(ctx){
//	<lines after the first getContext line, up to the </script> line>
//	};
//
// The header is written before any input is read. Captured lines are copied
// byte for byte, terminators included. Input after </script> is not read.
// Missing markers only shrink the body: without getContext it stays empty,
// without </script> it runs to the end of input.
func WriteCanvasFunc(w io.Writer, r io.Reader, name string) error {
	if _, err := io.WriteString(w, "const "+name+" = function(ctx){\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFunc, err)
	}

	if err := copyCanvasBody(w, bufio.NewReader(r)); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "};\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFunc, err)
	}
	return nil
}

// copyCanvasBody scans br line by line and echoes the captured region.
func copyCanvasBody(w io.Writer, br *bufio.Reader) error {
	begun := false

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: %v", ErrReadMarkup, readErr)
		}
		if line == "" {
			return nil
		}

		switch {
		case !begun:
			begun = strings.Contains(line, CanvasStartMarker)
		case strings.Contains(line, CanvasEndMarker):
			return nil
		default:
			if _, err := io.WriteString(w, line); err != nil {
				return fmt.Errorf("%w: %v", ErrWriteFunc, err)
			}
		}

		if readErr != nil {
			return nil
		}
	}
}
