package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2png [flags] <filename>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render an SVG into PNG icons of 48, 72, 96, 144, 192, 512 and 1024 pixels.")
	fmt.Fprintln(w, "Files are written next to the input: icon.svg -> icon_48_48.png, ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  filename    SVG file to render")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -b, --backend <s>         Rasterizer: inkscape (default), builtin")
	fmt.Fprintln(w, "      --inkscape <path>     Inkscape binary (default: inkscape on PATH)")
	fmt.Fprintln(w, "      --check               Check that the backend can run, then exit")
	fmt.Fprintln(w, "      --json                Print --check results as JSON")
	fmt.Fprintln(w, "  -q, --quiet               Hide Inkscape output")
	fmt.Fprintln(w, "  -v, --verbose             Log each size and its outcome")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
