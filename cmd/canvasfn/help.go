package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: canvasfn [flags] <FunctionName> < export.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Inkscape's HTML5 canvas output into a JavaScript function.")
	fmt.Fprintln(w, "Reads the export from stdin and writes the function to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  FunctionName    Name of the JavaScript function that encapsulates the drawing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --highlight           Colorize output for terminal preview")
	fmt.Fprintln(w, "      --style <s>           Highlight style (default: "+defaultStyle+")")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
