package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for argument handling.
var (
	ErrNoFunctionName = errors.New("missing required argument: FunctionName")
	ErrTooManyArgs    = errors.New("unexpected extra arguments")
)

// canvasFlags holds all canvasfn flags.
type canvasFlags struct {
	config    string
	style     string
	highlight bool
	version   bool
}

// parseFlags parses args (without the program name) and returns positional args.
// Errors, including flag.ErrHelp, are reported by the caller.
func parseFlags(args []string) (*canvasFlags, []string, error) {
	fs := flag.NewFlagSet("canvasfn", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &canvasFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.highlight, "highlight", false, "colorize output for terminal preview")
	fs.StringVar(&f.style, "style", "", "highlight style (default: "+defaultStyle+")")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
