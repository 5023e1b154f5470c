package main

import (
	"errors"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for argument handling.
var (
	ErrNoInput     = errors.New("missing required argument: filename")
	ErrTooManyArgs = errors.New("unexpected extra arguments")
)

// rasterFlags holds all svg2png flags.
type rasterFlags struct {
	config   string
	backend  string
	inkscape string
	check    bool
	json     bool
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses args (without the program name) and returns positional args.
// Errors, including flag.ErrHelp, are reported by the caller.
func parseFlags(args []string) (*rasterFlags, []string, error) {
	fs := flag.NewFlagSet("svg2png", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &rasterFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.backend, "backend", "b", "", "rasterizer: inkscape, builtin")
	fs.StringVar(&f.inkscape, "inkscape", "", "Inkscape binary (default: inkscape on PATH)")
	fs.BoolVar(&f.check, "check", false, "check that the backend can run, then exit")
	fs.BoolVar(&f.json, "json", false, "print --check results as JSON")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "hide Inkscape output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log each size and its outcome")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
