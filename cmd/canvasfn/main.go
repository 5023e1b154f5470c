// Command canvasfn wraps an Inkscape HTML5 canvas export into a JavaScript function.
//
// Save the drawing from Inkscape as "HTML 5 canvas", then:
//
//	canvasfn drawIcon < drawing.html > icon.js
//
// The statements between the getContext line and </script> become the body
// of "const drawIcon = function(ctx){ ... };".
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/config"
	"github.com/alnah/go-iconpipe/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: see maxprocs.Set; runtime defaults are fine here.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args, converts stdin to stdout and returns the exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		return usageError(env.Stderr, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "canvasfn %s\n", Version)
		return ExitSuccess
	}

	name, err := nameArg(positional)
	if err != nil {
		return usageError(env.Stderr, err)
	}

	style := defaultStyle
	if flags.config != "" {
		cfg, err := config.LoadConfig(flags.config)
		if err != nil {
			msg := fmt.Sprintf("canvasfn: loading config: %v", err)
			if errors.Is(err, config.ErrConfigNotFound) {
				msg += hints.ForConfigNotFound(config.SearchPaths(flags.config))
			}
			fmt.Fprintln(env.Stderr, msg)
			return exitCodeFor(err)
		}
		if cfg.Canvas.Style != "" {
			style = cfg.Canvas.Style
		}
	}
	if flags.style != "" {
		style = flags.style
	}

	if err := convert(env, name, flags.highlight, style); err != nil {
		fmt.Fprintf(env.Stderr, "canvasfn: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// convert streams the function to stdout, or highlights it when asked.
func convert(env *Environment, name string, highlight bool, style string) error {
	if !highlight {
		return iconpipe.WriteCanvasFunc(env.Stdout, env.Stdin, name)
	}

	if err := validateStyle(style); err != nil {
		return err
	}
	return writeHighlighted(env.Stdout, env.Stdin, name, style)
}

// usageError prints err followed by the usage text and returns ExitUsage.
func usageError(w io.Writer, err error) int {
	fmt.Fprintf(w, "canvasfn: %v\n", err)
	printUsage(w)
	return ExitUsage
}

// nameArg returns the single positional function name.
func nameArg(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoFunctionName
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTooManyArgs, positional[1:])
	}
}
