// Command svg2png renders an SVG icon into the standard set of PNG sizes.
//
// Usage:
//
//	svg2png [flags] <filename>
//
// For icon.svg it writes icon_48_48.png through icon_1024_1024.png next to
// the input. Inkscape failures do not change the exit status.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-iconpipe/internal/config"
	"github.com/alnah/go-iconpipe/internal/hints"
	"github.com/alnah/go-iconpipe/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to get verbose; runMain reports parse errors.
	flags, _, _ := parseFlags(os.Args[1:])

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags != nil && flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain parses args, runs the requested action and returns the exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		return usageError(env.Stderr, err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "svg2png %s\n", Version)
		return ExitSuccess
	}

	log := logging.New(env.Stderr, flags.verbose)

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			msg := fmt.Sprintf("svg2png: loading config: %v", err)
			if errors.Is(err, config.ErrConfigNotFound) {
				msg += hints.ForConfigNotFound(config.SearchPaths(flags.config))
			}
			fmt.Fprintln(env.Stderr, msg)
			return exitCodeFor(err)
		}
	}

	opts := resolveOptions(flags, cfg)

	if flags.check {
		return runCheck(ctx, opts, flags.json, env)
	}

	input, err := inputArg(positional)
	if err != nil {
		return usageError(env.Stderr, err)
	}

	if err := runRasterize(ctx, input, opts, log, env); err != nil {
		fmt.Fprintf(env.Stderr, "svg2png: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// usageError prints err followed by the usage text and returns ExitUsage.
func usageError(w io.Writer, err error) int {
	fmt.Fprintf(w, "svg2png: %v\n", err)
	printUsage(w)
	return ExitUsage
}

// inputArg returns the single positional filename.
func inputArg(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", ErrNoInput
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTooManyArgs, positional[1:])
	}
}
