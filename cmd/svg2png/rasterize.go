package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/config"
	"github.com/alnah/go-iconpipe/internal/hints"
)

// rasterOptions is the merged result of flags and config.
type rasterOptions struct {
	backend  string
	inkscape string
	sizes    []iconpipe.Size
	quiet    bool
}

// resolveOptions merges CLI flags into config values (CLI wins).
func resolveOptions(f *rasterFlags, cfg *config.Config) rasterOptions {
	opts := rasterOptions{
		backend:  cfg.Raster.Backend,
		inkscape: cfg.Raster.Inkscape,
		sizes:    cfg.Raster.Sizes,
		quiet:    f.quiet,
	}
	if f.backend != "" {
		opts.backend = f.backend
	}
	if f.inkscape != "" {
		opts.inkscape = f.inkscape
	}
	if opts.backend == "" {
		opts.backend = iconpipe.BackendInkscape
	}
	if opts.inkscape == "" {
		opts.inkscape = iconpipe.DefaultInkscapeBin
	}
	if len(opts.sizes) == 0 {
		opts.sizes = iconpipe.DefaultSizes()
	}
	return opts
}

// runRasterize renders input at every size. Backend failures are logged at
// debug level only; the returned error covers setup problems and interrupts.
func runRasterize(ctx context.Context, input string, opts rasterOptions, log zerolog.Logger, env *Environment) error {
	childOut, childErr := env.Stdout, env.Stderr
	if opts.quiet {
		childOut, childErr = io.Discard, io.Discard
	}

	backend, err := env.NewBackend(opts.backend, opts.inkscape, childOut, childErr)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForBackends([]string{iconpipe.BackendInkscape, iconpipe.BackendBuiltin}))
	}

	r := iconpipe.NewRasterizer(backend, iconpipe.WithSizes(opts.sizes), iconpipe.WithLogger(log))
	results, err := r.Run(ctx, input)

	failed := 0
	notFound := false
	for _, res := range results {
		if res.Err != nil {
			failed++
			notFound = notFound || errors.Is(res.Err, exec.ErrNotFound)
		}
	}
	if notFound {
		log.Debug().Str("inkscape", opts.inkscape).Msg("inkscape not found" + hints.ForInkscapeMissing(opts.inkscape))
	}
	log.Info().Str("input", input).Int("written", len(results)-failed).Int("failed", failed).Msg("done")

	return err
}
