package iconpipe

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Backend names accepted by NewBackend.
const (
	BackendInkscape = "inkscape"
	BackendBuiltin  = "builtin"
)

// DefaultInkscapeBin is the Inkscape executable looked up on PATH.
const DefaultInkscapeBin = "inkscape"

// Backend renders one SVG file into one PNG file of the given size.
type Backend interface {
	Rasterize(ctx context.Context, input, output string, size Size) error
}

// InkscapeBackend rasterizes by invoking the Inkscape command line.
type InkscapeBackend struct {
	Bin    string
	Runner CommandRunner
}

// NewInkscapeBackend creates an InkscapeBackend with a real command runner.
// Inkscape's own output goes to stdout and stderr; pass nil to silence it.
func NewInkscapeBackend(bin string, stdout, stderr io.Writer) *InkscapeBackend {
	if bin == "" {
		bin = DefaultInkscapeBin
	}
	return &InkscapeBackend{
		Bin:    bin,
		Runner: &ExecRunner{Stdout: stdout, Stderr: stderr},
	}
}

// Rasterize runs: inkscape -z -e <output> -w <width> -h <height> <input>
func (b *InkscapeBackend) Rasterize(ctx context.Context, input, output string, size Size) error {
	return b.Runner.Run(ctx, b.Bin, InkscapeArgs(input, output, size)...)
}

// InkscapeArgs returns the Inkscape arguments for one export.
// -z keeps Inkscape from opening its GUI.
func InkscapeArgs(input, output string, size Size) []string {
	return []string{
		"-z",
		"-e", output,
		"-w", strconv.Itoa(size.Width),
		"-h", strconv.Itoa(size.Height),
		input,
	}
}

// NewBackend returns the backend registered under name.
// An empty name selects Inkscape.
func NewBackend(name, inkscapeBin string, stdout, stderr io.Writer) (Backend, error) {
	switch name {
	case "", BackendInkscape:
		return NewInkscapeBackend(inkscapeBin, stdout, stderr), nil
	case BackendBuiltin:
		return &BuiltinBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownBackend, name, BackendInkscape, BackendBuiltin)
	}
}

// Result holds the outcome of a single size.
type Result struct {
	Size     Size
	Output   string
	Err      error
	Duration time.Duration
}

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithSizes replaces the default size list.
// Panics on an empty list (programmer error).
func WithSizes(sizes []Size) RasterizerOption {
	if len(sizes) == 0 {
		panic("iconpipe: WithSizes needs at least one size")
	}
	return func(r *Rasterizer) {
		r.sizes = append([]Size(nil), sizes...)
	}
}

// WithLogger sets the logger used for per-size debug output.
func WithLogger(l zerolog.Logger) RasterizerOption {
	return func(r *Rasterizer) {
		r.log = l
	}
}

// Rasterizer renders one SVG at every configured size, one after another.
type Rasterizer struct {
	backend Backend
	sizes   []Size
	log     zerolog.Logger
	now     func() time.Time
}

// NewRasterizer creates a Rasterizer using DefaultSizes and a disabled logger.
func NewRasterizer(backend Backend, opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{
		backend: backend,
		sizes:   DefaultSizes(),
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sizes returns a copy of the configured size list.
func (r *Rasterizer) Sizes() []Size {
	return append([]Size(nil), r.sizes...)
}

// Run renders input at every size in order and returns one Result per
// attempted size. The input is not checked and backend failures do not stop
// the run. Only a canceled ctx ends it early; the returned error is then
// ctx.Err() and the slice holds the sizes attempted so far.
func (r *Rasterizer) Run(ctx context.Context, input string) ([]Result, error) {
	results := make([]Result, 0, len(r.sizes))

	for _, size := range r.sizes {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		output := OutputName(input, size)
		start := r.now()
		err := r.backend.Rasterize(ctx, input, output, size)
		res := Result{Size: size, Output: output, Err: err, Duration: r.now().Sub(start)}
		results = append(results, res)

		if err != nil {
			r.log.Debug().Str("size", size.String()).Str("output", output).Err(err).Msg("rasterize failed")
			continue
		}
		r.log.Debug().Str("size", size.String()).Str("output", output).Dur("took", res.Duration).Msg("rasterized")
	}

	return results, nil
}
