package iconpipe

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// pngPermissions matches what Inkscape creates: rw-r--r--.
const pngPermissions = 0o644

// BuiltinBackend rasterizes in-process with oksvg and rasterx.
// The drawing is stretched to fill the requested size, as Inkscape does
// when both -w and -h are given.
type BuiltinBackend struct{}

// Rasterize renders input into a PNG of exactly size pixels at output.
func (b *BuiltinBackend) Rasterize(ctx context.Context, input, output string, size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	// IgnoreErrorMode keeps oksvg off the standard logger; unsupported
	// elements are skipped and an icon left with nothing to draw is rejected.
	icon, err := oksvg.ReadIcon(input, oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSVGParse, input, err)
	}
	if len(icon.SVGPaths) == 0 {
		return fmt.Errorf("%w: %s: %w", ErrSVGParse, input, ErrNoDrawableElements)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := renderPNG(icon, size)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, data, pngPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePNG, err)
	}
	return nil
}

// renderPNG draws icon onto a transparent canvas of the given size.
func renderPNG(icon *oksvg.SvgIcon, size Size) ([]byte, error) {
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, ErrEmptyImage
	}

	w, h := size.Width, size.Height
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPNGEncode, err)
	}
	return buf.Bytes(), nil
}
