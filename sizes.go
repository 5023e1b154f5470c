package iconpipe

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDimension caps a single side of an output image (in pixels).
const MaxDimension = 8192

// Size is an output image size in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// String renders the size as WxH.
func (s Size) String() string {
	return strconv.Itoa(s.Width) + "x" + strconv.Itoa(s.Height)
}

// Validate checks that both sides are positive and within MaxDimension.
func (s Size) Validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("%w: %s (each side must be 1-%d)", ErrInvalidSize, s, MaxDimension)
	}
	return nil
}

// DefaultSizes returns the launcher and store icon sizes, smallest first.
// A fresh slice is returned on each call.
func DefaultSizes() []Size {
	return []Size{
		{48, 48},
		{72, 72},
		{96, 96},
		{144, 144},
		{192, 192},
		{512, 512},
		{1024, 1024},
	}
}

// OutputPrefix strips every occurrence of ".svg" from the input path.
// It is a plain substring removal: "a.svg.svg" gives "a" and "logo" is
// returned unchanged.
func OutputPrefix(input string) string {
	return strings.ReplaceAll(input, ".svg", "")
}

// OutputName returns the PNG path written for input at size s.
func OutputName(input string, s Size) string {
	return OutputPrefix(input) + "_" + strconv.Itoa(s.Width) + "_" + strconv.Itoa(s.Height) + ".png"
}
