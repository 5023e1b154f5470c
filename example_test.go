package iconpipe_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-iconpipe"
)

// Example demonstrates wrapping an Inkscape canvas export into a function.
func Example() {
	markup := `<html>
<script>
var ctx = document.getElementById("canvas").getContext("2d");
ctx.beginPath();
ctx.arc(24, 24, 20, 0, 2 * Math.PI);
ctx.fill();
</script>
</html>
`
	if err := iconpipe.WriteCanvasFunc(os.Stdout, strings.NewReader(markup), "drawDot"); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// const drawDot = function(ctx){
	// ctx.beginPath();
	// ctx.arc(24, 24, 20, 0, 2 * Math.PI);
	// ctx.fill();
	// };
}

// ExampleOutputName shows how PNG names are derived from the SVG path.
func ExampleOutputName() {
	for _, size := range iconpipe.DefaultSizes()[:3] {
		fmt.Println(iconpipe.OutputName("icons/app.svg", size))
	}
	// Output:
	// icons/app_48_48.png
	// icons/app_72_72.png
	// icons/app_96_96.png
}

// printBackend prints the planned commands instead of running them.
type printBackend struct{}

func (printBackend) Rasterize(_ context.Context, input, output string, size iconpipe.Size) error {
	fmt.Println(append([]string{"inkscape"}, iconpipe.InkscapeArgs(input, output, size)...))
	return nil
}

// ExampleRasterizer shows a dry run over a custom size list.
func ExampleRasterizer() {
	r := iconpipe.NewRasterizer(printBackend{}, iconpipe.WithSizes([]iconpipe.Size{{Width: 16, Height: 16}, {Width: 32, Height: 32}}))
	if _, err := r.Run(context.Background(), "fav.svg"); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// [inkscape -z -e fav_16_16.png -w 16 -h 16 fav.svg]
	// [inkscape -z -e fav_32_32.png -w 32 -h 32 fav.svg]
}
