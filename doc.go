// Package iconpipe turns vector icons into the assets a web app ships.
//
// # Rasterizing
//
// A Rasterizer renders one SVG into a fixed list of square PNG sizes. Each
// size is handed to a Backend, which by default shells out to Inkscape:
//
//	r := iconpipe.NewRasterizer(iconpipe.NewInkscapeBackend("inkscape", os.Stdout, os.Stderr))
//	results, err := r.Run(ctx, "icon.svg")
//
// Output files land next to the input and are named after it with every
// ".svg" removed, e.g. icon.svg at 48x48 becomes icon_48_48.png. A failing
// backend never stops the run; each outcome is reported in the Result slice.
//
// BuiltinBackend renders in-process with oksvg and rasterx when Inkscape is
// not installed.
//
// # Canvas functions
//
// WriteCanvasFunc reads the HTML5 canvas export of Inkscape and wraps its
// drawing statements into a reusable JavaScript function:
//
//	err := iconpipe.WriteCanvasFunc(os.Stdout, os.Stdin, "drawLogo")
//
// produces
//
//	const drawLogo = function(ctx){
//	ctx.beginPath();
//	...
//	};
package iconpipe
