package iconpipe

// Notes:
// - WriteCanvasFunc: we test the marker state machine on literal inputs and
//   compare full output bytes, since the output is pasted into source files.
// - Reader/writer failures are simulated with small stub types.

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Failing I/O
// ---------------------------------------------------------------------------

type failingReader struct {
	data string
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("read: broken pipe")
}

// failingWriter accepts n writes, then fails.
type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("write: broken pipe")
	}
	w.n--
	return len(p), nil
}

// ---------------------------------------------------------------------------
// TestWriteCanvasFunc - Marker handling
// ---------------------------------------------------------------------------

func TestWriteCanvasFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		funcName string
		input    string
		want     string
	}{
		{
			name:     "captures between markers",
			funcName: "draw",
			input:    "foo\nx.getContext('2d');\nctx.fillRect(0,0,1,1);\n</script>\nbar\n",
			want:     "const draw = function(ctx){\nctx.fillRect(0,0,1,1);\n};\n",
		},
		{
			name:     "no getContext gives empty body",
			funcName: "logo",
			input:    "<html>\nctx.fill();\n</script>\n",
			want:     "const logo = function(ctx){\n};\n",
		},
		{
			name:     "empty input",
			funcName: "empty",
			input:    "",
			want:     "const empty = function(ctx){\n};\n",
		},
		{
			name:     "no closing script echoes to end",
			funcName: "f",
			input:    "var ctx = c.getContext('2d');\nctx.save();\nctx.restore();\n",
			want:     "const f = function(ctx){\nctx.save();\nctx.restore();\n};\n",
		},
		{
			name:     "indentation and blank lines preserved",
			funcName: "f",
			input:    "getContext\n\tctx.save();\n\n    ctx.restore();  \n</script>\n",
			want:     "const f = function(ctx){\n\tctx.save();\n\n    ctx.restore();  \n};\n",
		},
		{
			name:     "only first getContext starts capture",
			funcName: "f",
			input:    "a.getContext('2d');\nb.getContext('2d');\n</script>\n",
			want:     "const f = function(ctx){\nb.getContext('2d');\n};\n",
		},
		{
			name:     "closing script before getContext is ignored",
			funcName: "f",
			input:    "<script></script>\nc.getContext('2d');\nctx.fill();\n  </script>\n",
			want:     "const f = function(ctx){\nctx.fill();\n};\n",
		},
		{
			name:     "closing script anywhere on the line ends capture",
			funcName: "f",
			input:    "getContext\nctx.fill();\nctx.stroke();</script>\nctx.never();\n",
			want:     "const f = function(ctx){\nctx.fill();\n};\n",
		},
		{
			name:     "CRLF terminators kept",
			funcName: "f",
			input:    "getContext\r\nctx.fill();\r\n</script>\r\n",
			want:     "const f = function(ctx){\nctx.fill();\r\n};\n",
		},
		{
			name:     "last line without newline",
			funcName: "f",
			input:    "getContext\nctx.fill();",
			want:     "const f = function(ctx){\nctx.fill();};\n",
		},
		{
			name:     "name interpolated verbatim",
			funcName: "not a valid-name",
			input:    "",
			want:     "const not a valid-name = function(ctx){\n};\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			if err := WriteCanvasFunc(&out, strings.NewReader(tt.input), tt.funcName); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output mismatch\ngot:  %q\nwant: %q", out.String(), tt.want)
			}
		})
	}
}

func TestWriteCanvasFunc_Idempotent(t *testing.T) {
	t.Parallel()

	input := "<canvas>\nvar ctx = canvas.getContext('2d');\nctx.beginPath();\nctx.moveTo(1,2);\n</script>\n"

	var first, second bytes.Buffer
	if err := WriteCanvasFunc(&first, strings.NewReader(input), "drawIcon"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := WriteCanvasFunc(&second, strings.NewReader(input), "drawIcon"); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("outputs differ:\n%q\n%q", first.String(), second.String())
	}
}

func TestWriteCanvasFunc_LongLine(t *testing.T) {
	t.Parallel()

	long := "ctx.bezierCurveTo(" + strings.Repeat("1.5,", 100_000) + "0);\n"
	input := "getContext\n" + long + "</script>\n"

	var out bytes.Buffer
	if err := WriteCanvasFunc(&out, strings.NewReader(input), "f"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "const f = function(ctx){\n" + long + "};\n"; out.String() != want {
		t.Errorf("long line not copied intact (got %d bytes, want %d)", out.Len(), len(want))
	}
}

func TestWriteCanvasFunc_StopsReadingAtEndMarker(t *testing.T) {
	t.Parallel()

	// Everything after </script> sits behind a failing reader; it must not be touched.
	r := io.MultiReader(
		strings.NewReader("getContext\nctx.fill();\n</script>\n"),
		&failingReader{done: true},
	)

	var out bytes.Buffer
	if err := WriteCanvasFunc(&out, r, "f"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteCanvasFunc_Errors - I/O failures
// ---------------------------------------------------------------------------

func TestWriteCanvasFunc_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w       io.Writer
		r       io.Reader
		wantErr error
		wantOut string
	}{
		{
			name:    "read error",
			w:       &bytes.Buffer{},
			r:       &failingReader{data: "getContext\nctx.fill();\npartial"},
			wantErr: ErrReadMarkup,
			wantOut: "const f = function(ctx){\nctx.fill();\n",
		},
		{
			name:    "header write error",
			w:       &failingWriter{n: 0},
			r:       strings.NewReader(""),
			wantErr: ErrWriteFunc,
		},
		{
			name:    "body write error",
			w:       &failingWriter{n: 1},
			r:       strings.NewReader("getContext\nctx.fill();\n"),
			wantErr: ErrWriteFunc,
		},
		{
			name:    "footer write error",
			w:       &failingWriter{n: 1},
			r:       strings.NewReader(""),
			wantErr: ErrWriteFunc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := WriteCanvasFunc(tt.w, tt.r, "f")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if buf, ok := tt.w.(*bytes.Buffer); ok && buf.String() != tt.wantOut {
				t.Errorf("partial output = %q, want %q", buf.String(), tt.wantOut)
			}
		})
	}
}
