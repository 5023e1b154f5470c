package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/hints"
)

// checkResult holds all diagnostic information.
type checkResult struct {
	Status   string       `json:"status"` // "ready", "warnings", "errors"
	Backend  string       `json:"backend"`
	Inkscape inkscapeInfo `json:"inkscape"`
	Sizes    []string     `json:"sizes"`
	Platform string       `json:"platform"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`
}

// inkscapeInfo holds Inkscape detection results.
type inkscapeInfo struct {
	Required bool   `json:"required"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

// runCheck reports whether svg2png can render with opts and returns an exit code.
// Exit codes: 0 = ready (including warnings), 1 = errors found.
func runCheck(ctx context.Context, opts rasterOptions, jsonOutput bool, env *Environment) int {
	result := check(ctx, opts, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printCheckResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// check performs all diagnostic checks.
func check(ctx context.Context, opts rasterOptions, env *Environment) *checkResult {
	result := &checkResult{
		Status:   "ready",
		Backend:  opts.backend,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
	for _, s := range opts.sizes {
		result.Sizes = append(result.Sizes, s.String())
	}

	switch opts.backend {
	case iconpipe.BackendInkscape:
		checkInkscape(ctx, opts.inkscape, result, env)
	case iconpipe.BackendBuiltin:
		// In-process; nothing external to find.
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("Unknown backend %q (use %s or %s)",
			opts.backend, iconpipe.BackendInkscape, iconpipe.BackendBuiltin))
	}

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkInkscape locates the Inkscape binary and reads its version.
func checkInkscape(ctx context.Context, bin string, result *checkResult, env *Environment) {
	result.Inkscape.Required = true

	path, err := env.LookPath(bin)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Inkscape not found (%s)%s", bin, hints.ForInkscapeMissing(bin)))
		return
	}
	result.Inkscape.Found = true
	result.Inkscape.Path = path

	var out bytes.Buffer
	if err := env.Runner(&out).Run(ctx, path, "--version"); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Inkscape version: %v", err))
		return
	}
	result.Inkscape.Version = strings.TrimSpace(out.String())

	// Inkscape 1.x dropped -z and -e in favor of --export-filename.
	if strings.HasPrefix(strings.TrimPrefix(result.Inkscape.Version, "Inkscape "), "1.") {
		result.Warnings = append(result.Warnings,
			"Inkscape 1.x ignores -z/-e; exports may fail, consider --backend builtin")
	}
}

// printCheckResult outputs human-readable diagnostic results.
func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintln(w, "svg2png check")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Backend")
	fmt.Fprintf(w, "  [OK] Using: %s\n", r.Backend)
	fmt.Fprintf(w, "  [OK] Sizes: %s\n", strings.Join(r.Sizes, ", "))
	fmt.Fprintln(w)

	if r.Inkscape.Required {
		fmt.Fprintln(w, "Inkscape")
		if r.Inkscape.Found {
			fmt.Fprintf(w, "  [OK] Found at %s\n", r.Inkscape.Path)
			if r.Inkscape.Version != "" {
				fmt.Fprintf(w, "  [OK] Version: %s\n", r.Inkscape.Version)
			}
		} else {
			fmt.Fprintln(w, "  [ERROR] Not found")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s\n", r.Platform)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
