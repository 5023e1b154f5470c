// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForInkscapeMissing returns hints when the Inkscape binary cannot be run.
func ForInkscapeMissing(bin string) string {
	var hints []string
	if strings.ContainsAny(bin, "/\\") {
		hints = append(hints, "check that "+bin+" exists and is executable")
	} else {
		hints = append(hints, "install Inkscape or pass --inkscape /path/to/inkscape")
	}
	hints = append(hints, "use --backend builtin to render without Inkscape")
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and a user config location if one was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-iconpipe") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForBackends lists the accepted --backend values.
func ForBackends(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForHighlightStyle points to the chroma style gallery.
func ForHighlightStyle() string {
	return format("see https://xyproto.github.io/splash/docs/ for style names")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
