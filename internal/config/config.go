package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-iconpipe"
	"github.com/alnah/go-iconpipe/internal/fileutil"
	"github.com/alnah/go-iconpipe/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigRead      = errors.New("failed to read config")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDir is the directory searched under the user config dir.
const appDir = "go-iconpipe"

// Field limits.
const (
	MaxBackendLength = 20
	MaxPathLength    = 4096 // PATH_MAX on Linux
	MaxStyleLength   = 50
	MaxSizes         = 32
)

// Config holds the settings shared by svg2png and canvasfn.
// The zero value means "use the built-in defaults".
type Config struct {
	Raster RasterConfig `yaml:"raster"`
	Canvas CanvasConfig `yaml:"canvas"`
}

// RasterConfig defines svg2png options.
type RasterConfig struct {
	Backend  string          `yaml:"backend"`  // "inkscape" (default) or "builtin"
	Inkscape string          `yaml:"inkscape"` // Inkscape binary (default: "inkscape" on PATH)
	Sizes    []iconpipe.Size `yaml:"sizes"`    // Empty = iconpipe.DefaultSizes()
}

// CanvasConfig defines canvasfn options.
type CanvasConfig struct {
	Style string `yaml:"style"` // chroma style for --highlight
}

// Validate checks backend names, size bounds and field lengths.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateFieldLength("raster.backend", c.Raster.Backend, MaxBackendLength); err != nil {
		return err
	}
	switch c.Raster.Backend {
	case "", iconpipe.BackendInkscape, iconpipe.BackendBuiltin:
		// valid
	default:
		return fmt.Errorf("%w: raster.backend %q (must be %s or %s)",
			ErrInvalidValue, c.Raster.Backend, iconpipe.BackendInkscape, iconpipe.BackendBuiltin)
	}

	if err := validateFieldLength("raster.inkscape", c.Raster.Inkscape, MaxPathLength); err != nil {
		return err
	}

	if len(c.Raster.Sizes) > MaxSizes {
		return fmt.Errorf("%w: raster.sizes has %d entries (max %d)", ErrInvalidValue, len(c.Raster.Sizes), MaxSizes)
	}
	for i, s := range c.Raster.Sizes {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: raster.sizes[%d]: %v", ErrInvalidValue, i, err)
		}
	}

	if err := validateFieldLength("canvas.style", c.Canvas.Style, MaxStyleLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field falls back to defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched with SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then <user config dir>/go-iconpipe/, each
// with .yaml before .yml. A path-like argument is returned as is.
func SearchPaths(nameOrPath string) []string {
	if fileutil.IsFilePath(nameOrPath) {
		return []string{nameOrPath}
	}

	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations
	for _, ext := range extensions {
		paths = append(paths, nameOrPath+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, nameOrPath+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
