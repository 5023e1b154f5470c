package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/alnah/go-iconpipe"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewBackend builds the rasterization backend; tests swap in fakes.
	NewBackend func(name, inkscapeBin string, stdout, stderr io.Writer) (iconpipe.Backend, error)

	// LookPath and Runner are used by --check.
	LookPath func(file string) (string, error)
	Runner   func(stdout io.Writer) iconpipe.CommandRunner
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		NewBackend: iconpipe.NewBackend,
		LookPath:   exec.LookPath,
		Runner: func(stdout io.Writer) iconpipe.CommandRunner {
			return &iconpipe.ExecRunner{Stdout: stdout}
		},
	}
}
