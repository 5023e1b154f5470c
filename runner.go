package iconpipe

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec.
// The child's output is forwarded to Stdout and Stderr; nil discards it.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the command and waits for it to exit.
// The child is killed if ctx is canceled first.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary and args come from the local user
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}
