//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext cancels on SIGINT or SIGTERM. The rasterizer checks the
// context before each size, and exec.CommandContext kills a running Inkscape,
// so an interrupt leaves the sizes already written and skips the rest.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
