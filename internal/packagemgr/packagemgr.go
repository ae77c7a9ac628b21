// Package packagemgr prepares the scripts directory: the package descriptor
// and the dependencies installed through an external package manager.
package packagemgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"skill-setup/internal/logger"
)

// PackageManager installs named packages into a directory.
type PackageManager interface {
	Install(ctx context.Context, dir string, packages []string) error
}

// NPM shells out to an npm-compatible executable.
// Output is streamed to the configured writers, which default to the
// caller's terminal.
type NPM struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewNPM returns an NPM bound to the process's standard streams.
// An empty binary means "npm".
func NewNPM(binary string) *NPM {
	if binary == "" {
		binary = "npm"
	}
	return &NPM{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Install runs `<binary> install <packages...>` in dir and blocks until it exits.
// A non-zero exit status is returned as an error.
func (n *NPM) Install(ctx context.Context, dir string, packages []string) error {
	if len(packages) == 0 {
		logger.Debug("[DEBUG] No packages to install in %s\n", dir)
		return nil
	}

	args := append([]string{"install"}, packages...)
	cmd := exec.CommandContext(ctx, n.Binary, args...)
	cmd.Dir = dir
	cmd.Stdin = n.Stdin
	cmd.Stdout = n.Stdout
	cmd.Stderr = n.Stderr

	logger.Debug("[DEBUG] Running command in %s: %s %s\n", dir, n.Binary, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s install %s failed: %w", n.Binary, strings.Join(packages, " "), err)
	}
	return nil
}
