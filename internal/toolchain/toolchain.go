// Package toolchain runs the external programs a scaffold depends on.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/cidroy-tech/create-adonis-starter/internal/gitutil"
)

// Exec runs git, the package manager, and the runtime as child processes
// whose output is forwarded live.
type Exec struct {
	PackageManager string
	Stdin          io.Reader
	Stdout         io.Writer
	Stderr         io.Writer
	Logger         *slog.Logger
}

// Clone clones url into dest.
func (e *Exec) Clone(ctx context.Context, url, dest string) error {
	e.logger().Debug("exec", "argv", []string{"git", "clone", url, dest})
	return gitutil.Clone(ctx, gitutil.Streams{Stdin: e.Stdin, Stdout: e.Stdout, Stderr: e.Stderr}, url, dest)
}

// Install runs `<package manager> install` inside dir.
func (e *Exec) Install(ctx context.Context, dir string) error {
	return e.RunCommand(ctx, dir, e.PackageManager, "install")
}

// RunCommand runs name with args inside dir.
func (e *Exec) RunCommand(ctx context.Context, dir, name string, args ...string) error {
	argv := append([]string{name}, args...)
	e.logger().Debug("exec", "argv", argv, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", strings.Join(argv, " "), err)
	}
	return nil
}

func (e *Exec) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
