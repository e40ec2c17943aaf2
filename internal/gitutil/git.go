package gitutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// MetadataDir is the directory git keeps repository state in.
const MetadataDir = ".git"

// Streams carries the writers a passthrough git invocation reports to.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Clone runs `git clone url dest`, forwarding git's output live.
func Clone(ctx context.Context, streams Streams, url, dest string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", url, dest)
	cmd.Stdin = streams.Stdin
	cmd.Stdout = streams.Stdout
	cmd.Stderr = streams.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	return nil
}

// RemoveMetadata deletes dir/.git recursively. A missing directory is not an error.
func RemoveMetadata(dir string) error {
	return os.RemoveAll(filepath.Join(dir, MetadataDir))
}

// HasMetadata reports whether dir contains a .git entry.
func HasMetadata(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, MetadataDir))
	return err == nil
}

// Run executes git and returns trimmed stdout.
func Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %v\n%s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Version reports the output of `git --version`.
func Version(ctx context.Context) (string, error) {
	return Run(ctx, "--version")
}

// RemoteReachable asks the remote for its HEAD without cloning anything.
func RemoteReachable(ctx context.Context, url string) error {
	out, err := Run(ctx, "ls-remote", "--exit-code", url, "HEAD")
	if err != nil {
		return err
	}
	if out == "" {
		return fmt.Errorf("%s advertised no HEAD", url)
	}
	return nil
}
