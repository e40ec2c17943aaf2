package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNameRequired indicates the project name was empty after trimming.
	ErrNameRequired = errors.New("project name required")
	// ErrInvalidName indicates the name would escape the working directory.
	ErrInvalidName = errors.New("project name must be a single directory name")
	// ErrTargetExists indicates the target directory is already on disk.
	ErrTargetExists = errors.New("directory exists")
)

// ValidationError is reported before any side effect happens.
type ValidationError struct {
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.Err, ErrTargetExists) {
		return fmt.Sprintf("directory %q already exists", e.Name)
	}
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Name)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ExternalProcessError wraps a subprocess that could not start or exited non-zero.
type ExternalProcessError struct {
	Step    string
	Command []string
	Err     error
}

func (e *ExternalProcessError) Error() string {
	if len(e.Command) == 0 {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Step, strings.Join(e.Command, " "), e.Err)
}

func (e *ExternalProcessError) Unwrap() error { return e.Err }

// FileIOError wraps a read, write, or parse failure on a generated file.
type FileIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
