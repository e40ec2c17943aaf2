// Package scaffold turns the starter template into a fresh project directory.
package scaffold

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"strings"

	"github.com/cidroy-tech/create-adonis-starter/internal/gitutil"
)

const (
	envTemplateFile = ".env.example"
	envFile         = ".env"
	manifestFile    = "package.json"
)

// Toolchain is the set of external processes a run depends on.
type Toolchain interface {
	Clone(ctx context.Context, url, dest string) error
	Install(ctx context.Context, dir string) error
	RunCommand(ctx context.Context, dir, name string, args ...string) error
}

// Reporter receives user-facing progress lines.
type Reporter interface {
	Section(msg string)
	Success(msg string)
	Warn(msg string)
}

// Options configures a Scaffolder.
type Options struct {
	// WorkDir is the directory the project is created under.
	WorkDir     string
	TemplateURL string
	Placeholder string
	// Runtime executes the framework's ace script, e.g. "node".
	Runtime  string
	Tools    Toolchain
	Reporter Reporter
	Logger   *slog.Logger
}

// Result summarizes a successful run.
type Result struct {
	Name            string
	Dir             string
	EnvCreated      bool
	ManifestUpdated bool
	AppKeySet       bool
}

// Scaffolder creates one project per Run.
type Scaffolder struct {
	opts Options
}

// New returns a Scaffolder. Logger and Reporter may be nil.
func New(opts Options) *Scaffolder {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}
	return &Scaffolder{opts: opts}
}

type step struct {
	name string
	run  func(ctx context.Context, r *Result) error
}

// Run validates name and then executes every step in order, stopping at the
// first failure. Completed steps are not rolled back.
func (s *Scaffolder) Run(ctx context.Context, name string) (*Result, error) {
	name, dir, err := s.Validate(name)
	if err != nil {
		return nil, err
	}

	result := &Result{Name: name, Dir: dir}
	for _, st := range s.steps() {
		s.opts.Logger.Debug("running step", "step", st.name, "dir", dir)
		var err error
		trace.WithRegion(ctx, st.name, func() {
			err = st.run(ctx, result)
		})
		if err != nil {
			s.opts.Logger.Debug("step failed", "step", st.name, "err", err)
			return result, err
		}
	}
	return result, nil
}

// Validate trims name and resolves the target directory, failing if the name
// is empty, is not a plain directory name, or the target already exists.
func (s *Scaffolder) Validate(name string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", &ValidationError{Err: ErrNameRequired}
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", "", &ValidationError{Name: name, Err: ErrInvalidName}
	}

	dir := filepath.Join(s.opts.WorkDir, name)
	if _, err := os.Lstat(dir); err == nil {
		return "", "", &ValidationError{Name: name, Err: ErrTargetExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", "", &FileIOError{Op: "stat", Path: dir, Err: err}
	}
	return name, dir, nil
}

func (s *Scaffolder) steps() []step {
	return []step{
		{name: "clone", run: s.clone},
		{name: "strip-vcs", run: s.stripVCS},
		{name: "env", run: s.writeEnv},
		{name: "manifest", run: s.rewriteManifest},
		{name: "install", run: s.install},
		{name: "generate-key", run: s.generateKey},
		{name: "verify-key", run: s.verifyKey},
	}
}

func (s *Scaffolder) clone(ctx context.Context, r *Result) error {
	s.opts.Reporter.Section("📦 Cloning starter project...")
	if err := s.opts.Tools.Clone(ctx, s.opts.TemplateURL, r.Dir); err != nil {
		return &ExternalProcessError{
			Step:    "clone",
			Command: []string{"git", "clone", s.opts.TemplateURL, r.Name},
			Err:     err,
		}
	}
	return nil
}

func (s *Scaffolder) stripVCS(_ context.Context, r *Result) error {
	if !gitutil.HasMetadata(r.Dir) {
		s.opts.Logger.Debug("clone has no git metadata", "dir", r.Dir)
	}
	if err := gitutil.RemoveMetadata(r.Dir); err != nil {
		return &FileIOError{Op: "remove", Path: filepath.Join(r.Dir, gitutil.MetadataDir), Err: err}
	}
	return nil
}

func (s *Scaffolder) writeEnv(_ context.Context, r *Result) error {
	src := filepath.Join(r.Dir, envTemplateFile)
	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.opts.Logger.Debug("no env template, skipping", "path", src)
			return nil
		}
		return &FileIOError{Op: "read", Path: src, Err: err}
	}

	content := RenderEnv(string(data), s.opts.Placeholder, DatabaseName(r.Name))
	dst := filepath.Join(r.Dir, envFile)
	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return &FileIOError{Op: "write", Path: dst, Err: err}
	}
	r.EnvCreated = true
	s.opts.Reporter.Success(".env created and DB name replaced")
	return nil
}

func (s *Scaffolder) rewriteManifest(_ context.Context, r *Result) error {
	path := filepath.Join(r.Dir, manifestFile)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.opts.Logger.Debug("no manifest, skipping", "path", path)
			return nil
		}
		return &FileIOError{Op: "stat", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileIOError{Op: "read", Path: path, Err: err}
	}

	updated, err := RewriteManifest(data, r.Name)
	if err != nil {
		return &FileIOError{Op: "parse", Path: path, Err: err}
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return &FileIOError{Op: "write", Path: path, Err: err}
	}
	r.ManifestUpdated = true
	s.opts.Reporter.Success("package.json name updated")
	return nil
}

func (s *Scaffolder) install(ctx context.Context, r *Result) error {
	s.opts.Reporter.Section("📥 Installing dependencies...")
	if err := s.opts.Tools.Install(ctx, r.Dir); err != nil {
		return &ExternalProcessError{Step: "install", Err: err}
	}
	return nil
}

func (s *Scaffolder) generateKey(ctx context.Context, r *Result) error {
	s.opts.Reporter.Section("🔑 Generating app key...")
	args := []string{"ace", "generate:key"}
	if err := s.opts.Tools.RunCommand(ctx, r.Dir, s.opts.Runtime, args...); err != nil {
		return &ExternalProcessError{
			Step:    "generate-key",
			Command: append([]string{s.opts.Runtime}, args...),
			Err:     err,
		}
	}
	return nil
}

func (s *Scaffolder) verifyKey(_ context.Context, r *Result) error {
	path := filepath.Join(r.Dir, envFile)
	ok, err := appKeyPresent(path)
	if err != nil {
		s.opts.Logger.Warn("could not read env file", "path", path, "err", err)
		return nil
	}
	r.AppKeySet = ok
	if !ok && r.EnvCreated {
		s.opts.Reporter.Warn(AppKeyVar + " is still empty in .env; run `" + s.opts.Runtime + " ace generate:key` manually")
	}
	return nil
}

type nopReporter struct{}

func (nopReporter) Section(string) {}
func (nopReporter) Success(string) {}
func (nopReporter) Warn(string)    {}
