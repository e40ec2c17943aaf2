package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/cidroy-tech/create-adonis-starter/internal/config"
	"github.com/cidroy-tech/create-adonis-starter/internal/gitutil"
)

// minNodeVersion is the oldest Node release AdonisJS 6 supports.
const minNodeVersion = "v20.6.0"

func newDoctorCommand(root *rootOptions) *cobra.Command {
	var (
		verbose bool
		offline bool
	)
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the tools a scaffold run needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := root.loadConfig()
			if err != nil {
				return err
			}
			return runDoctor(cmd, cfg, doctorOptions{verbose: verbose, offline: offline, lookPath: exec.LookPath})
		},
	}
	cmd.Flags().BoolVar(&verbose, "all", false, "show passing checks too")
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the template reachability check")
	return cmd
}

type doctorOptions struct {
	verbose  bool
	offline  bool
	lookPath func(string) (string, error)
}

type doctorCheck struct {
	Name string
	Fn   func(context.Context) error
}

func runDoctor(cmd *cobra.Command, cfg config.Config, opts doctorOptions) error {
	out := cmd.OutOrStdout()
	pal := newPalette(out)

	checks := []doctorCheck{
		{Name: "git installed", Fn: func(ctx context.Context) error {
			if err := requireOnPath(opts.lookPath, "git")(ctx); err != nil {
				return err
			}
			_, err := gitutil.Version(ctx)
			return err
		}},
		{Name: cfg.PackageManager + " installed", Fn: requireOnPath(opts.lookPath, cfg.PackageManager)},
		{Name: cfg.Runtime + " installed", Fn: requireOnPath(opts.lookPath, cfg.Runtime)},
		{Name: cfg.Runtime + " >= " + minNodeVersion, Fn: func(ctx context.Context) error {
			return checkNodeVersion(ctx, cfg.Runtime)
		}},
	}
	if !opts.offline {
		checks = append(checks, doctorCheck{Name: "template reachable", Fn: func(ctx context.Context) error {
			return gitutil.RemoteReachable(ctx, cfg.Template.URL)
		}})
	}

	var failures []string
	for _, check := range checks {
		err := check.Fn(cmd.Context())
		if err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if opts.verbose {
			fmt.Fprintln(out, pal.success("✓ "+check.Name))
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(out, "ready to scaffold!")
	return nil
}

func requireOnPath(lookPath func(string) (string, error), binary string) func(context.Context) error {
	return func(context.Context) error {
		if _, err := lookPath(binary); err != nil {
			return fmt.Errorf("%s not found on PATH", binary)
		}
		return nil
	}
}

func checkNodeVersion(ctx context.Context, runtime string) error {
	cmd := exec.CommandContext(ctx, runtime, "--version")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("%s --version: %w", runtime, err)
	}
	return compareNodeVersion(string(bytes.TrimSpace(output)), minNodeVersion)
}

// compareNodeVersion accepts `node --version` output such as "v20.11.1".
func compareNodeVersion(got, min string) error {
	v := strings.TrimSpace(got)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return errors.New("unrecognized version " + got)
	}
	if semver.Compare(v, min) < 0 {
		return fmt.Errorf("found %s, need %s or newer", semver.Canonical(v), min)
	}
	return nil
}
