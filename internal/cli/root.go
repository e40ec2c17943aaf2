package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cidroy-tech/create-adonis-starter/internal/config"
	"github.com/cidroy-tech/create-adonis-starter/internal/logging"
	"github.com/cidroy-tech/create-adonis-starter/internal/scaffold"
	"github.com/cidroy-tech/create-adonis-starter/internal/toolchain"
	"github.com/cidroy-tech/create-adonis-starter/internal/version"
)

const commandName = "create-adonis-starter"

// Execute runs the command line and returns the first error, unreported.
func Execute() error {
	return newRootCommand(defaultEnv()).Execute()
}

// env holds the process-level capabilities commands depend on.
type env struct {
	getwd    func() (string, error)
	stderr   io.Writer
	newTools func(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) scaffold.Toolchain
}

func defaultEnv() *env {
	return &env{
		getwd:  os.Getwd,
		stderr: os.Stderr,
		newTools: func(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) scaffold.Toolchain {
			return &toolchain.Exec{
				PackageManager: cfg.PackageManager,
				Stdin:          cmd.InOrStdin(),
				Stdout:         cmd.OutOrStdout(),
				Stderr:         cmd.ErrOrStderr(),
				Logger:         logger,
			}
		},
	}
}

type rootOptions struct {
	configPath string
	template   string
	verbose    bool
}

func newRootCommand(e *env) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           commandName + " [<name>]",
		Short:         "Create a new AdonisJS 6 + PostgreSQL project from the starter template",
		Version:       version.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, e, opts, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.toml (default: user config dir)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log each step and subprocess to stderr")
	cmd.Flags().StringVar(&opts.template, "template", "", "clone this repository instead of the configured template")

	cmd.AddCommand(
		newDoctorCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

func (o *rootOptions) loadConfig() (config.Config, string, error) {
	path := o.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), "", nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, err
	}
	return cfg, path, nil
}

func (o *rootOptions) logger(e *env) *slog.Logger {
	return logging.New(e.stderr, o.verbose)
}
