package cli

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/cidroy-tech/create-adonis-starter/internal/config"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and where it is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, root, write)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration if no file exists yet")
	return cmd
}

func runConfig(cmd *cobra.Command, root *rootOptions, write bool) error {
	cfg, path, err := root.loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if path == "" {
		fmt.Fprintln(out, "# no user config directory; using built-in defaults")
	} else {
		fmt.Fprintf(out, "# %s\n", path)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))

	if !write {
		return nil
	}
	if path == "" {
		return errors.New("cannot write config: no config path; pass --config")
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "%s already exists; leaving it untouched\n", path)
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
