package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cidroy-tech/create-adonis-starter/internal/scaffold"
)

const defaultProjectName = "my-adonis-app"

func runCreate(cmd *cobra.Command, e *env, opts *rootOptions, args []string) error {
	out := cmd.OutOrStdout()
	pal := newPalette(out)
	logger := opts.logger(e)

	cfg, cfgPath, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if opts.template != "" {
		cfg.Template.URL = opts.template
	}
	logger.Debug("loaded config", "path", cfgPath, "template", cfg.Template.URL, "package_manager", cfg.PackageManager)

	printBanner(out, pal)

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = promptProjectName(cmd.InOrStdin(), out, pal)
		if err != nil {
			return err
		}
	}

	wd, err := e.getwd()
	if err != nil {
		return err
	}

	s := scaffold.New(scaffold.Options{
		WorkDir:     wd,
		TemplateURL: cfg.Template.URL,
		Placeholder: cfg.Template.Placeholder,
		Runtime:     cfg.Runtime,
		Tools:       e.newTools(cmd, cfg, logger),
		Reporter:    &consoleReporter{out: out, pal: pal},
		Logger:      logger,
	})
	res, err := s.Run(cmd.Context(), name)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, pal.celebrate("\n🎉 Project setup complete!"))
	fmt.Fprintln(out)
	printNextSteps(out, pal, res.Name, cfg.PackageManager)
	return nil
}
