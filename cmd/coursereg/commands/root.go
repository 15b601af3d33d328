package commands

import (
	"github.com/spf13/cobra"

	"coursereg/internal/app"
	"coursereg/internal/console"
)

var (
	catalogPath string
	logLevel    string
	logFormat   string
	appCtx      *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "coursereg",
		Short:        "Interactive course registration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("catalog") {
				cfg.Catalog = catalogPath
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			appCtx, err = app.New(cfg, cmd.ErrOrStderr())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := console.New(appCtx.Registration, cmd.InOrStdin(), cmd.OutOrStdout(), appCtx.Log)
			return m.Run()
		},
	}

	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog to seed courses and students (default built-in)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "debug, info, warn, error or disabled")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "console", "console or json")

	root.AddCommand(coursesCmd(), studentsCmd())
	return root
}
