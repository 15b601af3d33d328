package commands

import (
	"github.com/spf13/cobra"

	"coursereg/internal/console"
)

func coursesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "Print the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console.WriteCatalog(cmd.OutOrStdout(), appCtx.Registration.Courses())
			return nil
		},
	}
}
