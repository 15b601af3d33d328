package commands

import (
	"github.com/spf13/cobra"

	"coursereg/internal/console"
)

// studentsCmd prints "<id>: <name>" for everyone on the roster.
func studentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "Print the student roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console.WriteRoster(cmd.OutOrStdout(), appCtx.Registration.Students())
			return nil
		},
	}
}
