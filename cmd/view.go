package cmd

import (
	"github.com/spf13/cobra"
	"synver.dev/pkg/synver/internal/domain"
	m "synver.dev/pkg/synver/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view REPORT",
		Short: "View a previously saved report",
		Long:  "Display a report saved with --report, without comparing anything again.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Report:  m.Path(args[0]),
				Display: displayOptions(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
