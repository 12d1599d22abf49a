package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [directory]",
		Short: "List candidate files with their category and status",
		Long: `List every file that would be checked, together with the category its
name falls into and whether it passes the naming rules.

` + conventionsHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanArgs, err := scanArgsFromConfig(args)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).List(cmd.Context(), scanArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
