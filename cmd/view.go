package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namelint.dev/pkg/namelint/internal/controller"
	"namelint.dev/pkg/namelint/internal/domain"
	m "namelint.dev/pkg/namelint/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a previously saved naming report",
		Long:  "View a naming report written by a previous run with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			suggestFixes, _ := cmd.Flags().GetBool(suggestFixesFlagName)

			return newWorkflow(cmd).View(cmd.Context(), domain.ViewArgs{
				Report:       m.Path(args[0]),
				Format:       format,
				SuggestFixes: suggestFixes,
			})
		},
	}

	cmd.Flags().Bool(suggestFixesFlagName, false, "print suggested renames")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
