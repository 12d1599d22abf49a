package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"namelint.dev/pkg/namelint/internal/domain"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the active naming rules",
		Long:  "Show the naming rule applied to each file category for the configured strictness.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strictness, err := domain.ParseStrictness(viper.GetString(strictnessConfigKey))
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Rules(cmd.Context(), strictness)
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
