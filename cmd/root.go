// Package cmd provides the root command and CLI setup for namelint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"namelint.dev/pkg/namelint/internal/adapter"
	"namelint.dev/pkg/namelint/internal/controller"
	"namelint.dev/pkg/namelint/internal/domain"
	m "namelint.dev/pkg/namelint/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const conventionsHelp = `Naming conventions:
  - primary test files:   test_{module}_{submodule}.hpp
  - submodule test files: {module}_{feature}_test.hpp or .cpp
  - all other files:      lowercase letters, digits and underscores only

Hidden directories and build outputs (build, Debug, Release) as well as the
test framework's formatting directory are skipped.`

const rootLongDescription = `namelint checks that the files of a C++ test tree follow the project's
naming conventions and reports every file that does not.

` + conventionsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "namelint [directory]",
		Short:         "Test file naming convention checker",
		Long:          rootLongDescription,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: runCheck,
	}

	configureRootFlags(cmd)
	configureCheckFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayP(excludeFlagName, "x", adapter.DefaultExclude, "directory name to skip (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringSlice(extFlagName, adapter.DefaultExtensions, "file extensions to check")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extFlagName), extensionsConfigKey)

	cmd.PersistentFlags().String(strictnessFlagName, defaultStrictness, "primary test rule: strict (module and submodule) or lenient (module only)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictnessFlagName), strictnessConfigKey)

	cmd.PersistentFlags().String(formatFlagName, defaultFormat, "report format: text or table")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(verboseFlagName, "v", defaultLogVerbose, "show every checked file")
	bindFlagToConfig(cmd.Flags().Lookup(verboseFlagName), logVerboseKey)

	cmd.Flags().IntP(parallelFlagName, "p", defaultParallel, "number of parallel validation workers")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().String(reportFlagName, "", "also write the report as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().Bool(statsOnlyFlagName, false, "only print statistics")
	cmd.Flags().Bool(suggestFixesFlagName, false, "print suggested renames")
	cmd.Flags().Bool(diffFlagName, false, "with --suggest-fixes, print the renames as a unified diff")
	cmd.Flags().BoolP(interactiveFlagName, "i", false, "page the report when attached to a terminal")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow wires a workflow whose UI writes to the command's output.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	return domain.NewWorkflow(fsAdapter, reportStore, ui)
}

func runCheck(cmd *cobra.Command, args []string) error {
	scanArgs, err := scanArgsFromConfig(args)
	if err != nil {
		return err
	}

	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	statsOnly, _ := flags.GetBool(statsOnlyFlagName)
	suggestFixes, _ := flags.GetBool(suggestFixesFlagName)
	showDiff, _ := flags.GetBool(diffFlagName)
	interactive, _ := flags.GetBool(interactiveFlagName)

	return newWorkflow(cmd).Check(cmd.Context(), domain.CheckArgs{
		ScanArgs:     scanArgs,
		Verbose:      viper.GetBool(logVerboseKey),
		StatsOnly:    statsOnly,
		SuggestFixes: suggestFixes,
		ShowDiff:     showDiff,
		Interactive:  interactive,
		Format:       format,
		ReportPath:   m.Path(viper.GetString(reportConfigKey)),
	})
}

func scanArgsFromConfig(args []string) (domain.ScanArgs, error) {
	root := defaultScanRoot
	if len(args) > 0 {
		root = args[0]
	}

	strictness, err := domain.ParseStrictness(viper.GetString(strictnessConfigKey))
	if err != nil {
		return domain.ScanArgs{}, err
	}

	return domain.ScanArgs{
		Root:       m.Path(root),
		Extensions: normalizeExtensions(viper.GetStringSlice(extensionsConfigKey)),
		Exclude:    viper.GetStringSlice(excludeConfigKey),
		Strictness: strictness,
		Parallel:   viper.GetInt(parallelConfigKey),
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError prints err unless it only signals that violations were found,
// which the report already shows.
func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, domain.ErrViolationsFound):
	case errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(w, "check interrupted")
	default:
		_, _ = fmt.Fprintf(w, "error: %v\n", err)
	}
}
