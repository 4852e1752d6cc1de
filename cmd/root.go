// Package cmd provides the root command and CLI setup for synver.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"synver.dev/pkg/synver/internal/adapter"
	"synver.dev/pkg/synver/internal/controller"
	"synver.dev/pkg/synver/internal/domain"
	m "synver.dev/pkg/synver/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var reportStore adapter.ReportStore
var loader domain.Loader
var comparator domain.Comparator
var workflow domain.Workflow
var ui controller.UI

// Root-level flags shared by commands that display reports.
var (
	diffFlag    bool
	plainFlag   bool
	verboseFlag bool
	logFileFlag string
)

// Compare flags.
var (
	reportFlag       string
	excludePatterns  []string
	includeTestsFlag bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	loader = domain.NewLoader(fsAdapter, goFileAdapter)
	comparator = domain.NewComparator()
	workflow = domain.NewWorkflow(
		loader,
		comparator,
		reportStore,
		ui,
	)
}

const rootLongDescription = `Synver compares two versions of a Go source tree and computes the next
version number from what changed in between.

Members (struct fields, package-level consts and vars, functions, methods and
interface methods) are matched by declaration. Removing a public member is
breaking, adding one or changing a body is not, and any internal change
counts as non-breaking. When nothing differs structurally but the files do,
the change is still non-breaking.

Breaking changes advance the minor version and reset patch; non-breaking
changes advance patch. The major version is never changed.

VERSION overrides the starting version. Without it, a string Version const
or var in the root package of BASE is used, then a VERSION file in BASE.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synver BASE MODIFIED [VERSION]",
		Short: "Compute the next version from a Go API surface diff",
		Long:  rootLongDescription,
		Args:  cobra.RangeArgs(2, 3),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: runCompare,
	}

	configureRootFlags(cmd)
	configureCompareFlags(cmd)

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	compareArgs := domain.CompareArgs{
		Base:     m.Path(args[0]),
		Modified: m.Path(args[1]),
		Load: domain.LoadOptions{
			Exclude:      viper.GetStringSlice(excludeConfigKey),
			IncludeTests: viper.GetBool(includeTestsConfigKey),
		},
		Report:  m.Path(viper.GetString(reportConfigKey)),
		Display: displayOptions(),
	}

	if len(args) > 2 {
		compareArgs.Version = args[2]
	}

	_, err := workflow.Compare(cmd.Context(), compareArgs)

	return err
}

func displayOptions() []controller.DisplayOption {
	var options []controller.DisplayOption

	if viper.GetBool(diffConfigKey) {
		options = append(options, controller.WithDiff())
	}

	if viper.GetBool(plainConfigKey) {
		options = append(options, controller.WithPlain())
	}

	return options
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&diffFlag, diffFlagName, viper.GetBool(diffConfigKey), "show a diff of the bodies of changed members")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(diffFlagName), diffConfigKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "plain output without colors or paging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

func configureCompareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "save the report as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.Flags().BoolVar(&includeTestsFlag, includeTestsFlagName, viper.GetBool(includeTestsConfigKey), "compare members declared in _test.go files too")
	bindFlagToConfig(cmd.Flags().Lookup(includeTestsFlagName), includeTestsConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
