package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apkrepack.dev/pkg/apkrepack/internal/domain"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const repackLongDescription = `Repackage one split archive (.apks, .xapk, .apkm).

The output is written next to the input as <name>_Pairip.apk. Temporary
files go to the work directory and are removed when the job ends, whether
it succeeded or not. A YAML report of every job is written to the reports
directory unless it is empty.

Press Ctrl+C to cancel: the running tool is stopped and temporary files are
removed.`

var (
	hookFlag        bool
	verboseFlag     bool
	workDirFlag     string
	reportsFlag     string
	metricsFileFlag string
)

// repackCmd represents the repack command.
var repackCmd = newRepackCmd()

func newRepackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repack <archive>",
		Short: "Repackage a split archive",
		Long:  repackLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			_, err := workflow.Repack(cmd.Context(), domain.RepackArgs{
				Input:         m.Path(args[0]),
				UseNativeHook: viper.GetBool(nativeHookKey),
				Verbose:       viper.GetBool(verboseKey),
				ToolsBaseDir:  toolsBaseDir(),
				WorkDir:       m.Path(viper.GetString(workDirKey)),
				Java:          viper.GetString(javaKey),
				Reports:       m.Path(viper.GetString(reportDirKey)),
				MetricsFile:   m.Path(viper.GetString(metricsFileKey)),
			})

			return err
		},
	}

	configureRepackFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(repackCmd)
}

func configureRepackFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&hookFlag, hookFlagName, viper.GetBool(nativeHookKey), "inject the native hook library (arm64-v8a only)")
	bindFlagToConfig(cmd.Flags().Lookup(hookFlagName), nativeHookKey)

	cmd.Flags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(verboseKey), "show tool commands and patch diffs")
	bindFlagToConfig(cmd.Flags().Lookup(verboseFlagName), verboseKey)

	cmd.Flags().StringVarP(&workDirFlag, workDirFlagName, "w", viper.GetString(workDirKey), "directory for temporary files")
	bindFlagToConfig(cmd.Flags().Lookup(workDirFlagName), workDirKey)

	cmd.Flags().StringVarP(&reportsFlag, reportsFlagName, "r", viper.GetString(reportDirKey), "directory for run reports (empty disables)")
	bindFlagToConfig(cmd.Flags().Lookup(reportsFlagName), reportDirKey)

	cmd.Flags().StringVar(&metricsFileFlag, metricsFileFlagName, viper.GetString(metricsFileKey), "write Prometheus metrics to this file after the run")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileKey)
}
