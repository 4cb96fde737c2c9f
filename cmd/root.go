// Package cmd provides the root command and CLI setup for apkrepack.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	"apkrepack.dev/pkg/apkrepack/internal/controller"
	"apkrepack.dev/pkg/apkrepack/internal/domain"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

var toolLocator adapter.ToolLocator
var processRunner adapter.ProcessRunner
var archiveExtractor adapter.ArchiveEntryExtractor
var apkInspector adapter.ApkInspector
var workspaceFS adapter.WorkspaceFS
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// toolsDirFlag is a root-level flag shared by commands that resolve the external tools.
var toolsDirFlag string

// javaFlag overrides the java executable used to run the decompiler.
var javaFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	toolLocator = adapter.NewLocalToolLocator(
		viper.GetString(decompilerPrefixKey),
		viper.GetString(decompilerExtKey),
		viper.GetString(hookPayloadKey),
	)
	processRunner = adapter.NewLocalProcessRunner(processTimeout())
	archiveExtractor = adapter.NewLocalArchiveExtractor(processRunner)
	apkInspector = adapter.NewLocalApkInspector()
	workspaceFS = adapter.NewLocalWorkspaceFS()
	reportStore = adapter.NewYAMLReportStore()
	workflow = domain.NewWorkflow(
		toolLocator,
		processRunner,
		archiveExtractor,
		apkInspector,
		workspaceFS,
		reportStore,
		ui,
	)
}

const rootLongDescription = `apkrepack turns a split Android app bundle protected by a runtime
integrity layer into a single installable package with that layer
neutralized.

The pipeline merges the split archive, decompiles it, rewrites the manifest
and the protection classes, optionally injects a native hook library, and
rebuilds the package. The rebuilt package is unsigned; sign it as a
separate step.

External tools are looked up next to the executable, in its lib directory
and in the current working directory.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apkrepack",
		Short: "Repackage protected Android app bundles",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(
			&toolsDirFlag, toolsDirFlagName,
			viper.GetString(toolsBaseDirKey),
			"directory searched for the decompiler jar and the hook payload",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(toolsDirFlagName), toolsBaseDirKey)

	cmd.PersistentFlags().StringVar(&javaFlag, javaFlagName, viper.GetString(javaKey), "java executable used to run the decompiler")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(javaFlagName), javaKey)
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
// SIGINT and SIGTERM cancel the running job.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func toolsBaseDir() m.Path {
	return m.Path(viper.GetString(toolsBaseDirKey))
}
