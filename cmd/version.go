package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the apkrepack build version, the Go version used to build it and
the decompiler jar that repack would run.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := unknownVersion, unknownVersion
			if info, ok := debug.ReadBuildInfo(); ok {
				goVersion = info.GoVersion
				if info.Main.Version != "" {
					version = info.Main.Version
				}
			}

			cmd.Println("apkrepack version\t", version)
			cmd.Println("go version\t", goVersion)

			// A missing hook payload still reports the decompiler that was found.
			tools, _ := workflow.Locate(toolsBaseDir())
			if tools.DecompilerToolPath == "" {
				cmd.Println("decompiler\t", "not found")
				return
			}

			cmd.Println("decompiler\t", tools.DecompilerToolPath.Base())
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
