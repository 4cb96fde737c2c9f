package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// locateCmd represents the locate command.
var locateCmd = newLocateCmd()

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show where the external tools were found",
		Long: `Resolve the decompiler jar and the hook payload the same way repack does
and print their paths, or the directories that were searched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			tools, err := workflow.Locate(toolsBaseDir())
			if err != nil {
				var resolveErr *m.ResolutionError
				if errors.As(err, &resolveErr) {
					cmd.Printf("%s not found\n", resolveErr.Artifact)
					cmd.Println("searched:")

					for _, dir := range resolveErr.SearchedDirs {
						cmd.Printf("  %s\n", dir)
					}
				}

				return err
			}

			cmd.Printf("decompiler\t%s\n", tools.DecompilerToolPath)
			cmd.Printf("hook payload\t%s\n", tools.HookPayloadPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
