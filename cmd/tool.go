package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"apkrepack.dev/pkg/apkrepack/internal/domain"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

var (
	toolInputFlag  string
	toolOutputFlag string
)

// toolCmd represents the tool command.
var toolCmd = newToolCmd()

func newToolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool <operation> -i <input> [-o <output>] [-- extra args]",
		Short: "Run a single decompiler operation",
		Long: fmt.Sprintf(`Run one operation of the bundled decompiler and stream its output.

Operations: %s.
Arguments after -- are passed to the decompiler unchanged.`, strings.Join(domain.ToolOpNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := domain.ParseToolOp(args[0])
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			return workflow.Tool(cmd.Context(), domain.ToolArgs{
				Op:           op,
				Input:        m.Path(toolInputFlag),
				Output:       m.Path(toolOutputFlag),
				Extra:        extraArgs(args),
				ToolsBaseDir: toolsBaseDir(),
				Java:         viper.GetString(javaKey),
			})
		},
	}

	cmd.Flags().StringVarP(&toolInputFlag, "input", "i", "", "input archive or directory")
	cmd.Flags().StringVarP(&toolOutputFlag, "output", "o", "", "output archive or directory")
	cobra.CheckErr(cmd.MarkFlagRequired("input"))

	return cmd
}

func init() {
	rootCmd.AddCommand(toolCmd)
}

// extraArgs returns every positional argument after the operation. Flags
// meant for the decompiler must follow "--".
func extraArgs(args []string) []string {
	return args[1:]
}
