package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"apkrepack.dev/pkg/apkrepack/internal/domain/rules"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the patch rules",
		Long:  "Print every manifest and smali rewrite rule in the order it is applied.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "Phase", "Description", "Files", "When"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetAutoWrapText(false)

			for i, rule := range rules.All() {
				table.Append([]string{
					strconv.Itoa(i + 1),
					string(rule.Phase),
					rule.Description,
					ruleFiles(rule),
					ruleCondition(rule),
				})
			}

			table.Render()
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func ruleFiles(rule m.PatchRule) string {
	if len(rule.TargetFileNames) > 0 {
		return strings.Join(rule.TargetFileNames, ", ")
	}

	if rule.Phase == m.PhaseManifest {
		return rules.ManifestFileName
	}

	return strings.Join(rules.SmaliTargets(m.JobState{}), ", ")
}

// ruleCondition describes the job states that enable a rule.
func ruleCondition(rule m.PatchRule) string {
	if rule.Applies(m.JobState{}) {
		return "always"
	}

	var conditions []string
	if rule.Applies(m.JobState{IsHookApplied: true}) {
		conditions = append(conditions, "hook applied")
	}

	if rule.Applies(m.JobState{IsFlutterApp: true}) {
		conditions = append(conditions, "flutter app")
	}

	if len(conditions) == 0 {
		return "never"
	}

	return strings.Join(conditions, " or ")
}
