package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	s.verbose = cfg.verbose

	if cfg.title != "" {
		s.printf("%s\n", titleStyle.Render(cfg.title))
	}

	return nil
}

// Display prints one event as it arrives.
func (s *SimpleUI) Display(_ context.Context, event m.Event) {
	if !Visible(event, s.verbose) {
		return
	}

	s.printf("%s\n", RenderEvent(event))
}

// Finish prints the stage summary table and the verdict.
func (s *SimpleUI) Finish(_ context.Context, verdict m.Verdict) {
	if len(verdict.Stages) > 0 {
		s.printf("\n%s", renderStageTable(verdict))
	}

	if verdict.Success {
		s.printf("%s\n", successStyle.Render("Success: "+verdict.Message))
		return
	}

	s.printf("%s\n", errorStyle.Render("Failed: "+verdict.Message))
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

func renderStageTable(verdict m.Verdict) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Stage", "Status", "Duration", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	for _, record := range verdict.Stages {
		table.Append([]string{
			record.Stage.String(),
			string(record.Status),
			fmt.Sprintf("%.2fs", record.Duration.Seconds()),
			record.Message,
		})
	}

	table.SetFooter([]string{"Total", "", fmt.Sprintf("%.2fs", verdict.Elapsed.Seconds()), ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
