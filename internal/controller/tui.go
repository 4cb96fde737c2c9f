package controller

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const tailLines = 6

// TUI implements UI using Bubble Tea: a spinner for the running stage and a
// rolling window of external tool output.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	verbose bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	t.verbose = cfg.verbose

	// The UI outlives job cancellation so cleanup progress is still shown.
	t.program = tea.NewProgram(
		newProgressModel(cfg.title),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
		tea.WithContext(context.WithoutCancel(ctx)),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Warn("TUI stopped", "error", err)
		}
	}()

	return nil
}

// Display forwards an event to the program.
func (t *TUI) Display(_ context.Context, event m.Event) {
	if t.program == nil || !Visible(event, t.verbose) {
		return
	}

	t.program.Send(eventMsg(event))
}

// Finish renders the verdict and stops the program.
func (t *TUI) Finish(_ context.Context, verdict m.Verdict) {
	if t.program == nil {
		return
	}

	t.program.Send(verdictMsg(verdict))
}

// Close waits for the program to exit.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
		t.program.Quit()
		<-t.done
	}
}

type (
	eventMsg   m.Event
	verdictMsg m.Verdict
)

type progressModel struct {
	spinner spinner.Model
	title   string
	stage   m.Stage
	tail    []string
	done    bool
}

func newProgressModel(title string) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = infoStyle

	return progressModel{spinner: s, title: title}
}

func (pm progressModel) Init() tea.Cmd {
	cmds := []tea.Cmd{pm.spinner.Tick}
	if pm.title != "" {
		cmds = append(cmds, tea.Println(titleStyle.Render(pm.title)))
	}

	return tea.Batch(cmds...)
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case eventMsg:
		event := m.Event(msg)
		pm.stage = event.Stage

		if event.Level == m.LevelOutput {
			pm.tail = append(pm.tail, event.Text)
			if len(pm.tail) > tailLines {
				pm.tail = pm.tail[len(pm.tail)-tailLines:]
			}

			return pm, nil
		}

		if event.Level == m.LevelInfo && strings.HasSuffix(event.Text, " started") {
			pm.tail = nil
		}

		return pm, tea.Println(RenderEvent(event))

	case verdictMsg:
		pm.done = true
		verdict := m.Verdict(msg)

		summary := errorStyle.Render("Failed: " + verdict.Message)
		if verdict.Success {
			summary = successStyle.Render("Success: " + verdict.Message)
		}

		if len(verdict.Stages) > 0 {
			summary = renderStageTable(verdict) + summary
		}

		return pm, tea.Sequence(tea.Println(summary), tea.Quit)
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(pm.spinner.View())
	b.WriteString(" ")
	b.WriteString(stageStyle.Render(pm.stage.String()))
	b.WriteString("\n")

	for _, line := range pm.tail {
		b.WriteString(outputStyle.Render("  " + line))
		b.WriteString("\n")
	}

	return b.String()
}
