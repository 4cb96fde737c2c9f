// Package controller provides the presentation side of the pipeline: it
// consumes progress events and renders the final verdict.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	verbose bool
	title   string
}

// WithVerbose shows debug-level events.
func WithVerbose(verbose bool) StartOption {
	return func(c *StartConfig) {
		c.verbose = verbose
	}
}

// WithTitle sets the heading shown when the UI starts.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI consumes the progress transcript of one job.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Display(ctx context.Context, event m.Event)
	Finish(ctx context.Context, verdict m.Verdict)
	Close(ctx context.Context)
}

// NewUI returns the interactive TUI on a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(os.Stdout)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
