package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	"apkrepack.dev/pkg/apkrepack/internal/controller"
	"apkrepack.dev/pkg/apkrepack/internal/metrics"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
	"apkrepack.dev/pkg/apkrepack/pkg"
)

const eventBuffer = 64

// RepackArgs contains the arguments for one repackaging job.
type RepackArgs struct {
	Input         m.Path
	UseNativeHook bool
	Verbose       bool
	ToolsBaseDir  m.Path
	WorkDir       m.Path
	Java          string
	Reports       m.Path
	MetricsFile   m.Path
}

// ToolArgs contains the arguments for a single decompiler invocation.
type ToolArgs struct {
	Op           ToolOp
	Input        m.Path
	Output       m.Path
	Extra        []string
	ToolsBaseDir m.Path
	Java         string
}

// Workflow is the entry point used by the commands.
type Workflow interface {
	Repack(ctx context.Context, args RepackArgs) (m.Verdict, error)
	Tool(ctx context.Context, args ToolArgs) error
	Locate(baseDir m.Path) (m.ToolLocations, error)
}

// PipelineFactory builds a Pipeline once the tools are resolved.
type PipelineFactory func(tools m.ToolLocations, cfg PipelineConfig, recorder metrics.Recorder) Pipeline

type workflow struct {
	adapter.ToolLocator
	adapter.ReportStore
	controller.UI
	runner      adapter.ProcessRunner
	newPipeline PipelineFactory
	newID       func() string
	now         func() time.Time
}

// NewWorkflow creates a Workflow backed by the local adapters.
func NewWorkflow(
	locator adapter.ToolLocator,
	runner adapter.ProcessRunner,
	extractor adapter.ArchiveEntryExtractor,
	inspector adapter.ApkInspector,
	fsys adapter.WorkspaceFS,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	factory := func(tools m.ToolLocations, cfg PipelineConfig, recorder metrics.Recorder) Pipeline {
		return NewPipeline(tools, cfg, runner, extractor, inspector, fsys, recorder)
	}

	return newWorkflow(locator, runner, reportStore, ui, factory)
}

func newWorkflow(
	locator adapter.ToolLocator,
	runner adapter.ProcessRunner,
	reportStore adapter.ReportStore,
	ui controller.UI,
	factory PipelineFactory,
) *workflow {
	return &workflow{
		ToolLocator: locator,
		ReportStore: reportStore,
		UI:          ui,
		runner:      runner,
		newPipeline: factory,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// Locate resolves the external artifacts without running anything.
func (w *workflow) Locate(baseDir m.Path) (m.ToolLocations, error) {
	return w.Resolve(baseDir)
}

// Repack runs one job: it resolves the tools, drives the pipeline on a
// worker goroutine and forwards its events, in order, to the UI and the
// transcript. The report and metrics are written whatever the outcome.
func (w *workflow) Repack(ctx context.Context, args RepackArgs) (m.Verdict, error) {
	job := m.Job{
		ID:               w.newID(),
		InputArchivePath: args.Input,
		UseNativeHook:    args.UseNativeHook,
		Verbose:          args.Verbose,
	}
	startedAt := w.now()

	if err := w.Start(ctx, controller.WithTitle("Repacking "+args.Input.Base()), controller.WithVerbose(args.Verbose)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return m.Verdict{JobID: job.ID}, fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(context.WithoutCancel(ctx))

	transcript, err := pkg.NewSpill[m.Event]("")
	if err != nil {
		return m.Verdict{JobID: job.ID}, fmt.Errorf("create transcript: %w", err)
	}

	defer func() {
		_ = transcript.Close()
	}()

	var recorder metrics.Recorder = metrics.Noop{}

	var prom *metrics.Prom
	if args.MetricsFile != "" {
		prom = metrics.NewProm()
		recorder = prom
	}

	verdict, runErr := w.runJob(ctx, job, args, recorder, transcript)

	w.saveReport(args, job, verdict, startedAt, transcript)

	if prom != nil {
		if err := prom.WriteTextfile(string(args.MetricsFile)); err != nil {
			slog.Warn("Failed to write metrics", "path", args.MetricsFile, "error", err)
		}
	}

	w.Finish(context.WithoutCancel(ctx), verdict)

	return verdict, runErr
}

func (w *workflow) runJob(ctx context.Context, job m.Job, args RepackArgs, recorder metrics.Recorder, transcript pkg.Spill[m.Event]) (m.Verdict, error) {
	tools, err := w.Resolve(args.ToolsBaseDir)
	if err != nil {
		w.record(ctx, transcript, m.Event{
			JobID: job.ID,
			Stage: m.StageFailed,
			Level: m.LevelError,
			Text:  err.Error(),
			Time:  w.now(),
		})
		recorder.ObserveJob(false, 0)

		return m.Verdict{JobID: job.ID, Message: err.Error()}, err
	}

	pipe := w.newPipeline(tools, PipelineConfig{Java: args.Java, WorkDir: args.WorkDir}, recorder)
	events := make(chan m.Event, eventBuffer)

	var (
		verdict m.Verdict
		runErr  error
		group   errgroup.Group
	)

	group.Go(func() error {
		defer close(events)

		verdict, runErr = pipe.Run(ctx, job, SinkFunc(func(event m.Event) {
			events <- event
		}))

		return nil
	})

	group.Go(func() error {
		for event := range events {
			w.record(ctx, transcript, event)
		}

		return nil
	})

	_ = group.Wait()

	return verdict, runErr
}

func (w *workflow) record(ctx context.Context, transcript pkg.Spill[m.Event], event m.Event) {
	w.Display(ctx, event)

	if err := transcript.Append(event); err != nil {
		slog.Warn("Failed to record event", "job", event.JobID, "error", err)
	}
}

func (w *workflow) saveReport(args RepackArgs, job m.Job, verdict m.Verdict, startedAt time.Time, transcript pkg.Spill[m.Event]) {
	if args.Reports == "" {
		return
	}

	report := buildReport(job, verdict, startedAt)

	err := transcript.Range(func(_ uint64, event m.Event) error {
		report.Transcript = append(report.Transcript, m.TranscriptLn{
			Stage: event.Stage.String(),
			Level: event.Level.String(),
			Text:  event.Text,
		})

		return nil
	})
	if err != nil {
		slog.Warn("Failed to read transcript", "job", job.ID, "error", err)
	}

	path, err := w.SaveReport(args.Reports, report)
	if err != nil {
		slog.Warn("Failed to save report", "job", job.ID, "dir", args.Reports, "error", err)
		return
	}

	slog.Info("Report saved", "job", job.ID, "path", path)
}

func buildReport(job m.Job, verdict m.Verdict, startedAt time.Time) m.Report {
	report := m.Report{
		JobID:         job.ID,
		Input:         string(job.InputArchivePath),
		Output:        string(verdict.OutputPath),
		Success:       verdict.Success,
		Message:       verdict.Message,
		UseNativeHook: job.UseNativeHook,
		StartedAt:     startedAt,
		Elapsed:       verdict.Elapsed.Round(time.Millisecond).String(),
		Stages:        make([]m.StageReport, 0, len(verdict.Stages)),
	}

	for _, record := range verdict.Stages {
		report.Stages = append(report.Stages, m.StageReport{
			Stage:    record.Stage.String(),
			Status:   string(record.Status),
			Message:  record.Message,
			Duration: record.Duration.Round(time.Millisecond).String(),
		})
	}

	return report
}

// Tool runs one decompiler operation and streams its output to the UI.
func (w *workflow) Tool(ctx context.Context, args ToolArgs) error {
	tools, err := w.Resolve(args.ToolsBaseDir)
	if err != nil {
		return err
	}

	java := args.Java
	if java == "" {
		java = "java"
	}

	decomp := DecompilerTool{Java: java, Jar: tools.DecompilerToolPath}
	cmd := decomp.Command(args.Op, toolOpArgs(args)...)

	if err := w.Start(ctx, controller.WithTitle(cmd.String()), controller.WithVerbose(true)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(context.WithoutCancel(ctx))

	slog.Info("Running tool", "op", args.Op, "input", args.Input)

	started := w.now()
	code, err := w.runner.RunStreaming(ctx, cmd, func(line string) {
		w.Display(ctx, m.Event{Level: m.LevelOutput, Text: line, Time: w.now()})
	})

	verdict := m.Verdict{Elapsed: w.now().Sub(started)}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		err = m.ErrCancelled
	case err == nil && code != 0:
		err = fmt.Errorf("%s exited with code %d", args.Op, code)
	}

	if err != nil {
		verdict.Message = err.Error()
	} else {
		verdict.Success = true
		verdict.Message = fmt.Sprintf("%s finished", args.Op)
		verdict.OutputPath = args.Output
	}

	w.Finish(context.WithoutCancel(ctx), verdict)

	return err
}

func toolOpArgs(args ToolArgs) []string {
	out := []string{"-i", string(args.Input)}
	if args.Output != "" {
		out = append(out, "-o", string(args.Output))
	}

	return append(out, args.Extra...)
}
