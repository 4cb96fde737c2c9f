package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	"apkrepack.dev/pkg/apkrepack/internal/metrics"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// Pipeline drives one repackaging job through its stages.
type Pipeline interface {
	// Run executes the job and returns its verdict. The error is a
	// *model.StageError when the job failed.
	Run(ctx context.Context, job m.Job, sink ProgressSink) (m.Verdict, error)
}

// PipelineConfig holds the settings shared by every job of a pipeline.
type PipelineConfig struct {
	Java    string
	WorkDir m.Path
}

type pipeline struct {
	tools     m.ToolLocations
	cfg       PipelineConfig
	decomp    DecompilerTool
	runner    adapter.ProcessRunner
	extractor adapter.ArchiveEntryExtractor
	inspector adapter.ApkInspector
	fs        adapter.WorkspaceFS
	patcher   Patcher
	metrics   metrics.Recorder
	now       func() time.Time
}

// NewPipeline constructs a Pipeline for already resolved tools.
func NewPipeline(
	tools m.ToolLocations,
	cfg PipelineConfig,
	runner adapter.ProcessRunner,
	extractor adapter.ArchiveEntryExtractor,
	inspector adapter.ApkInspector,
	fsys adapter.WorkspaceFS,
	recorder metrics.Recorder,
) Pipeline {
	if recorder == nil {
		recorder = metrics.Noop{}
	}

	if cfg.Java == "" {
		cfg.Java = "java"
	}

	return &pipeline{
		tools:     tools,
		cfg:       cfg,
		decomp:    DecompilerTool{Java: cfg.Java, Jar: tools.DecompilerToolPath},
		runner:    runner,
		extractor: extractor,
		inspector: inspector,
		fs:        fsys,
		patcher:   NewPatcher(fsys),
		metrics:   recorder,
		now:       time.Now,
	}
}

type stageFunc func(r *run, ctx context.Context) m.StageResult

type step struct {
	stage   m.Stage
	fatal   bool
	kind    m.ErrorKind
	enabled func(r *run) bool
	exec    stageFunc
}

func (p *pipeline) steps() []step {
	return []step{
		{stage: m.StageDependencyCheck, fatal: true, kind: m.KindDependency, exec: (*run).dependencyCheck},
		{stage: m.StageMerge, fatal: true, kind: m.KindStage, exec: (*run).merge},
		{stage: m.StageScan, fatal: true, kind: m.KindStage, exec: (*run).scan},
		{stage: m.StageDecompile, fatal: true, kind: m.KindStage, exec: (*run).decompile},
		{stage: m.StageHookCheck, kind: m.KindStage, enabled: (*run).hookRequested, exec: (*run).hookCheck},
		{stage: m.StageHookInject, kind: m.KindStage, enabled: (*run).hookReady, exec: (*run).hookInject},
		{stage: m.StageManifestPatch, fatal: true, kind: m.KindStage, exec: (*run).manifestPatch},
		{stage: m.StageSmaliPatch, kind: m.KindStage, exec: (*run).smaliPatch},
		{stage: m.StageRecompile, fatal: true, kind: m.KindStage, exec: (*run).recompile},
		{stage: m.StageIntegritySkip, kind: m.KindStage, exec: (*run).integritySkip},
	}
}

// run owns the mutable state of one job.
type run struct {
	p           *pipeline
	job         m.Job
	ws          m.Workspace
	sink        ProgressSink
	state       m.JobState
	packageName string
	hookOK      bool
	stage       m.Stage
	records     []m.StageRecord
}

func (p *pipeline) Run(ctx context.Context, job m.Job, sink ProgressSink) (m.Verdict, error) {
	if sink == nil {
		sink = SinkFunc(func(m.Event) {})
	}

	start := p.now()
	r := &run{
		p:     p,
		job:   job,
		sink:  sink,
		state: m.JobState{UseNativeHook: job.UseNativeHook},
	}

	slog.Info("Starting job", "job", job.ID, "input", job.InputArchivePath, "hook", job.UseNativeHook)

	ws, err := job.DeriveWorkspace(p.cfg.WorkDir)
	if err != nil {
		return r.finish(start, &m.StageError{Stage: m.StageDependencyCheck, Kind: m.KindIO, Err: err})
	}

	r.ws = ws

	var failure *m.StageError

	for _, st := range p.steps() {
		if st.enabled != nil && !st.enabled(r) {
			continue
		}

		if ctx.Err() != nil {
			failure = &m.StageError{Stage: st.stage, Kind: st.kind, Err: m.ErrCancelled}
			break
		}

		result := r.execute(ctx, st.stage, st.exec)
		if result.OK {
			continue
		}

		if ctx.Err() != nil {
			failure = &m.StageError{Stage: st.stage, Kind: st.kind, Err: m.ErrCancelled}
			break
		}

		if st.fatal {
			failure = &m.StageError{Stage: st.stage, Kind: st.kind, Err: errors.New(result.Message)}
			break
		}
	}

	r.execute(context.WithoutCancel(ctx), m.StageCleanup, (*run).cleanup)

	return r.finish(start, failure)
}

func (r *run) execute(ctx context.Context, stage m.Stage, exec stageFunc) m.StageResult {
	r.stage = stage
	r.emit(m.LevelInfo, "%s started", stage)

	started := r.p.now()
	result := exec(r, ctx)
	elapsed := r.p.now().Sub(started)

	record := m.StageRecord{Stage: stage, Message: result.Message, Duration: elapsed}

	switch {
	case result.OK:
		record.Status = m.StatusOK
		r.emit(m.LevelSuccess, "%s completed: %s", stage, result.Message)
	case r.isFatal(stage) || ctx.Err() != nil:
		record.Status = m.StatusFailed
		r.emit(m.LevelError, "%s failed: %s", stage, result.Message)
	case stage == m.StageHookCheck:
		record.Status = m.StatusSkipped
		r.emit(m.LevelWarn, "%s: %s, continuing without hook", stage, result.Message)
	default:
		record.Status = m.StatusWarning
		r.emit(m.LevelWarn, "%s: %s, continuing", stage, result.Message)
	}

	r.records = append(r.records, record)
	r.p.metrics.ObserveStage(stage.String(), string(record.Status), elapsed)

	slog.Debug("Stage finished", "job", r.job.ID, "stage", stage, "status", record.Status, "duration", elapsed)

	return result
}

func (r *run) isFatal(stage m.Stage) bool {
	for _, st := range r.p.steps() {
		if st.stage == stage {
			return st.fatal
		}
	}

	return false
}

func (r *run) finish(start time.Time, failure *m.StageError) (m.Verdict, error) {
	elapsed := r.p.now().Sub(start)
	verdict := m.Verdict{
		JobID:   r.job.ID,
		Elapsed: elapsed,
		Stages:  r.records,
	}

	r.p.metrics.ObserveJob(failure == nil, elapsed)

	if failure != nil {
		verdict.Message = failureMessage(failure)
		r.stage = m.StageFailed
		r.emit(m.LevelError, "Failed: %s", verdict.Message)
		slog.Error("Job failed", "job", r.job.ID, "stage", failure.Stage, "error", failure.Err)

		return verdict, failure
	}

	verdict.Success = true
	verdict.OutputPath = r.ws.OutputPath
	verdict.Message = fmt.Sprintf("output written to %s", r.ws.OutputPath)
	r.stage = m.StageSuccess
	r.emit(m.LevelSuccess, "Finished in %.2fs", elapsed.Seconds())
	r.emit(m.LevelSuccess, "Output: %s", r.ws.OutputPath)
	slog.Info("Job succeeded", "job", r.job.ID, "output", r.ws.OutputPath, "elapsed", elapsed)

	return verdict, nil
}

func failureMessage(err *m.StageError) string {
	if errors.Is(err, m.ErrCancelled) {
		return m.ErrCancelled.Error()
	}

	if err.Err == nil {
		return err.Stage.String()
	}

	return fmt.Sprintf("%s: %v", err.Stage, err.Err)
}

func (r *run) emit(level m.Level, format string, args ...any) {
	r.sink.Emit(m.Event{
		JobID: r.job.ID,
		Stage: r.stage,
		Level: level,
		Text:  fmt.Sprintf(format, args...),
		Time:  r.p.now(),
	})
}

// output forwards one line of external tool output.
func (r *run) output(line string) {
	r.sink.Emit(m.Event{
		JobID: r.job.ID,
		Stage: r.stage,
		Level: m.LevelOutput,
		Text:  line,
		Time:  r.p.now(),
	})
}

func (r *run) hookRequested() bool {
	return r.job.UseNativeHook
}

func (r *run) hookReady() bool {
	return r.job.UseNativeHook && r.hookOK
}

// stream runs a decompiler command and maps a non-zero exit to a failure.
func (r *run) stream(ctx context.Context, cmd adapter.Command, what string) m.StageResult {
	r.emit(m.LevelDebug, "$ %s", cmd)

	code, err := r.p.runner.RunStreaming(ctx, cmd, r.output)
	if err != nil {
		return m.Fail(fmt.Sprintf("%s: %v", what, err))
	}

	if code != 0 {
		return m.Fail(fmt.Sprintf("%s exited with code %d", what, code))
	}

	return m.Ok(what + " succeeded")
}
