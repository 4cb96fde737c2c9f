package model

import "time"

// Stage identifies one step of the pipeline state machine.
type Stage int

// Pipeline stages in execution order, followed by the terminal states.
const (
	StageDependencyCheck Stage = iota
	StageMerge
	StageScan
	StageDecompile
	StageHookCheck
	StageHookInject
	StageManifestPatch
	StageSmaliPatch
	StageRecompile
	StageIntegritySkip
	StageCleanup
	StageSuccess
	StageFailed
)

var stageNames = map[Stage]string{
	StageDependencyCheck: "DependencyCheck",
	StageMerge:           "Merge",
	StageScan:            "Scan",
	StageDecompile:       "Decompile",
	StageHookCheck:       "HookCheck",
	StageHookInject:      "HookInject",
	StageManifestPatch:   "ManifestPatch",
	StageSmaliPatch:      "SmaliPatch",
	StageRecompile:       "Recompile",
	StageIntegritySkip:   "IntegritySkip",
	StageCleanup:         "Cleanup",
	StageSuccess:         "Success",
	StageFailed:          "Failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}

	return "Unknown"
}

// StageResult is produced by every stage exactly once.
type StageResult struct {
	OK      bool
	Message string
}

// Ok builds a successful StageResult.
func Ok(message string) StageResult {
	return StageResult{OK: true, Message: message}
}

// Fail builds a failed StageResult.
func Fail(message string) StageResult {
	return StageResult{OK: false, Message: message}
}

// StageStatus summarizes how a stage ended.
type StageStatus string

// Stage statuses recorded in reports.
const (
	StatusOK      StageStatus = "ok"
	StatusWarning StageStatus = "warning"
	StatusSkipped StageStatus = "skipped"
	StatusFailed  StageStatus = "failed"
)

// StageRecord captures the outcome of one executed stage.
type StageRecord struct {
	Stage    Stage
	Status   StageStatus
	Message  string
	Duration time.Duration
}
