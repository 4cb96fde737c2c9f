package model

import (
	"path/filepath"
	"strings"
)

const (
	mergedSuffix     = "_merged.apk"
	decompiledSuffix = "_decompiled"
	hookSuffix       = "_hook"
	outputSuffix     = "_Pairip.apk"
)

// Job is the caller-supplied descriptor for one pipeline run.
type Job struct {
	ID               string
	InputArchivePath Path
	UseNativeHook    bool
	Verbose          bool
}

// JobState exposes the run state that rule predicates are evaluated against.
type JobState struct {
	UseNativeHook bool
	IsFlutterApp  bool
	IsHookApplied bool
}

// HookActive reports whether the native hook library ended up in the package.
func (s JobState) HookActive() bool {
	return s.IsHookApplied
}

// Workspace holds the paths derived from the input filename.
type Workspace struct {
	MergedPath     Path
	DecompiledDir  Path
	HookScratchDir Path
	OutputPath     Path
}

// BaseName returns the input filename without its extension.
func (j Job) BaseName() string {
	base := filepath.Base(string(j.InputArchivePath))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DeriveWorkspace computes the deterministic per-job paths under workDir.
func (j Job) DeriveWorkspace(workDir Path) (Workspace, error) {
	base := j.BaseName()

	outputDir, err := filepath.Abs(filepath.Dir(string(j.InputArchivePath)))
	if err != nil {
		return Workspace{}, err
	}

	return Workspace{
		MergedPath:     workDir.Join(strings.ReplaceAll(base, " ", "_") + mergedSuffix),
		DecompiledDir:  workDir.Join(base + decompiledSuffix),
		HookScratchDir: workDir.Join(base + hookSuffix),
		OutputPath:     Path(filepath.Join(outputDir, base+outputSuffix)),
	}, nil
}
