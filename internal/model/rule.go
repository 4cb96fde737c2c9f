package model

import "regexp"

// RulePhase groups rules by the file family they rewrite.
type RulePhase string

// Rule phases.
const (
	PhaseManifest RulePhase = "manifest"
	PhaseSmali    RulePhase = "smali"
)

// PatchRule is a declarative text rewrite. Rules are static and read-only.
type PatchRule struct {
	Phase       RulePhase
	Description string
	Pattern     *regexp.Regexp
	// Replacement is a regexp template ($1, ${name}). Ignored when Rewrite is set.
	Replacement string
	// Rewrite replaces each match with a computed value.
	Rewrite func(match string) string
	// Unless skips a file whose content already matches it.
	Unless *regexp.Regexp
	// TargetFileNames restricts the rule to these base names. Empty means any candidate.
	TargetFileNames []string
	// AppliesWhen gates the whole rule on the job state. Nil means always.
	AppliesWhen func(JobState) bool
}

// Applies reports whether the rule is enabled for the job state.
func (r PatchRule) Applies(state JobState) bool {
	return r.AppliesWhen == nil || r.AppliesWhen(state)
}

// Targets reports whether the rule may touch a file with the given base name.
func (r PatchRule) Targets(name string) bool {
	if len(r.TargetFileNames) == 0 {
		return true
	}

	for _, target := range r.TargetFileNames {
		if target == name {
			return true
		}
	}

	return false
}

// Apply rewrites every non-overlapping match in content in a single pass.
// Content already matching Unless is returned unchanged.
func (r PatchRule) Apply(content string) string {
	if r.Pattern == nil {
		return content
	}

	if r.Unless != nil && r.Unless.MatchString(content) {
		return content
	}

	if r.Rewrite != nil {
		return r.Pattern.ReplaceAllStringFunc(content, r.Rewrite)
	}

	return r.Pattern.ReplaceAllString(content, r.Replacement)
}
