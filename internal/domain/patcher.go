package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"apkrepack.dev/pkg/apkrepack/internal/adapter"
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const diffContextLines = 2

// Patcher applies declarative rewrite rules to text files in a decompiled tree.
type Patcher interface {
	// LocateFiles returns every file under root whose base name is in names,
	// searching only inside directories whose name starts with dirPrefix. An
	// empty dirPrefix searches the whole tree.
	LocateFiles(ctx context.Context, root m.Path, dirPrefix string, names []string) ([]m.Path, error)

	// ApplyRules runs rules against files, rules outer and files inner. It
	// returns model.ErrNoTargetFiles when files is empty.
	ApplyRules(ctx context.Context, files []m.Path, rules []m.PatchRule, state m.JobState, opts ...PatchOption) (PatchResult, error)
}

// AppliedPatch records one rule that changed one file.
type AppliedPatch struct {
	Description string
	File        string
	Diff        string
}

// PatchResult summarizes an ApplyRules call.
type PatchResult struct {
	Applied  []AppliedPatch
	modified map[string]struct{}
}

// Modified returns the sorted base names of changed files.
func (r PatchResult) Modified() []string {
	names := make([]string, 0, len(r.modified))
	for name := range r.modified {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// PatchOption configures ApplyRules.
type PatchOption func(*patchConfig)

type patchConfig struct {
	diff bool
}

// WithDiff records a unified diff for every applied patch.
func WithDiff() PatchOption {
	return func(c *patchConfig) {
		c.diff = true
	}
}

type patcher struct {
	adapter.WorkspaceFS
}

// NewPatcher constructs a Patcher over the given filesystem.
func NewPatcher(fsys adapter.WorkspaceFS) Patcher {
	return &patcher{WorkspaceFS: fsys}
}

func (p *patcher) LocateFiles(ctx context.Context, root m.Path, dirPrefix string, names []string) ([]m.Path, error) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	var found []m.Path

	err := p.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := wanted[d.Name()]; !ok {
			return nil
		}

		if dirPrefix != "" && !underPrefixedDir(string(root), path, dirPrefix) {
			return nil
		}

		found = append(found, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("locate files under %s: %w", root, err)
	}

	return found, nil
}

// underPrefixedDir reports whether any directory between root and path starts
// with prefix.
func underPrefixedDir(root, path, prefix string) bool {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		return false
	}

	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, prefix) {
			return true
		}
	}

	return false
}

func (p *patcher) ApplyRules(ctx context.Context, files []m.Path, rules []m.PatchRule, state m.JobState, opts ...PatchOption) (PatchResult, error) {
	cfg := patchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	result := PatchResult{modified: make(map[string]struct{})}

	if len(files) == 0 {
		return result, m.ErrNoTargetFiles
	}

	var errs []error

	for _, rule := range rules {
		if !rule.Applies(state) {
			slog.Debug("Rule not applicable", "rule", rule.Description)
			continue
		}

		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			name := file.Base()
			if !rule.Targets(name) {
				continue
			}

			applied, err := p.applyRule(rule, file, cfg)
			if err != nil {
				slog.Warn("Failed to apply rule", "rule", rule.Description, "file", file, "error", err)
				errs = append(errs, err)

				continue
			}

			if applied == nil {
				continue
			}

			result.modified[name] = struct{}{}
			result.Applied = append(result.Applied, *applied)
		}
	}

	return result, errors.Join(errs...)
}

func (p *patcher) applyRule(rule m.PatchRule, file m.Path, cfg patchConfig) (*AppliedPatch, error) {
	data, err := p.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	before := string(data)
	after := rule.Apply(before)

	if after == before {
		return nil, nil
	}

	if err := p.WriteFile(file, []byte(after), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", file, err)
	}

	slog.Debug("Applied rule", "rule", rule.Description, "file", file)

	applied := &AppliedPatch{Description: rule.Description, File: file.Base()}
	if cfg.diff {
		applied.Diff = unifiedDiff(file.Base(), before, after)
	}

	return applied, nil
}

func unifiedDiff(name, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	})
	if err != nil {
		slog.Warn("Failed to render diff", "file", name, "error", err)
		return ""
	}

	return diff
}
