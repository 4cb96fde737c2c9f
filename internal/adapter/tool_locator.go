// Package adapter contains the infrastructure adapters used by the pipeline:
// external process execution, archive access, tool discovery and the
// workspace filesystem.
package adapter

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const libDirName = "lib"

// ToolLocator resolves the external artifacts the pipeline depends on.
type ToolLocator interface {
	// Resolve searches the candidate directories derived from baseDir and
	// returns both artifact paths, or a *model.ResolutionError. When only the
	// hook payload is missing the decompiler path is still filled in.
	Resolve(baseDir m.Path) (m.ToolLocations, error)
}

// ArtifactLocator finds a single artifact among an ordered list of directories.
type ArtifactLocator interface {
	Artifact() string
	Locate(dirs []string) (m.Path, bool)
}

// VersionedLocator picks the file whose name starts with Prefix and ends with
// Ext (case-insensitive). When several match, the lexicographically greatest
// lower-cased filename wins. Version strings only order correctly when they
// are zero-padded ("1.10" sorts before "1.9"); callers rely on this tie-break.
type VersionedLocator struct {
	Prefix string
	Ext    string
}

// Artifact returns a display name for error messages.
func (l VersionedLocator) Artifact() string {
	return l.Prefix + "*" + l.Ext
}

// Locate implements ArtifactLocator.
func (l VersionedLocator) Locate(dirs []string) (m.Path, bool) {
	type candidate struct {
		path string
		name string
	}

	prefix := strings.ToLower(l.Prefix)
	ext := strings.ToLower(l.Ext)

	var found []candidate

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			name := strings.ToLower(entry.Name())
			if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
				continue
			}

			full := filepath.Join(dir, entry.Name())
			if !isRegularFile(full) {
				continue
			}

			found = append(found, candidate{path: full, name: name})
		}
	}

	if len(found) == 0 {
		return "", false
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].name > found[j].name
	})

	return m.Path(found[0].path), true
}

// ExactLocator finds a file by exact name, first directory wins.
type ExactLocator struct {
	FileName string
}

// Artifact returns the file name.
func (l ExactLocator) Artifact() string {
	return l.FileName
}

// Locate implements ArtifactLocator.
func (l ExactLocator) Locate(dirs []string) (m.Path, bool) {
	for _, dir := range dirs {
		full := filepath.Join(dir, l.FileName)
		if isRegularFile(full) {
			return m.Path(full), true
		}
	}

	return "", false
}

// LocalToolLocator searches the base directory, its lib subdirectory and the
// current working directory.
type LocalToolLocator struct {
	decompiler ArtifactLocator
	hook       ArtifactLocator
	getwd      func() (string, error)
}

// NewLocalToolLocator constructs a LocalToolLocator.
func NewLocalToolLocator(decompilerPrefix, decompilerExt, hookPayloadName string) *LocalToolLocator {
	return &LocalToolLocator{
		decompiler: VersionedLocator{Prefix: decompilerPrefix, Ext: decompilerExt},
		hook:       ExactLocator{FileName: hookPayloadName},
		getwd:      os.Getwd,
	}
}

// CandidateDirs returns the ordered, de-duplicated search directories.
func (l *LocalToolLocator) CandidateDirs(baseDir m.Path) []string {
	dirs := []string{string(baseDir), filepath.Join(string(baseDir), libDirName)}
	if wd, err := l.getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	seen := make(map[string]struct{}, len(dirs))
	unique := make([]string, 0, len(dirs))

	for _, dir := range dirs {
		clean := filepath.Clean(dir)
		if _, ok := seen[clean]; ok {
			continue
		}

		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

// Resolve implements ToolLocator.
func (l *LocalToolLocator) Resolve(baseDir m.Path) (m.ToolLocations, error) {
	dirs := l.CandidateDirs(baseDir)

	decompiler, ok := l.decompiler.Locate(dirs)
	if !ok {
		slog.Error("Decompiler tool not found", "artifact", l.decompiler.Artifact(), "dirs", dirs)
		return m.ToolLocations{}, &m.ResolutionError{Artifact: l.decompiler.Artifact(), SearchedDirs: dirs}
	}

	hook, ok := l.hook.Locate(dirs)
	if !ok {
		slog.Error("Hook payload not found", "artifact", l.hook.Artifact(), "dirs", dirs)
		return m.ToolLocations{DecompilerToolPath: decompiler}, &m.ResolutionError{Artifact: l.hook.Artifact(), SearchedDirs: dirs}
	}

	slog.Debug("Resolved tools", "decompiler", decompiler, "hook", hook)

	return m.ToolLocations{DecompilerToolPath: decompiler, HookPayloadPath: hook}, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
