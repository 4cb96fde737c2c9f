// Package model defines the data structures for the repackaging pipeline.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// ToolLocations holds the resolved external artifacts. It is immutable once
// resolved.
type ToolLocations struct {
	DecompilerToolPath Path
	HookPayloadPath    Path
}
