package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// WorkspaceFS abstracts the filesystem operations the pipeline performs on
// its working files, so stage logic can be tested against a temp dir.
//
//nolint:interfacebloat // The pipeline needs one seam for all workspace I/O.
type WorkspaceFS interface {
	// Exists reports whether anything exists at path.
	Exists(path m.Path) bool

	// IsDir reports whether path is an existing directory.
	IsDir(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and its parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a path and all its contents. Missing paths are not an error.
	RemoveAll(path m.Path) error

	// Move renames src to dst, copying across devices when needed.
	Move(src, dst m.Path) error

	// CopyFile copies a single file to dst.
	CopyFile(src, dst m.Path) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// WalkDir traverses root in lexical order.
	WalkDir(root m.Path, fn fs.WalkDirFunc) error
}

// LocalWorkspaceFS is the os-backed WorkspaceFS.
type LocalWorkspaceFS struct{}

// NewLocalWorkspaceFS constructs a LocalWorkspaceFS.
func NewLocalWorkspaceFS() *LocalWorkspaceFS {
	return &LocalWorkspaceFS{}
}

// Exists implements WorkspaceFS.
func (a *LocalWorkspaceFS) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// IsDir implements WorkspaceFS.
func (a *LocalWorkspaceFS) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	return err == nil && info.IsDir()
}

// ReadFile loads file contents from disk.
func (a *LocalWorkspaceFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalWorkspaceFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll implements WorkspaceFS.
func (a *LocalWorkspaceFS) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalWorkspaceFS) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Move implements WorkspaceFS.
func (a *LocalWorkspaceFS) Move(src, dst m.Path) error {
	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	err := os.Rename(string(src), string(dst))
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return err
	}

	if err := cp.Copy(string(src), string(dst)); err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}

	return os.RemoveAll(string(src))
}

// CopyFile implements WorkspaceFS.
func (a *LocalWorkspaceFS) CopyFile(src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}

	return cp.Copy(string(src), string(dst))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalWorkspaceFS) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// WalkDir implements WorkspaceFS.
func (a *LocalWorkspaceFS) WalkDir(root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), fn)
}
