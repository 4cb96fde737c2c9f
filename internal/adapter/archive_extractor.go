package adapter

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// ArchiveEntryExtractor pulls a single named entry out of a zip-format archive.
type ArchiveEntryExtractor interface {
	// ExtractEntry writes entry into destDir and returns the extracted file
	// path. It returns model.ErrEntryNotFound when the archive lacks the entry
	// and *model.ExtractionError when every strategy failed.
	ExtractEntry(ctx context.Context, archive m.Path, entry string, destDir m.Path) (m.Path, error)
}

// ExtractStrategy is one way of extracting an entry.
type ExtractStrategy interface {
	Name() string
	Available() bool
	Extract(ctx context.Context, archive m.Path, entry string, destDir m.Path) error
}

// ChainExtractor tries its strategies in order until one produces the file.
type ChainExtractor struct {
	strategies []ExtractStrategy
}

// NewChainExtractor constructs a ChainExtractor from explicit strategies.
func NewChainExtractor(strategies ...ExtractStrategy) *ChainExtractor {
	return &ChainExtractor{strategies: strategies}
}

// NewLocalArchiveExtractor prefers 7z, then unzip, then in-process extraction.
func NewLocalArchiveExtractor(runner ProcessRunner) *ChainExtractor {
	return NewChainExtractor(
		NewExternalExtractStrategy("7z", runner, func(archive, entry, dest string) []string {
			return []string{"e", archive, entry, "-o" + dest, "-y"}
		}),
		NewExternalExtractStrategy("unzip", runner, func(archive, entry, dest string) []string {
			return []string{"-o", "-j", archive, entry, "-d", dest}
		}),
		ZipExtractStrategy{},
	)
}

// ExtractEntry implements ArchiveEntryExtractor.
func (c *ChainExtractor) ExtractEntry(ctx context.Context, archive m.Path, entry string, destDir m.Path) (m.Path, error) {
	present, err := HasEntry(archive, entry)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", archive, err)
	}

	if !present {
		return "", fmt.Errorf("%s in %s: %w", entry, archive, m.ErrEntryNotFound)
	}

	if err := os.MkdirAll(string(destDir), 0o750); err != nil {
		return "", err
	}

	target := destDir.Join(filepath.Base(entry))
	failure := &m.ExtractionError{Archive: string(archive), Entry: entry}

	for _, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if !strategy.Available() {
			slog.Debug("Extraction strategy unavailable", "strategy", strategy.Name())
			continue
		}

		err := strategy.Extract(ctx, archive, entry, destDir)
		if err == nil && isRegularFile(string(target)) {
			slog.Debug("Extracted archive entry", "strategy", strategy.Name(), "entry", entry, "target", target)
			return target, nil
		}

		if err == nil {
			err = errors.New("no file produced")
		}

		slog.Warn("Extraction strategy failed", "strategy", strategy.Name(), "entry", entry, "error", err)
		failure.Attempts = append(failure.Attempts, fmt.Errorf("%s: %w", strategy.Name(), err))

		_ = os.Remove(string(target))
	}

	if len(failure.Attempts) == 0 {
		failure.Attempts = append(failure.Attempts, errors.New("no extraction strategy available"))
	}

	return "", failure
}

// ExternalExtractStrategy shells out to an archive tool found on PATH.
type ExternalExtractStrategy struct {
	binary   string
	runner   ProcessRunner
	args     func(archive, entry, dest string) []string
	lookPath func(string) (string, error)
}

// NewExternalExtractStrategy constructs a strategy running binary with args.
func NewExternalExtractStrategy(binary string, runner ProcessRunner, args func(archive, entry, dest string) []string) *ExternalExtractStrategy {
	return &ExternalExtractStrategy{
		binary:   binary,
		runner:   runner,
		args:     args,
		lookPath: exec.LookPath,
	}
}

// Name returns the tool name.
func (s *ExternalExtractStrategy) Name() string {
	return s.binary
}

// Available reports whether the tool is on PATH.
func (s *ExternalExtractStrategy) Available() bool {
	_, err := s.lookPath(s.binary)
	return err == nil
}

// Extract runs the tool and maps a non-zero exit to an error.
func (s *ExternalExtractStrategy) Extract(ctx context.Context, archive m.Path, entry string, destDir m.Path) error {
	result, err := s.runner.Run(ctx, Command{
		Name: s.binary,
		Args: s.args(string(archive), entry, string(destDir)),
	})
	if err != nil {
		return err
	}

	if result.ExitCode != 0 {
		return fmt.Errorf("exit code %d: %s", result.ExitCode, result.Combined())
	}

	return nil
}

// ZipExtractStrategy extracts with archive/zip and is always available.
type ZipExtractStrategy struct{}

// Name returns the strategy name.
func (ZipExtractStrategy) Name() string {
	return "zip"
}

// Available always returns true.
func (ZipExtractStrategy) Available() bool {
	return true
}

// Extract copies the entry into destDir under its base name.
func (ZipExtractStrategy) Extract(_ context.Context, archive m.Path, entry string, destDir m.Path) error {
	reader, err := zip.OpenReader(string(archive))
	if err != nil {
		return err
	}

	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if file.Name != entry {
			continue
		}

		return writeZipEntry(file, string(destDir.Join(filepath.Base(entry))))
	}

	return m.ErrEntryNotFound
}

func writeZipEntry(file *zip.File, target string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// #nosec G304 - target is derived from the base name of a known entry
	dst, err := os.Create(target)
	if err != nil {
		return err
	}

	// #nosec G110 - entries are produced by a trusted packaging tool
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}

// HasEntry reports whether archive contains an entry with exactly this name.
func HasEntry(archive m.Path, entry string) (bool, error) {
	reader, err := zip.OpenReader(string(archive))
	if err != nil {
		return false, err
	}

	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if file.Name == entry {
			return true, nil
		}
	}

	return false, nil
}
