package adapter

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

type fakeStrategy struct {
	name      string
	available bool
	write     bool
	err       error
	calls     int
}

func (f *fakeStrategy) Name() string    { return f.name }
func (f *fakeStrategy) Available() bool { return f.available }

func (f *fakeStrategy) Extract(_ context.Context, _ m.Path, entry string, destDir m.Path) error {
	f.calls++
	if f.write {
		return os.WriteFile(string(destDir.Join(filepath.Base(entry))), []byte(f.name), 0o600)
	}

	return f.err
}

type recordingRunner struct {
	result   RunResult
	err      error
	commands []Command
}

func (r *recordingRunner) Run(_ context.Context, cmd Command) (RunResult, error) {
	r.commands = append(r.commands, cmd)
	return r.result, r.err
}

func (r *recordingRunner) RunStreaming(_ context.Context, cmd Command, _ LineFunc) (int, error) {
	r.commands = append(r.commands, cmd)
	return r.result.ExitCode, r.err
}

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, body := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(body))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestChainExtractor_FallsThroughToWorkingStrategy(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"base.apk": "payload"})

	missing := &fakeStrategy{name: "7z", available: false}
	broken := &fakeStrategy{name: "unzip", available: true, err: errors.New("boom")}
	working := &fakeStrategy{name: "zip", available: true, write: true}

	extractor := NewChainExtractor(missing, broken, working)
	dest := m.Path(filepath.Join(dir, "out"))

	path, err := extractor.ExtractEntry(context.Background(), m.Path(archive), "base.apk", dest)

	require.NoError(t, err)
	assert.Equal(t, dest.Join("base.apk"), path)
	assert.Equal(t, 0, missing.calls)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "zip", string(content))
}

func TestChainExtractor_StrategyThatProducesNothingFails(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"base.apk": "payload"})

	silent := &fakeStrategy{name: "7z", available: true}
	extractor := NewChainExtractor(silent)

	_, err := extractor.ExtractEntry(context.Background(), m.Path(archive), "base.apk", m.Path(filepath.Join(dir, "out")))

	var extErr *m.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, "base.apk", extErr.Entry)
	assert.Len(t, extErr.Attempts, 1)
}

func TestChainExtractor_EntryNotFound(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"split_config.arm64_v8a.apk": "x"})

	working := &fakeStrategy{name: "zip", available: true, write: true}
	extractor := NewChainExtractor(working)

	_, err := extractor.ExtractEntry(context.Background(), m.Path(archive), "base.apk", m.Path(dir))

	require.ErrorIs(t, err, m.ErrEntryNotFound)
	assert.Equal(t, 0, working.calls)
}

func TestChainExtractor_AllFail(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"base.apk": "x"})

	extractor := NewChainExtractor(
		&fakeStrategy{name: "7z", available: true, err: errors.New("7z broke")},
		&fakeStrategy{name: "unzip", available: true, err: errors.New("unzip broke")},
	)

	_, err := extractor.ExtractEntry(context.Background(), m.Path(archive), "base.apk", m.Path(dir))

	var extErr *m.ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Len(t, extErr.Attempts, 2)
	assert.Contains(t, err.Error(), "7z broke")
	assert.Contains(t, err.Error(), "unzip broke")
}

func TestZipExtractStrategy_Extract(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"com.example.app.apk": "the-apk"})

	dest := m.Path(t.TempDir())
	err := ZipExtractStrategy{}.Extract(context.Background(), m.Path(archive), "com.example.app.apk", dest)

	require.NoError(t, err)
	content, err := os.ReadFile(string(dest.Join("com.example.app.apk")))
	require.NoError(t, err)
	assert.Equal(t, "the-apk", string(content))
}

func TestExternalExtractStrategy(t *testing.T) {
	t.Run("non-zero exit is an error", func(t *testing.T) {
		runner := &recordingRunner{result: RunResult{ExitCode: 2, Stderr: "bad archive"}}

		strategy := NewExternalExtractStrategy("7z", runner, func(archive, entry, dest string) []string {
			return []string{"e", archive, entry, "-o" + dest, "-y"}
		})

		err := strategy.Extract(context.Background(), "in.apks", "base.apk", "/tmp/out")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad archive")
		require.Len(t, runner.commands, 1)
		assert.Equal(t, "7z", runner.commands[0].Name)
		assert.Equal(t, []string{"e", "in.apks", "base.apk", "-o/tmp/out", "-y"}, runner.commands[0].Args)
	})

	t.Run("availability follows PATH lookup", func(t *testing.T) {
		strategy := NewExternalExtractStrategy("unzip", nil, nil)

		strategy.lookPath = func(string) (string, error) { return "", errors.New("not found") }
		assert.False(t, strategy.Available())

		strategy.lookPath = func(string) (string, error) { return "/usr/bin/unzip", nil }
		assert.True(t, strategy.Available())
	})
}

func TestHasEntry(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "app.apks")
	writeZip(t, archive, map[string]string{"base.apk": "x", "lib/arm64-v8a/libfoo.so": "y"})

	ok, err := HasEntry(m.Path(archive), "base.apk")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasEntry(m.Path(archive), "lib/")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = HasEntry(m.Path(filepath.Join(dir, "missing.apks")), "base.apk")
	require.Error(t, err)
}
