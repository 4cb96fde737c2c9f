package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewYAMLReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), ".apkrepack-reports"))

	report := m.Report{
		JobID:     "job-1",
		Input:     "/apps/sample.apks",
		Output:    "/apps/sample_Pairip.apk",
		Success:   true,
		Message:   "done",
		StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Elapsed:   "3.2s",
		Stages: []m.StageReport{
			{Stage: "Merge", Status: "ok", Duration: "1s"},
			{Stage: "HookCheck", Status: "skipped", Message: "disabled", Duration: "0s"},
		},
		Transcript: []m.TranscriptLn{{Stage: "Merge", Level: "info", Text: "merging"}},
	}

	path, err := store.SaveReport(dir, report)
	require.NoError(t, err)
	assert.Equal(t, dir.Join("sample-job-1.yaml"), path)

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "job_id: job-1")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestYAMLReportStore_RequiresJobID(t *testing.T) {
	_, err := NewYAMLReportStore().SaveReport(m.Path(t.TempDir()), m.Report{})
	require.Error(t, err)
}

func TestYAMLReportStore_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, path, "stages: [unterminated")

	_, err := NewYAMLReportStore().LoadReport(m.Path(path))
	require.Error(t, err)
}
