package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReport(path m.Path) (m.Report, error)
}

// YAMLReportStore writes one YAML document per job, named after the input
// file and the job id.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report into dir and returns the file path.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if report.JobID == "" {
		return "", fmt.Errorf("report has no job id")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName(report))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.Report, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Report{}, err
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}

func reportFileName(report m.Report) string {
	if report.Input == "" {
		return report.JobID + reportExt
	}

	base := filepath.Base(report.Input)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + "-" + report.JobID + reportExt
}
