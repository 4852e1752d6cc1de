package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
	m "synver.dev/pkg/synver/internal/model"
)

// ReportStore persists comparison reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.Report) error
	LoadReport(ctx context.Context, path m.Path) (m.Report, error)
}

type yamlReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore writing YAML files through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

func (s *yamlReportStore) SaveReport(ctx context.Context, path m.Path, report m.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := s.fs.WriteFile(ctx, path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Debug("saved report", "path", path, "bytes", len(data))

	return nil
}

func (s *yamlReportStore) LoadReport(ctx context.Context, path m.Path) (m.Report, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
