package domain

import (
	"context"
	"path/filepath"
	"testing"

	"synver.dev/pkg/synver/internal/adapter"
	m "synver.dev/pkg/synver/internal/model"
)

func TestExamplesIntegration(t *testing.T) {
	tests := []struct {
		example      string
		want         string
		breaking     bool
		byteFallback bool
		added        int
		deleted      int
		changed      int
	}{
		{example: "breaking", want: "1.5.0", breaking: true, added: 1, deleted: 1},
		{example: "patch", want: "2.1.1"},
		{example: "bytes", want: "0.3.8", byteFallback: true},
		{example: "unchanged", want: "3.0.2"},
		{example: "internal", want: "0.8.2"},
		{example: "receiver", want: "1.1.0", breaking: true, added: 1, deleted: 1},
		{example: "types", want: "0.7.0", breaking: true, deleted: 1},
		{example: "rename", want: "1.3.1", changed: 1},
	}

	fs := adapter.NewLocalSourceFSAdapter()
	artifactLoader := NewLoader(fs, adapter.NewLocalGoFileAdapter())
	surfaceComparator := NewComparator()

	for _, tt := range tests {
		t.Run(tt.example, func(t *testing.T) {
			root := filepath.Join("..", "..", "examples", tt.example)

			base, err := artifactLoader.Load(context.Background(), m.Path(filepath.Join(root, "base")), LoadOptions{})
			if err != nil {
				t.Fatalf("Load(base) error = %v", err)
			}

			modified, err := artifactLoader.Load(context.Background(), m.Path(filepath.Join(root, "modified")), LoadOptions{})
			if err != nil {
				t.Fatalf("Load(modified) error = %v", err)
			}

			from, err := ResolveVersion("", base)
			if err != nil {
				t.Fatalf("ResolveVersion() error = %v", err)
			}

			report, err := surfaceComparator.Compare(base, modified, from)
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}

			if got := report.To.String(); got != tt.want {
				t.Errorf("next version = %s, want %s (severity %s)", got, tt.want, report.Severity)
			}

			if report.Severity.Has(m.SeverityBreaking) != tt.breaking {
				t.Errorf("breaking = %v, want %v", report.Severity.Has(m.SeverityBreaking), tt.breaking)
			}

			if report.ByteFallback != tt.byteFallback {
				t.Errorf("byte fallback = %v, want %v", report.ByteFallback, tt.byteFallback)
			}

			if len(report.Added) != tt.added || len(report.Deleted) != tt.deleted || len(report.Changed) != tt.changed {
				t.Errorf("added/deleted/changed = %d/%d/%d, want %d/%d/%d",
					len(report.Added), len(report.Deleted), len(report.Changed), tt.added, tt.deleted, tt.changed)
			}
		})
	}
}
