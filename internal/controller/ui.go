// Package controller provides output adapters for displaying comparison
// reports.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "synver.dev/pkg/synver/internal/model"
)

// DisplayOption is a functional option for DisplayReport.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds configuration for displaying a report.
type DisplayConfig struct {
	diff  bool
	plain bool
}

// WithDiff shows a unified diff of the bodies of changed members.
func WithDiff() DisplayOption {
	return func(c *DisplayConfig) {
		c.diff = true
	}
}

// WithPlain disables styling and paging even on a terminal.
func WithPlain() DisplayOption {
	return func(c *DisplayConfig) {
		c.plain = true
	}
}

func newDisplayConfig(options []DisplayOption) DisplayConfig {
	var config DisplayConfig
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines the interface for presenting a comparison report.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(ctx context.Context, report m.Report, options ...DisplayOption) error
}

// NewUI picks the styled TUI when writing to a terminal and the plain
// SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// sections returns the report sections in display order.
func sections(report m.Report) []section {
	return []section{
		{title: "changed", entries: report.Changed},
		{title: "deleted", entries: report.Deleted},
		{title: "added", entries: report.Added},
	}
}

type section struct {
	title   string
	entries []m.Entry
}

// bodyDiff renders the unified diff between the two bodies of a changed entry.
func bodyDiff(entry m.Entry) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(entry.Before),
		B:        difflib.SplitLines(entry.After),
		FromFile: "base",
		ToFile:   "modified",
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(diff)
}
