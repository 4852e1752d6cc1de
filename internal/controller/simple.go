package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "synver.dev/pkg/synver/internal/model"
)

const noEntriesLabel = "(none)"

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the bumped version on the first line, followed by the
// changed, deleted and added sections.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newDisplayConfig(options)

	s.printf("%s\n\n", report.To)
	s.printf("%s\n\n", summaryLine(report))

	for _, sec := range sections(report) {
		s.printf("[%s]\n", sec.title)

		if len(sec.entries) == 0 {
			s.printf("%s\n\n", noEntriesLabel)
			continue
		}

		s.printf("%s\n", renderEntryTable(sec.entries))

		if config.diff && sec.title == "changed" {
			if err := s.printDiffs(sec.entries); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SimpleUI) printDiffs(entries []m.Entry) error {
	for _, entry := range entries {
		diff, err := bodyDiff(entry)
		if err != nil {
			return fmt.Errorf("diff %s: %w", entry.Member, err)
		}

		if diff == "" {
			continue
		}

		s.printf("%s\n%s\n", entry.Member, diff)
	}

	return nil
}

func summaryLine(report m.Report) string {
	line := fmt.Sprintf("%s -> %s (%s)", report.From, report.To, report.Severity)

	if report.NonPublicChanges > 0 {
		line += fmt.Sprintf(", %d non-public change(s)", report.NonPublicChanges)
	}

	if report.ByteFallback {
		line += ", artifact bytes differ"
	}

	return line
}

func renderEntryTable(entries []m.Entry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Member", "Position"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		table.Append([]string{string(entry.Kind), entry.Member, entry.Position})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
