package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "synver.dev/pkg/synver/internal/model"
)

// Reserved pager lines: one footer line plus a blank separator.
const pagerChrome = 2

var (
	versionStyle = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
	memberStyle  = lipgloss.NewStyle().PaddingLeft(2)
	footerStyle  = lipgloss.NewStyle().Faint(true)

	sectionStyles = map[string]lipgloss.Style{
		"changed": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		"deleted": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		"added":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
)

// TUI implements UI with styled output, paged through Bubble Tea when the
// report does not fit on screen.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
}

// DisplayReport renders the report, paging it when it is taller than the
// terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newDisplayConfig(options)
	if config.plain {
		return t.simple.DisplayReport(ctx, report, options...)
	}

	content, err := renderStyledReport(report, config)
	if err != nil {
		return err
	}

	output := t.cmd.OutOrStdout()

	width, height := terminalSize(output)
	if height == 0 || lineCount(content) <= height-pagerChrome {
		_, err := fmt.Fprint(output, content)
		return err
	}

	program := tea.NewProgram(
		newReportPager(content, width, height),
		tea.WithOutput(output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	// Keep the bumped version visible after the alternate screen closes.
	_, err = fmt.Fprintln(output, report.To)

	return err
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func lineCount(s string) int {
	return strings.Count(s, "\n")
}

func renderStyledReport(report m.Report, config DisplayConfig) (string, error) {
	var b strings.Builder

	b.WriteString(versionStyle.Render(report.To.String()))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(summaryLine(report)))
	b.WriteString("\n\n")

	for _, sec := range sections(report) {
		b.WriteString(sectionStyles[sec.title].Render(fmt.Sprintf("[%s] %d", sec.title, len(sec.entries))))
		b.WriteString("\n")

		if len(sec.entries) == 0 {
			b.WriteString(memberStyle.Render(noEntriesLabel))
			b.WriteString("\n\n")

			continue
		}

		for _, entry := range sec.entries {
			fmt.Fprintf(&b, "%s\n", memberStyle.Render(fmt.Sprintf("%-8s %s  %s", entry.Kind, entry.Member, entry.Position)))

			if !config.diff || sec.title != "changed" {
				continue
			}

			diff, err := bodyDiff(entry)
			if err != nil {
				return "", fmt.Errorf("diff %s: %w", entry.Member, err)
			}

			b.WriteString(diff)
		}

		b.WriteString("\n")
	}

	return b.String(), nil
}

// reportPager is the Bubble Tea model for scrolling through a long report.
type reportPager struct {
	viewport viewport.Model
	quitting bool
}

func newReportPager(content string, width, height int) reportPager {
	vp := viewport.New(width, pagerHeight(height))
	vp.SetContent(content)

	return reportPager{viewport: vp}
}

func pagerHeight(height int) int {
	if height-pagerChrome < 1 {
		return 1
	}

	return height - pagerChrome
}

func (p reportPager) Init() tea.Cmd {
	return nil
}

func (p reportPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = pagerHeight(msg.Height)

		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			p.quitting = true
			return p, tea.Quit

		case "g", "home":
			p.viewport.GotoTop()
			return p, nil

		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p reportPager) View() string {
	if p.quitting {
		return ""
	}

	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • g/G top/bottom • q quit", p.viewport.ScrollPercent()*100))

	return p.viewport.View() + "\n\n" + footer
}
