package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "namelint.dev/pkg/namelint/internal/model"
)

// pagerChrome is the number of lines used by the pager header and footer.
const pagerChrome = 2

// TUI implements UI for terminals: output is styled with lipgloss and, when
// started WithPager, shown in a scrollable Bubble Tea viewport.
type TUI struct {
	output  io.Writer
	buffer  strings.Builder
	r       renderer
	pager   bool
	flushed bool
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.r = renderer{out: &t.buffer, style: colorPalette(), format: FormatText}

	return t
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	t.r.format = cfg.format
	t.pager = cfg.pager
	t.buffer.Reset()
	t.flushed = false

	return nil
}

// Close flushes any output that was not shown yet.
func (t *TUI) Close(_ context.Context) {
	t.flush()
}

// Wait shows the buffered report. With a pager it blocks until the user
// quits; otherwise the report is printed directly.
func (t *TUI) Wait(ctx context.Context) {
	if !t.pager {
		t.flush()
		return
	}

	program := tea.NewProgram(
		newPagerModel("namelint report", t.buffer.String()),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		slog.Error("pager failed", "error", err)
		t.flush()

		return
	}

	t.flushed = true
}

func (t *TUI) flush() {
	if t.flushed {
		return
	}

	_, _ = io.WriteString(t.output, t.buffer.String())
	t.flushed = true
}

// DisplayScanStart buffers the scan banner.
func (t *TUI) DisplayScanStart(_ context.Context, root m.Path) {
	t.r.scanStart(root)
}

// DisplayFileResults buffers one line per checked file.
func (t *TUI) DisplayFileResults(_ context.Context, results []m.FileResult) {
	t.r.fileResults(results)
}

// DisplayWarnings buffers skipped entries.
func (t *TUI) DisplayWarnings(_ context.Context, warnings []m.Warning) {
	t.r.warnings(warnings)
}

// DisplayViolations buffers the itemized violation report.
func (t *TUI) DisplayViolations(_ context.Context, groups []m.ViolationGroup) {
	t.r.violations(groups)
}

// DisplaySuggestions buffers advisory renames.
func (t *TUI) DisplaySuggestions(_ context.Context, suggestions []m.Suggestion, diff string) {
	t.r.suggestions(suggestions, diff)
}

// DisplayStatistics buffers the run counters.
func (t *TUI) DisplayStatistics(_ context.Context, stats m.RunStatistics) {
	t.r.statistics(stats)
}

// DisplayFileTable buffers the per-file table.
func (t *TUI) DisplayFileTable(_ context.Context, results []m.FileResult) {
	t.r.fileTable(results)
}

// DisplayRules buffers the rule table.
func (t *TUI) DisplayRules(_ context.Context, strictness string, rules []m.NamingRule) {
	t.r.rules(strictness, rules)
}

var (
	pagerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pagerFooterStyle = lipgloss.NewStyle().Faint(true)
)

// pagerModel is the Bubble Tea model for scrolling through a report.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)

		if !p.ready {
			p.viewport = viewport.New(msg.Width, height)
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	if !p.ready {
		return "loading report..."
	}

	footer := fmt.Sprintf("%3.f%% • ↑/↓ scroll • q quit", p.viewport.ScrollPercent()*100)

	return pagerTitleStyle.Render(p.title) + "\n" + p.viewport.View() + "\n" + pagerFooterStyle.Render(footer)
}
