package controller

import (
	"context"

	"github.com/spf13/cobra"

	m "namelint.dev/pkg/namelint/internal/model"
)

// SimpleUI implements UI by writing plain text to the command's output.
type SimpleUI struct {
	cmd *cobra.Command
	r   renderer
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd: cmd,
		r:   renderer{out: cmd.OutOrStdout(), style: plainPalette(), format: FormatText},
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	s.r.out = s.cmd.OutOrStdout()
	s.r.format = cfg.format

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayScanStart prints the scan banner.
func (s *SimpleUI) DisplayScanStart(ctx context.Context, root m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.r.scanStart(root)
}

// DisplayFileResults prints one line per checked file.
func (s *SimpleUI) DisplayFileResults(ctx context.Context, results []m.FileResult) {
	if ctx.Err() != nil {
		return
	}

	s.r.fileResults(results)
}

// DisplayWarnings prints skipped entries.
func (s *SimpleUI) DisplayWarnings(ctx context.Context, warnings []m.Warning) {
	if ctx.Err() != nil {
		return
	}

	s.r.warnings(warnings)
}

// DisplayViolations prints the itemized violation report.
func (s *SimpleUI) DisplayViolations(ctx context.Context, groups []m.ViolationGroup) {
	if ctx.Err() != nil {
		return
	}

	s.r.violations(groups)
}

// DisplaySuggestions prints advisory renames and an optional diff.
func (s *SimpleUI) DisplaySuggestions(ctx context.Context, suggestions []m.Suggestion, diff string) {
	if ctx.Err() != nil {
		return
	}

	s.r.suggestions(suggestions, diff)
}

// DisplayStatistics prints the run counters and compliance rate.
func (s *SimpleUI) DisplayStatistics(ctx context.Context, stats m.RunStatistics) {
	if ctx.Err() != nil {
		return
	}

	s.r.statistics(stats)
}

// DisplayFileTable prints every candidate with its category and status.
func (s *SimpleUI) DisplayFileTable(ctx context.Context, results []m.FileResult) {
	if ctx.Err() != nil {
		return
	}

	s.r.fileTable(results)
}

// DisplayRules prints the active naming rules.
func (s *SimpleUI) DisplayRules(ctx context.Context, strictness string, rules []m.NamingRule) {
	if ctx.Err() != nil {
		return
	}

	s.r.rules(strictness, rules)
}
