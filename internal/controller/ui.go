// Package controller provides output adapters for displaying naming reports.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "namelint.dev/pkg/namelint/internal/model"
)

// Format selects how itemized violations and statistics are rendered.
type Format string

// Available output formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
)

// ErrInvalidFormat is returned by ParseFormat for unknown values.
var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat converts a flag or config value into a Format. An empty value
// selects FormatText.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatText, "":
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	}

	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidFormat, value, FormatText, FormatTable)
}

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	format Format
	pager  bool
}

// WithFormat selects the output format.
func WithFormat(format Format) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

// WithPager asks interactive UIs to page the report instead of printing it.
// Non-interactive UIs ignore it.
func WithPager() StartOption {
	return func(c *StartConfig) {
		c.pager = true
	}
}

// Format returns the selected output format.
func (c StartConfig) Format() Format {
	return c.format
}

// Pager reports whether paging was requested.
func (c StartConfig) Pager() bool {
	return c.pager
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{format: FormatText}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how naming reports are displayed.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes the pager)
	DisplayScanStart(ctx context.Context, root m.Path)
	DisplayFileResults(ctx context.Context, results []m.FileResult)
	DisplayWarnings(ctx context.Context, warnings []m.Warning)
	DisplayViolations(ctx context.Context, groups []m.ViolationGroup)
	DisplaySuggestions(ctx context.Context, suggestions []m.Suggestion, diff string)
	DisplayStatistics(ctx context.Context, stats m.RunStatistics)
	DisplayFileTable(ctx context.Context, results []m.FileResult)
	DisplayRules(ctx context.Context, strictness string, rules []m.NamingRule)
}

// NewUI returns a styled TUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
