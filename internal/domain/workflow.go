package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"namelint.dev/pkg/namelint/internal/adapter"
	"namelint.dev/pkg/namelint/internal/controller"
	m "namelint.dev/pkg/namelint/internal/model"
)

// ErrViolationsFound is returned by Check when at least one file violates
// the naming rules. It is an expected outcome, not a fault.
var ErrViolationsFound = errors.New("naming violations found")

// CheckArgs contains the arguments for a check run.
type CheckArgs struct {
	ScanArgs
	Verbose      bool
	StatsOnly    bool
	SuggestFixes bool
	ShowDiff     bool
	Interactive  bool
	Format       controller.Format
	// ReportPath, when set, receives the report as YAML.
	ReportPath m.Path
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report       m.Path
	Format       controller.Format
	SuggestFixes bool
}

// Workflow defines the commands the CLI exposes.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ScanArgs) error
	Rules(ctx context.Context, strictness Strictness) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Scanner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		Scanner:     NewScanner(fsAdapter),
	}
}

// Check scans the tree and reports violations. A missing root aborts before
// anything is displayed.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	report, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		slog.Error("scan failed", "root", args.Root, "error", err)
		return fmt.Errorf("scan: %w", err)
	}

	options := []controller.StartOption{controller.WithFormat(args.Format)}
	if args.Interactive {
		options = append(options, controller.WithPager())
	}

	if err := w.Start(ctx, options...); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayScanStart(ctx, report.Root)

	if args.Verbose {
		w.DisplayFileResults(ctx, report.Files)
	}

	w.DisplayWarnings(ctx, report.Warnings)

	if !args.StatsOnly {
		w.DisplayViolations(ctx, GroupByCategory(report.Violations))
	}

	if args.SuggestFixes && len(report.Violations) > 0 {
		if err := w.displaySuggestions(ctx, report, args.ShowDiff); err != nil {
			return err
		}
	}

	w.DisplayStatistics(ctx, report.Stats)
	w.Wait(ctx)

	if args.ReportPath != "" {
		if err := w.SaveReport(args.ReportPath, report); err != nil {
			slog.Error("failed to save report", "path", args.ReportPath, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	if n := len(report.Violations); n > 0 {
		return fmt.Errorf("%w: %d file(s)", ErrViolationsFound, n)
	}

	return nil
}

func (w *workflow) displaySuggestions(ctx context.Context, report m.Report, showDiff bool) error {
	strictness, err := ParseStrictness(report.Strictness)
	if err != nil {
		return err
	}

	suggestions := NewValidator(strictness).SuggestAll(report.Violations)

	var diff string
	if showDiff {
		diff, err = RenamePlanDiff(suggestions)
		if err != nil {
			return fmt.Errorf("render rename plan: %w", err)
		}
	}

	w.DisplaySuggestions(ctx, suggestions, diff)

	return nil
}

// List shows every candidate file with its category and status.
func (w *workflow) List(ctx context.Context, args ScanArgs) error {
	report, err := w.Scan(ctx, args)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	if err := w.Start(ctx, controller.WithFormat(controller.FormatTable)); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayWarnings(ctx, report.Warnings)
	w.DisplayFileTable(ctx, report.Files)
	w.Wait(ctx)

	return nil
}

// Rules shows the naming rules for strictness.
func (w *workflow) Rules(ctx context.Context, strictness Strictness) error {
	rules := RulesFor(strictness)

	if err := w.Start(ctx); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayRules(ctx, string(rules.Strictness()), rules.Describe())
	w.Wait(ctx)

	return nil
}

// View displays a report saved by Check.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(args.Report)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithFormat(args.Format)); err != nil {
		return err
	}

	defer w.Close(ctx)

	w.DisplayScanStart(ctx, report.Root)
	w.DisplayWarnings(ctx, report.Warnings)
	w.DisplayViolations(ctx, GroupByCategory(report.Violations))

	if args.SuggestFixes && len(report.Violations) > 0 {
		if err := w.displaySuggestions(ctx, report, false); err != nil {
			return err
		}
	}

	w.DisplayStatistics(ctx, report.Stats)
	w.Wait(ctx)

	return nil
}
