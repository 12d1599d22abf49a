package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"namelint.dev/pkg/namelint/internal/adapter"
	m "namelint.dev/pkg/namelint/internal/model"
)

// ScanArgs contains the arguments for a single scan.
type ScanArgs struct {
	Root       m.Path
	Extensions []string
	Exclude    []string
	Strictness Strictness
	// Parallel is the number of validation workers; values below 2 run
	// sequentially.
	Parallel int
}

// Scanner walks a tree and checks every candidate file.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) (m.Report, error)
}

type scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner creates a Scanner backed by the given filesystem adapter.
func NewScanner(fs adapter.SourceFSAdapter) Scanner {
	return &scanner{fs: fs}
}

// Scan returns the report of one run. The report keeps traversal order
// regardless of Parallel, so repeated scans of an unchanged tree are equal.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) (m.Report, error) {
	validator := NewValidator(args.Strictness)
	report := m.Report{
		Root:       args.Root,
		Strictness: string(validator.rules.Strictness()),
	}

	opts := adapter.WalkOptions{
		Extensions: args.Extensions,
		Exclude:    args.Exclude,
		OnWarning: func(w m.Warning) {
			report.Warnings = append(report.Warnings, w)
		},
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = adapter.DefaultExtensions
	}

	if err := adapter.CheckRoot(s.fs, args.Root); err != nil {
		return m.Report{}, err
	}

	slog.Info("scan started", "root", args.Root, "strictness", report.Strictness, "parallel", args.Parallel)

	var (
		results []m.FileResult
		err     error
	)

	if args.Parallel > 1 {
		results, err = s.scanParallel(ctx, args, opts, validator)
	} else {
		results, err = s.scanSequential(ctx, args, opts, validator)
	}

	if err != nil {
		return m.Report{}, err
	}

	report.Files = results

	for _, result := range results {
		report.Stats.Record(result.Category, !result.OK())

		if result.Violation != nil {
			report.Violations = append(report.Violations, *result.Violation)
		}
	}

	slog.Info("scan complete",
		"root", args.Root,
		"files", report.Stats.TotalFiles,
		"issues", report.Stats.Issues,
		"warnings", len(report.Warnings),
	)

	return report, nil
}

func (s *scanner) scanSequential(ctx context.Context, args ScanArgs, opts adapter.WalkOptions, validator *Validator) ([]m.FileResult, error) {
	var results []m.FileResult

	err := s.fs.Walk(ctx, args.Root, opts, func(file m.CandidateFile) error {
		results = append(results, checkFile(validator, file))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (s *scanner) scanParallel(ctx context.Context, args ScanArgs, opts adapter.WalkOptions, validator *Validator) ([]m.FileResult, error) {
	var candidates []m.CandidateFile

	err := s.fs.Walk(ctx, args.Root, opts, func(file m.CandidateFile) error {
		candidates = append(candidates, file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Each worker owns one slot, so no locking is needed and the output
	// keeps traversal order.
	results := make([]m.FileResult, len(candidates))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(args.Parallel)

	for i, file := range candidates {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = checkFile(validator, file)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("check files: %w", err)
	}

	return results, nil
}

func checkFile(validator *Validator, file m.CandidateFile) m.FileResult {
	category := Classify(file.Name)
	result := m.FileResult{File: file, Category: category}

	if violation := validator.Validate(file.Name, category); violation != nil {
		violation.File = file.RelPath
		result.Violation = violation

		slog.Debug("naming violation", "file", file.RelPath, "category", category, "reason", violation.Reason)
	}

	return result
}
