// Package adapter contains filesystem and storage adapters for the namelint CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "namelint.dev/pkg/namelint/internal/model"
)

// ErrRootNotFound is returned when the scan root does not exist or is not a directory.
var ErrRootNotFound = errors.New("scan root not found")

// DefaultExtensions are the file extensions checked when none are configured.
var DefaultExtensions = []string{".hpp", ".cpp"}

// DefaultExclude names the directories skipped when none are configured:
// build outputs and the test framework's own formatting subtree.
var DefaultExclude = []string{"build", "Debug", "Release", "formatting"}

// SourceFSAdapter abstracts the read-only filesystem access the checker
// needs, so the domain layer can be tested against in-memory doubles.
type SourceFSAdapter interface {
	// Walk visits every candidate file under root. Excluded directories are
	// never descended into.
	Walk(ctx context.Context, root m.Path, opts WalkOptions, fn CandidateFunc) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// CandidateFunc receives each discovered candidate file. Returning an error
// stops the walk.
type CandidateFunc func(file m.CandidateFile) error

// WalkOptions configures a single Walk call.
type WalkOptions struct {
	// Extensions lists the accepted extensions including the leading dot.
	Extensions []string
	// Exclude lists directory names that are skipped wherever they occur.
	Exclude []string
	// OnWarning is called for entries that cannot be read. May be nil.
	OnWarning func(m.Warning)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk traverses root depth-first in lexical order.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, opts WalkOptions, fn CandidateFunc) error {
	if err := CheckRoot(a, root); err != nil {
		return err
	}

	rootStr := string(root)

	extensions := toSet(opts.Extensions)
	excluded := toSet(opts.Exclude)

	return filepath.WalkDir(rootStr, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == rootStr {
				return fmt.Errorf("read root %s: %w", root, err)
			}

			opts.warn(relativeTo(rootStr, path), err)

			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			if path != rootStr && isExcludedDir(d.Name(), excluded) {
				slog.Debug("skipping excluded directory", "path", path)
				return filepath.SkipDir
			}

			return nil
		}

		if !a.isFile(path, d) {
			return nil
		}

		ext := filepath.Ext(d.Name())
		if _, ok := extensions[ext]; !ok {
			return nil
		}

		return fn(m.CandidateFile{
			RelPath: relativeTo(rootStr, path),
			Name:    d.Name(),
			Ext:     ext,
		})
	})
}

// FileInfo returns os.FileInfo metadata for the given path, following
// symlinks.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// isFile reports whether a non-directory entry is a candidate. Symlinks are
// listed like files unless they resolve to a directory, which is never
// followed; dangling links are still listed.
func (a *LocalSourceFSAdapter) isFile(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}

	info, err := a.FileInfo(m.Path(path))
	if err != nil {
		return true
	}

	return !info.IsDir()
}

// CheckRoot verifies through fsys that root exists and is a directory.
func CheckRoot(fsys SourceFSAdapter, root m.Path) error {
	info, err := fsys.FileInfo(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}

		return fmt.Errorf("stat root %s: %w", root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	return nil
}

func (o WalkOptions) warn(path m.Path, err error) {
	slog.Warn("skipping unreadable entry", "path", path, "error", err)

	if o.OnWarning != nil {
		o.OnWarning(m.Warning{Path: path, Message: err.Error()})
	}
}

func isExcludedDir(name string, excluded map[string]struct{}) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}

	_, ok := excluded[name]

	return ok
}

func relativeTo(root, path string) m.Path {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return m.Path(filepath.ToSlash(path))
	}

	return m.Path(filepath.ToSlash(rel))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
