// Package writer materializes a plan on disk. It is the only component in
// the generation pipeline that touches the filesystem: the plan stays pure,
// the writer owns target-directory checks, rendering, and file creation.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/output"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
)

// ErrTargetNotEmpty is returned when the target directory has existing
// entries and neither force mode nor the interactive prompt allowed the
// write to proceed.
var ErrTargetNotEmpty = errors.New("target directory is not empty")

// WriteError reports a failure tied to one artifact path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Options configures one write pass.
type Options struct {
	// TargetDir is the project root to write into. Empty means a
	// directory named after the project in the working directory.
	TargetDir string
	// DryRun reports what would be written without touching the disk.
	DryRun bool
	// Force allows writing into a non-empty target without prompting.
	Force bool
	// Strategy resolves the conflict when the target is not empty. Nil
	// picks force, interactive, or refuse depending on Force and whether
	// stdin is a terminal.
	Strategy ConflictStrategy
}

// Result reports what a write pass did.
type Result struct {
	// TargetDir is the resolved project root.
	TargetDir string
	// Written counts files created.
	Written int
	// Dirs counts directories created.
	Dirs int
	// DryRun is true when nothing was written by request.
	DryRun bool
}

// Write materializes the plan under the target directory. All file content
// is rendered before the first byte hits the disk, so a template failure
// never leaves a partial tree; only I/O errors mid-write can.
func Write(ctx context.Context, p *plan.Plan, meta project.Metadata, set features.Set, opts Options) (Result, error) {
	target := opts.TargetDir
	if target == "" {
		target = meta.Name
	}

	proceed, err := prepareTarget(target, opts)
	if err != nil {
		return Result{TargetDir: target}, err
	}
	if !proceed {
		return Result{TargetDir: target}, ErrTargetNotEmpty
	}

	base := plan.BaseContext(meta, set)
	contents := make(map[string][]byte, len(p.Artifacts))
	for _, a := range p.Artifacts {
		if a.Dir {
			continue
		}
		data, err := a.Produce(base)
		if err != nil {
			return Result{TargetDir: target}, &WriteError{Path: a.Path, Err: err}
		}
		contents[a.Path] = data
	}

	result := Result{TargetDir: target, DryRun: opts.DryRun}
	for _, a := range p.Artifacts {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if opts.DryRun {
			output.Step("would create " + a.Path)
			continue
		}

		dest := filepath.Join(target, filepath.FromSlash(a.Path))
		if a.Dir {
			if err := os.MkdirAll(dest, a.Mode.Perm()); err != nil {
				return result, &WriteError{Path: a.Path, Err: err}
			}
			result.Dirs++
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return result, &WriteError{Path: a.Path, Err: err}
		}
		if err := os.WriteFile(dest, contents[a.Path], a.Mode.Perm()); err != nil {
			return result, &WriteError{Path: a.Path, Err: err}
		}
		result.Written++
		output.Verbose("created " + a.Path)
	}

	return result, nil
}

// prepareTarget creates the target directory if needed and decides whether
// writing into it may proceed.
func prepareTarget(target string, opts Options) (bool, error) {
	entries, err := os.ReadDir(target)
	if errors.Is(err, fs.ErrNotExist) {
		if opts.DryRun {
			return true, nil
		}
		return true, os.MkdirAll(target, 0755)
	}
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return true, nil
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = defaultStrategy(opts.Force)
	}
	return strategy.Resolve(target, len(entries))
}
