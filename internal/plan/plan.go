package plan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pbohannon/bowerbird/internal/features"
)

// PlanError reports an ambiguous plan: two artifacts claiming the same
// output path.
type PlanError struct {
	Path   string
	Reason string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("ambiguous plan at %s: %s", e.Path, e.Reason)
}

// Plan is the ordered, complete set of artifacts to materialize for one run.
// Built once by the planner, consumed exactly once by the writer.
type Plan struct {
	// Artifacts are the included artifacts in write order: a directory
	// always precedes anything beneath it, and unconstrained artifacts
	// keep lexical order for reproducible output.
	Artifacts []Artifact
	// Skipped counts artifacts gated off by the feature set or removed by
	// a feature-derived exclusion pattern.
	Skipped int
}

// Paths lists the included artifact paths in write order.
func (p *Plan) Paths() []string {
	paths := make([]string, len(p.Artifacts))
	for i, a := range p.Artifacts {
		paths[i] = a.Path
	}
	return paths
}

// FilePaths lists only the non-directory artifact paths, unordered callers
// should sort.
func (p *Plan) FilePaths() []string {
	var paths []string
	for _, a := range p.Artifacts {
		if !a.Dir {
			paths = append(paths, a.Path)
		}
	}
	return paths
}

// assemble gate-filters, deduplicates, orders, and collision-checks raw
// artifacts into a Plan.
func assemble(artifacts []Artifact, set features.Set, excluded func(path string) bool) (*Plan, error) {
	var included []Artifact
	skipped := 0
	for _, a := range artifacts {
		switch {
		case !a.included(set):
			skipped++
		case excluded != nil && excluded(a.Path):
			skipped++
		default:
			included = append(included, a)
		}
	}

	// Lexical order on slash paths puts every directory before its
	// contents; directory markers sort ahead of a same-path file so the
	// collision check below sees them first.
	sort.SliceStable(included, func(i, j int) bool {
		if included[i].Path != included[j].Path {
			return included[i].Path < included[j].Path
		}
		return included[i].Dir && !included[j].Dir
	})

	var ordered []Artifact
	for _, a := range included {
		if n := len(ordered); n > 0 && ordered[n-1].Path == a.Path {
			prev := ordered[n-1]
			if prev.Dir && a.Dir {
				// Two generators may both require the same directory.
				continue
			}
			if prev.Dir != a.Dir {
				return nil, &PlanError{Path: a.Path, Reason: "claimed as both a directory and a file"}
			}
			return nil, &PlanError{Path: a.Path, Reason: "two artifacts with different content producers"}
		}
		ordered = append(ordered, a)
	}

	// A file must never sort ahead of a directory that contains it; with
	// clean slash paths lexical order guarantees this, so a violation here
	// means a generator emitted a malformed path.
	for _, a := range ordered {
		if strings.HasPrefix(a.Path, "/") || strings.Contains(a.Path, "..") {
			return nil, &PlanError{Path: a.Path, Reason: "path escapes the project root"}
		}
	}

	return &Plan{Artifacts: ordered, Skipped: skipped}, nil
}
