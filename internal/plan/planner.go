package plan

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/project"
)

// Generator is the contract every tree generator exposes to the planner:
// backend, frontend variants, shared code, infrastructure, and workspace
// generators all implement it.
type Generator interface {
	Generate(meta project.Metadata, set features.Set) ([]Artifact, error)
}

// Planner aggregates artifacts from a fixed list of generators into one
// dependency-ordered plan.
type Planner struct {
	generators []Generator
}

// New creates a planner over the given generators. Order does not matter;
// the plan's ordering is derived from artifact paths alone.
func New(generators ...Generator) *Planner {
	return &Planner{generators: generators}
}

// Build collects, gates, orders, and collision-checks all artifacts for the
// run. The resulting plan is pure: building it touches no disk, so it can be
// inspected or diffed before anything is written.
func (p *Planner) Build(meta project.Metadata, set features.Set) (*Plan, error) {
	var artifacts []Artifact
	for _, g := range p.generators {
		generated, err := g.Generate(meta, set)
		if err != nil {
			return nil, fmt.Errorf("collecting artifacts: %w", err)
		}
		artifacts = append(artifacts, generated...)
	}

	patterns := exclusionPatterns(set)
	excluded := func(path string) bool {
		for _, pattern := range patterns {
			if ok, _ := doublestar.Match(pattern, path); ok {
				return true
			}
		}
		return false
	}

	return assemble(artifacts, set, excluded)
}

// exclusionPatterns derives path globs that must not appear in the output
// for the given feature set. Gates on individual artifacts are the primary
// mechanism; these patterns are the planner's final sweep so a mis-gated
// artifact from any generator still cannot reach the disk.
func exclusionPatterns(set features.Set) []string {
	var patterns []string

	if !set.Enabled(features.Docker) {
		patterns = append(patterns,
			"**/Dockerfile*",
			"**/docker-compose*",
			"infrastructure/docker/**",
		)
	}
	if !set.Enabled(features.Testing) {
		patterns = append(patterns,
			"backend/tests/**",
			"**/*.test.*",
			"**/*.spec.*",
		)
	}
	if !set.Enabled(features.CI) {
		patterns = append(patterns, ".github/**")
	}
	if !set.Enabled(features.VSCode) {
		patterns = append(patterns, ".vscode/**")
	}

	return patterns
}
