// Package orchestrator drives a complete generation run: resolve the
// feature set and project metadata, assemble the generators, build the
// plan, write it to disk, and optionally initialize a git repository.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/pbohannon/bowerbird/internal/execx"
	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/generators/backend"
	"github.com/pbohannon/bowerbird/internal/generators/frontend"
	"github.com/pbohannon/bowerbird/internal/generators/infra"
	"github.com/pbohannon/bowerbird/internal/generators/sharedcode"
	"github.com/pbohannon/bowerbird/internal/generators/workspace"
	"github.com/pbohannon/bowerbird/internal/output"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/writer"

	// Register the frontend variants.
	_ "github.com/pbohannon/bowerbird/internal/generators/frontend/react"
	_ "github.com/pbohannon/bowerbird/internal/generators/frontend/svelte"
	_ "github.com/pbohannon/bowerbird/internal/generators/frontend/vue"
)

// Phase names the stage a run is in, for progress reporting and for
// pinpointing where a failed run stopped.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhasePlanning    Phase = "planning"
	PhaseWriting     Phase = "writing"
	PhaseDone        Phase = "done"
)

// Request describes one generation run.
type Request struct {
	// Name is the raw project name; it is normalized by project.NewMetadata.
	Name string
	// Frontend selects the frontend variant.
	Frontend project.Variant
	// Toggles are the raw feature toggles, typically merged from config
	// file defaults and command-line flags.
	Toggles features.Toggles
	// TargetDir overrides the output directory (default: ./<name>).
	TargetDir string
	DryRun    bool
	Force     bool
	// InitGit initializes a git repository with an initial commit after a
	// successful write.
	InitGit bool
}

// Result reports a run's outcome. Phase is the last phase reached; on error
// it names the phase that failed.
type Result struct {
	Phase Phase
	Meta  project.Metadata
	Set   features.Set
	Plan  *plan.Plan
	Write writer.Result
}

// Run executes the full pipeline for one request.
func Run(ctx context.Context, req Request) (Result, error) {
	result := Result{Phase: PhaseConfiguring}

	set, err := features.Resolve(req.Toggles)
	if err != nil {
		return result, err
	}
	result.Set = set

	meta, err := project.NewMetadata(req.Name, req.Frontend)
	if err != nil {
		return result, err
	}
	result.Meta = meta

	result.Phase = PhasePlanning
	p, err := buildPlan(meta, set)
	if err != nil {
		return result, err
	}
	result.Plan = p

	result.Phase = PhaseWriting
	wr, err := writer.Write(ctx, p, meta, set, writer.Options{
		TargetDir: req.TargetDir,
		DryRun:    req.DryRun,
		Force:     req.Force,
	})
	result.Write = wr
	if err != nil {
		return result, err
	}

	// A git failure never invalidates the generated tree.
	if req.InitGit && !req.DryRun {
		if err := execx.New(wr.TargetDir).InitRepo(ctx); err != nil {
			output.Warn(fmt.Sprintf("git init failed, continuing without a repository: %v", err))
		}
	}

	result.Phase = PhaseDone
	return result, nil
}

// buildPlan assembles the generator list for the run and builds the plan.
func buildPlan(meta project.Metadata, set features.Set) (*plan.Plan, error) {
	frontendGen, err := frontend.ForVariant(meta.Frontend)
	if err != nil {
		return nil, err
	}

	planner := plan.New(
		workspace.New(frontendGen.Profile()),
		backend.New(),
		frontendGen,
		sharedcode.New(),
		infra.New(),
	)
	return planner.Build(meta, set)
}

// Preview builds the plan for a request without writing anything. It backs
// dry-run inspection and tests that assert on plan contents.
func Preview(req Request) (Result, error) {
	result := Result{Phase: PhaseConfiguring}

	set, err := features.Resolve(req.Toggles)
	if err != nil {
		return result, err
	}
	result.Set = set

	meta, err := project.NewMetadata(req.Name, req.Frontend)
	if err != nil {
		return result, err
	}
	result.Meta = meta

	result.Phase = PhasePlanning
	p, err := buildPlan(meta, set)
	if err != nil {
		return result, err
	}
	result.Plan = p
	result.Phase = PhaseDone
	return result, nil
}
