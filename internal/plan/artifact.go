// Package plan builds the pure, inspectable project plan for one generation
// run: every artifact to materialize, dependency-ordered, with feature gates
// already applied. Nothing in this package touches the disk — execution is
// the writer's job.
package plan

import (
	"io/fs"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

// Gate decides whether an artifact is included for a given feature set.
// A nil gate means always included.
type Gate func(features.Set) bool

// If gates an artifact on a single feature being enabled.
func If(n features.Name) Gate {
	return func(s features.Set) bool { return s.Enabled(n) }
}

// Unless gates an artifact on a single feature being disabled.
func Unless(n features.Name) Gate {
	return func(s features.Set) bool { return !s.Enabled(n) }
}

// AllOf combines gates conjunctively.
func AllOf(gates ...Gate) Gate {
	return func(s features.Set) bool {
		for _, g := range gates {
			if g != nil && !g(s) {
				return false
			}
		}
		return true
	}
}

// AnyOf combines gates disjunctively.
func AnyOf(gates ...Gate) Gate {
	return func(s features.Set) bool {
		for _, g := range gates {
			if g == nil || g(s) {
				return true
			}
		}
		return false
	}
}

// Producer renders an artifact's content against the per-artifact template
// context. Producers run lazily, immediately before the artifact is written.
type Producer func(template.Context) ([]byte, error)

// Static returns a passthrough producer for literal or binary content that
// needs no substitution.
func Static(content []byte) Producer {
	return func(template.Context) ([]byte, error) { return content, nil }
}

// Artifact is one logical output: a relative slash-separated path, a content
// producer, and the feature gate that must hold for it to be included.
// Artifacts carry no mutable state once created.
type Artifact struct {
	Path    string
	Dir     bool
	Mode    fs.FileMode
	Gate    Gate
	Produce Producer
}

// File builds an ungated file artifact with the default mode.
func File(path string, produce Producer) Artifact {
	return Artifact{Path: path, Mode: 0644, Produce: produce}
}

// GatedFile builds a gated file artifact with the default mode.
func GatedFile(path string, gate Gate, produce Producer) Artifact {
	return Artifact{Path: path, Mode: 0644, Gate: gate, Produce: produce}
}

// Directory builds a directory-creation artifact. Directory artifacts are ordered
// before anything beneath them.
func Directory(path string, gate Gate) Artifact {
	return Artifact{Path: path, Dir: true, Mode: 0755, Gate: gate}
}

// included reports whether the artifact's gate admits the feature set.
func (a Artifact) included(s features.Set) bool {
	return a.Gate == nil || a.Gate(s)
}

// BaseContext derives the template context every artifact render starts
// from. Generators extend it with their framework-specific placeholders.
func BaseContext(meta project.Metadata, set features.Set) template.Context {
	ctx := template.Context{
		"PROJECT_NAME":  meta.Name,
		"PROJECT_TITLE": meta.Title,
		"PROJECT_SLUG":  meta.Slug,
		"APP_NAME":      meta.Name,
		"ENV_PREFIX":    meta.EnvPrefix,
		"FRONTEND":      string(meta.Frontend),
	}
	return ctx
}

// Extend overlays extra keys onto a copy of ctx, leaving ctx untouched.
func Extend(ctx template.Context, extra template.Context) template.Context {
	merged := make(template.Context, len(ctx)+len(extra))
	for k, v := range ctx {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
