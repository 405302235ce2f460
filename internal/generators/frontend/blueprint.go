package frontend

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

// slot is one logical frontend artifact every variant must deliver, with
// the feature gate that governs its inclusion.
type slot struct {
	ID   string
	Gate plan.Gate
}

// catalog is the shared slot list. Variant blueprints must provide a path
// for every entry; gates are applied uniformly so feature toggles have the
// same effect on every framework.
var catalog = []slot{
	{ID: "entry/html"},
	{ID: "entry/bootstrap"},
	{ID: "app/root"},
	{ID: "layout/main"},
	{ID: "page/home"},
	{ID: "page/about"},
	{ID: "page/dashboard"},
	{ID: "page/login", Gate: plan.If(features.Auth)},
	{ID: "state/app"},
	{ID: "state/auth", Gate: plan.If(features.Auth)},
	{ID: "service/api"},
	{ID: "styles/global"},
	{ID: "ui/button"},
	{ID: "ui/card"},
	{ID: "ui/spinner"},
	{ID: "types/index"},
	{ID: "config/package"},
	{ID: "config/typescript"},
	{ID: "config/build"},
	{ID: "config/build-aux"},
	{ID: "config/ambient-types"},
	{ID: "config/lint", Gate: plan.Unless(features.MinimalTooling)},
	{ID: "config/vitest", Gate: plan.If(features.Testing)},
	{ID: "config/env"},
	{ID: "test/setup", Gate: plan.If(features.Testing)},
	{ID: "test/smoke", Gate: plan.If(features.Testing)},
}

// ActiveSlots lists the catalog slot IDs a feature set admits, in catalog
// order.
func ActiveSlots(set features.Set) []string {
	var ids []string
	for _, s := range catalog {
		if s.Gate == nil || s.Gate(set) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// Profile carries the variant-specific command surface that shows up
// outside frontend/ itself, in the workspace Makefile and README.
type Profile struct {
	DevCommand     string
	BuildCommand   string
	LintExtensions string
}

// Blueprint describes one variant to the shared generator: where each
// catalog slot lives, which embedded templates render it, and the
// framework-specific placeholder values.
type Blueprint struct {
	Variant   project.Variant
	Templates fs.FS
	// Paths maps every catalog slot ID to a path relative to frontend/.
	Paths map[string]string
	// Dirs lists directories to create beyond those implied by files,
	// relative to frontend/.
	Dirs []string
	// Context computes the framework-specific placeholder values layered
	// over the base context at render time.
	Context func(meta project.Metadata, set features.Set) template.Context
	Profile Profile
}

// NewGenerator builds the plan.Generator for a variant blueprint. Each
// generator owns its template engine; slot template names repeat across
// variants, so a shared cache would alias them.
func NewGenerator(bp Blueprint) Generator {
	return &blueprintGenerator{bp: bp, engine: template.NewEngine()}
}

type blueprintGenerator struct {
	bp     Blueprint
	engine *template.Engine
}

func (g *blueprintGenerator) Variant() project.Variant { return g.bp.Variant }

func (g *blueprintGenerator) Profile() Profile { return g.bp.Profile }

func (g *blueprintGenerator) Mapping() map[string]string {
	mapping := make(map[string]string, len(g.bp.Paths))
	for id, rel := range g.bp.Paths {
		mapping[id] = rel
	}
	return mapping
}

func (g *blueprintGenerator) Generate(meta project.Metadata, set features.Set) ([]plan.Artifact, error) {
	extra := template.Context{}
	if g.bp.Context != nil {
		extra = g.bp.Context(meta, set)
	}

	artifacts := []plan.Artifact{plan.Directory("frontend", nil)}
	for _, dir := range g.bp.Dirs {
		artifacts = append(artifacts, plan.Directory(path.Join("frontend", dir), nil))
	}
	for _, s := range catalog {
		rel, ok := g.bp.Paths[s.ID]
		if !ok {
			return nil, fmt.Errorf("frontend %s: catalog slot %q has no path", g.bp.Variant, s.ID)
		}
		artifacts = append(artifacts, plan.Artifact{
			Path:    path.Join("frontend", rel),
			Mode:    0644,
			Gate:    s.Gate,
			Produce: g.produce(templateName(s.ID), extra),
		})
	}
	return artifacts, nil
}

func (g *blueprintGenerator) produce(name string, extra template.Context) plan.Producer {
	return func(base template.Context) ([]byte, error) {
		return g.engine.RenderFS(g.bp.Templates, name, plan.Extend(base, extra))
	}
}

// templateName maps a slot ID to its template file, e.g. "page/home" to
// "templates/page_home.tmpl".
func templateName(id string) string {
	return "templates/" + strings.NewReplacer("/", "_", "-", "_").Replace(id) + ".tmpl"
}

// DependencyBlock renders the body of a package.json dependency object:
// one indented "name": "version" line per entry, sorted, comma-joined.
func DependencyBlock(deps map[string]string) string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("    %q: %q", name, deps[name])
	}
	return strings.Join(lines, ",\n")
}

// Script is one package.json script entry. Order is preserved as given.
type Script struct {
	Name    string
	Command string
}

// ScriptBlock renders the body of a package.json scripts object.
func ScriptBlock(scripts []Script) string {
	lines := make([]string, len(scripts))
	for i, s := range scripts {
		lines[i] = fmt.Sprintf("    %q: %q", s.Name, s.Command)
	}
	return strings.Join(lines, ",\n")
}
