// Package workspace generates the monorepo root: the Makefile assembled
// from feature-gated fragments, the npm workspace manifest, the README,
// .gitignore, and the generation record every bowerbird tree carries.
package workspace

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pbohannon/bowerbird"
	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/generators/frontend"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

type Generator struct {
	engine  *template.Engine
	profile frontend.Profile
}

// New builds the workspace generator. The frontend profile supplies the
// variant-specific commands surfaced in the Makefile and README.
func New(profile frontend.Profile) *Generator {
	return &Generator{engine: template.NewEngine(), profile: profile}
}

func (g *Generator) Generate(meta project.Metadata, set features.Set) ([]plan.Artifact, error) {
	values := make(map[string]bool, len(features.All))
	for name, enabled := range set.Map() {
		values[string(name)] = enabled
	}
	manifest, err := project.NewManifest(meta, values, bowerbird.Version).Encode()
	if err != nil {
		return nil, err
	}

	extra := g.renderContext(meta, set)
	tmpl := func(name string) plan.Producer {
		return func(base template.Context) ([]byte, error) {
			return g.engine.RenderFS(templates, "templates/"+name+".tmpl", plan.Extend(base, extra))
		}
	}

	return []plan.Artifact{
		plan.File("Makefile", g.makefile(set, extra)),
		plan.File("package.json", tmpl("package")),
		plan.File("README.md", tmpl("readme")),
		plan.File(".gitignore", tmpl("gitignore")),
		plan.File(project.ManifestFile, plan.Static(manifest)),
	}, nil
}

// makefile concatenates the fragment templates the feature set calls for.
// Fragment order is fixed so regenerating with the same features is
// byte-stable.
func (g *Generator) makefile(set features.Set, extra template.Context) plan.Producer {
	names := []string{"makefile_core"}
	if set.Enabled(features.Database) {
		names = append(names, "makefile_database")
	}
	if set.Enabled(features.Testing) {
		names = append(names, "makefile_testing")
	}
	if !set.Enabled(features.MinimalTooling) {
		names = append(names, "makefile_lint")
	}
	if set.Enabled(features.TypeGeneration) {
		names = append(names, "makefile_types")
	}
	if set.Enabled(features.Docker) {
		names = append(names, "makefile_docker")
	}

	return func(base template.Context) ([]byte, error) {
		ctx := plan.Extend(base, extra)
		var buf bytes.Buffer
		for i, name := range names {
			content, err := g.engine.RenderFS(templates, "templates/"+name+".tmpl", ctx)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				buf.WriteByte('\n')
			}
			buf.Write(content)
		}
		return buf.Bytes(), nil
	}
}

func (g *Generator) renderContext(meta project.Metadata, set features.Set) template.Context {
	enabled := set.EnabledNames()
	names := make([]string, 0, len(enabled))
	for _, n := range enabled {
		names = append(names, string(n))
	}
	sort.Strings(names)

	var featureList strings.Builder
	for _, n := range names {
		fmt.Fprintf(&featureList, "- %s\n", strings.ReplaceAll(n, "_", " "))
	}

	// With docker the dev stack runs through compose; without it the two
	// dev servers run side by side.
	devAll := "$(MAKE) -j2 dev-backend dev-frontend"
	if set.Enabled(features.Docker) {
		devAll = "docker compose -f infrastructure/docker/docker-compose.dev.yml up"
	}

	return template.Context{
		"DEV_ALL_COMMAND": devAll,
		"DEV_COMMAND":     g.profile.DevCommand,
		"BUILD_COMMAND":   g.profile.BuildCommand,
		"LINT_EXTENSIONS": g.profile.LintExtensions,
		"FEATURE_LIST":    featureList.String(),
	}
}
