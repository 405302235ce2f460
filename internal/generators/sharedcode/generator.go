// Package sharedcode generates the shared/ tree: constants and TypeScript
// types used by both the frontend and tooling. When type generation is
// enabled it also seeds the generated definitions file the backend script
// overwrites.
package sharedcode

import (
	"embed"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

type Generator struct {
	engine *template.Engine
}

// New builds the shared code generator.
func New() *Generator {
	return &Generator{engine: template.NewEngine()}
}

func (g *Generator) Generate(meta project.Metadata, set features.Set) ([]plan.Artifact, error) {
	exports := ""
	if set.Enabled(features.TypeGeneration) {
		exports = "export * from './generated'\n"
	}
	extra := template.Context{"SHARED_TYPE_EXPORTS": exports}

	tmpl := func(name string) plan.Producer {
		return func(base template.Context) ([]byte, error) {
			return g.engine.RenderFS(templates, "templates/"+name+".tmpl", plan.Extend(base, extra))
		}
	}

	return []plan.Artifact{
		plan.Directory("shared", nil),
		plan.File("shared/package.json", tmpl("package")),
		plan.File("shared/constants/index.ts", tmpl("constants")),
		plan.File("shared/types/index.ts", tmpl("types_index")),
		plan.GatedFile("shared/types/generated.d.ts", plan.If(features.TypeGeneration), tmpl("types_generated")),
	}, nil
}
