// Package infra generates infrastructure files: docker compose stacks and
// Dockerfiles, the CI workflow, and VS Code editor configuration. Everything
// here is feature-gated; with docker, ci, and vscode disabled the generator
// contributes nothing to the plan.
package infra

import (
	"embed"
	"fmt"
	"strings"

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

// New builds the infrastructure generator.
func New() *Generator {
	return &Generator{engine: template.NewEngine()}
}

func (g *Generator) Generate(meta project.Metadata, set features.Set) ([]plan.Artifact, error) {
	extra := renderContext(meta, set)

	tmpl := func(name string) plan.Producer {
		return func(base template.Context) ([]byte, error) {
			return g.engine.RenderFS(templates, "templates/"+name+".tmpl", plan.Extend(base, extra))
		}
	}

	docker := plan.If(features.Docker)
	ci := plan.If(features.CI)
	vscode := plan.If(features.VSCode)

	return []plan.Artifact{
		plan.Directory("infrastructure/docker", docker),
		plan.GatedFile("infrastructure/docker/docker-compose.dev.yml", docker, tmpl("compose_dev")),
		plan.GatedFile("infrastructure/docker/docker-compose.yml", docker, tmpl("compose_prod")),
		plan.GatedFile("backend/Dockerfile.dev", docker, tmpl("dockerfile_backend")),
		plan.GatedFile("frontend/Dockerfile.dev", docker, tmpl("dockerfile_frontend")),

		plan.GatedFile(".github/workflows/ci.yml", ci, tmpl("ci")),

		plan.GatedFile(".vscode/settings.json", vscode, tmpl("vscode_settings")),
		plan.GatedFile(".vscode/launch.json", vscode, tmpl("vscode_launch")),
		plan.GatedFile(".vscode/tasks.json", vscode, tmpl("vscode_tasks")),
		plan.GatedFile(meta.Slug+".code-workspace", vscode, tmpl("workspace_file")),
	}, nil
}

func renderContext(meta project.Metadata, set features.Set) template.Context {
	var depends []string
	var devExtra strings.Builder
	if set.Enabled(features.Database) {
		depends = append(depends, "postgres")
		fmt.Fprintf(&devExtra, `  postgres:
    image: postgres:16-alpine
    environment:
      POSTGRES_USER: postgres
      POSTGRES_PASSWORD: postgres
      POSTGRES_DB: %s
    ports:
      - "5432:5432"
    volumes:
      - postgres_data:/var/lib/postgresql/data
`, meta.Name)
	}
	if set.Enabled(features.Cache) {
		devExtra.WriteString(`  redis:
    image: redis:7-alpine
    ports:
      - "6379:6379"
`)
		depends = append(depends, "redis")
	}
	if set.Enabled(features.Celery) {
		devExtra.WriteString(`  worker:
    build:
      context: ../../backend
      dockerfile: Dockerfile.dev
    command: uv run celery -A ` + meta.Name + `.worker worker --loglevel=info
    env_file:
      - ../../backend/.env.example
    depends_on:
      - redis
`)
	}

	backendDepends := ""
	if len(depends) > 0 {
		backendDepends = "    depends_on:\n"
		for _, service := range depends {
			backendDepends += "      - " + service + "\n"
		}
	}

	volumes := ""
	if set.Enabled(features.Database) {
		volumes = "\nvolumes:\n  postgres_data:\n"
	}

	var ciBackend strings.Builder
	if !set.Enabled(features.MinimalTooling) {
		ciBackend.WriteString("      - run: uv run ruff check .\n")
		ciBackend.WriteString("      - run: uv run mypy\n")
	}
	if set.Enabled(features.Testing) {
		ciBackend.WriteString("      - run: uv run pytest\n")
	}

	var ciFrontend strings.Builder
	if !set.Enabled(features.MinimalTooling) {
		ciFrontend.WriteString("      - run: npm run lint\n")
	}
	if set.Enabled(features.Testing) {
		ciFrontend.WriteString("      - run: npm run test:run\n")
	}

	return template.Context{
		"COMPOSE_BACKEND_DEPENDS": backendDepends,
		"COMPOSE_DEV_EXTRA":       devExtra.String(),
		"COMPOSE_DEV_VOLUMES":     volumes,
		"CI_BACKEND_EXTRA_STEPS":  ciBackend.String(),
		"CI_FRONTEND_EXTRA_STEPS": ciFrontend.String(),
	}
}
