package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
)

func buildPlan(t *testing.T, toggles features.Toggles) (*plan.Plan, project.Metadata, features.Set) {
	t.Helper()

	set, err := features.Resolve(toggles)
	require.NoError(t, err)

	meta, err := project.NewMetadata("demo", project.React)
	require.NoError(t, err)

	p, err := plan.New(New()).Build(meta, set)
	require.NoError(t, err)
	return p, meta, set
}

func render(t *testing.T, p *plan.Plan, meta project.Metadata, set features.Set, path string) string {
	t.Helper()

	base := plan.BaseContext(meta, set)
	for _, a := range p.Artifacts {
		if a.Path != path {
			continue
		}
		content, err := a.Produce(base)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatalf("artifact %s not in plan", path)
	return ""
}

func TestGenerateFullFeatureSet(t *testing.T) {
	p, _, _ := buildPlan(t, features.Toggles{})

	paths := p.Paths()
	assert.Contains(t, paths, "backend/pyproject.toml")
	assert.Contains(t, paths, "backend/src/demo/main.py")
	assert.Contains(t, paths, "backend/src/demo/api/v1/endpoints/health.py")
	assert.Contains(t, paths, "backend/src/demo/api/v1/endpoints/auth.py")
	assert.Contains(t, paths, "backend/src/demo/db/session.py")
	assert.Contains(t, paths, "backend/src/demo/core/cache.py")
	assert.Contains(t, paths, "backend/src/demo/worker.py")
	assert.Contains(t, paths, "backend/alembic/env.py")
	assert.Contains(t, paths, "backend/alembic/versions")
	assert.Contains(t, paths, "backend/tests/test_health.py")

	// type_generation is on by default
	assert.Contains(t, paths, "backend/scripts/generate_types.py")
}

func TestGenerateBareFeatureSet(t *testing.T) {
	p, _, _ := buildPlan(t, features.Toggles{
		features.Database:       false,
		features.Cache:          false,
		features.Celery:         false,
		features.Docker:         false,
		features.CI:             false,
		features.Testing:        false,
		features.VSCode:         false,
		features.TypeGeneration: false,
		features.Auth:           false,
	})

	paths := p.Paths()
	assert.Contains(t, paths, "backend/src/demo/main.py")
	assert.Contains(t, paths, "backend/src/demo/api/v1/endpoints/health.py")

	for _, absent := range []string{
		"backend/src/demo/db/session.py",
		"backend/src/demo/core/cache.py",
		"backend/src/demo/core/security.py",
		"backend/src/demo/worker.py",
		"backend/src/demo/api/v1/endpoints/auth.py",
		"backend/alembic.ini",
		"backend/alembic/versions",
		"backend/scripts/generate_types.py",
		"backend/tests/conftest.py",
	} {
		assert.NotContains(t, paths, absent)
	}
}

func TestPyprojectDependenciesFollowFeatures(t *testing.T) {
	p, meta, set := buildPlan(t, features.Toggles{})
	pyproject := render(t, p, meta, set, "backend/pyproject.toml")

	assert.Contains(t, pyproject, `"fastapi>=`)
	assert.Contains(t, pyproject, `"sqlalchemy[asyncio]>=`)
	assert.Contains(t, pyproject, `"redis>=`)
	assert.Contains(t, pyproject, `"celery>=`)
	assert.Contains(t, pyproject, `"pyjwt>=`)
	assert.Contains(t, pyproject, "[tool.ruff]")
	assert.Contains(t, pyproject, "[tool.pytest.ini_options]")

	p, meta, set = buildPlan(t, features.Toggles{
		features.Database: false,
		features.Cache:    false,
		features.Auth:     false,
		features.Testing:  false,
	})
	pyproject = render(t, p, meta, set, "backend/pyproject.toml")

	assert.Contains(t, pyproject, `"fastapi>=`)
	assert.NotContains(t, pyproject, "sqlalchemy")
	assert.NotContains(t, pyproject, `"redis>=`)
	assert.NotContains(t, pyproject, `"celery>=`)
	assert.NotContains(t, pyproject, "pyjwt")
	assert.NotContains(t, pyproject, "pytest")
}

func TestRouterWiringFollowsAuth(t *testing.T) {
	p, meta, set := buildPlan(t, features.Toggles{})
	router := render(t, p, meta, set, "backend/src/demo/api/v1/api.py")
	assert.Contains(t, router, "from demo.api.v1.endpoints import auth, users")
	assert.Contains(t, router, `prefix="/auth"`)

	p, meta, set = buildPlan(t, features.Toggles{features.Auth: false})
	router = render(t, p, meta, set, "backend/src/demo/api/v1/api.py")
	assert.NotContains(t, router, "auth")
}

func TestEnvExampleUsesProjectPrefix(t *testing.T) {
	p, meta, set := buildPlan(t, features.Toggles{})
	env := render(t, p, meta, set, "backend/.env.example")
	assert.Contains(t, env, "DEMO_DEBUG=true")
	assert.Contains(t, env, "DEMO_DATABASE_URL=")
	assert.Contains(t, env, "DEMO_REDIS_URL=")
	assert.Contains(t, env, "DEMO_SECRET_KEY=")
}
