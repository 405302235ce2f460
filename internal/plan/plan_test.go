package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

func allFeatures(t *testing.T) features.Set {
	t.Helper()
	return features.MustResolve(features.Toggles{})
}

func noOptionalFeatures(t *testing.T) features.Set {
	t.Helper()
	return features.MustResolve(features.Toggles{
		features.Database: false,
		features.Cache:    false,
		features.Docker:   false,
		features.CI:       false,
		features.Testing:  false,
		features.VSCode:   false,
		features.Auth:     false,
	})
}

// staticGen is a planner generator returning a fixed artifact list.
type staticGen struct {
	artifacts []Artifact
}

func (g staticGen) Generate(project.Metadata, features.Set) ([]Artifact, error) {
	return g.artifacts, nil
}

func testMeta(t *testing.T) project.Metadata {
	t.Helper()
	meta, err := project.NewMetadata("demo", project.React)
	require.NoError(t, err)
	return meta
}

func TestAssembleOrdersDirectoriesBeforeContents(t *testing.T) {
	artifacts := []Artifact{
		File("backend/src/main.py", Static([]byte("x"))),
		Directory("backend", nil),
		Directory("backend/src", nil),
		File("Makefile", Static([]byte("y"))),
	}

	plan, err := assemble(artifacts, allFeatures(t), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Makefile",
		"backend",
		"backend/src",
		"backend/src/main.py",
	}, plan.Paths())
}

func TestAssembleMergesDuplicateDirectories(t *testing.T) {
	artifacts := []Artifact{
		Directory("shared", nil),
		Directory("shared", nil),
		File("shared/index.ts", Static(nil)),
	}

	plan, err := assemble(artifacts, allFeatures(t), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared", "shared/index.ts"}, plan.Paths())
}

func TestAssembleRejectsCollidingFiles(t *testing.T) {
	artifacts := []Artifact{
		File("Makefile", Static([]byte("a"))),
		File("Makefile", Static([]byte("b"))),
	}

	_, err := assemble(artifacts, allFeatures(t), nil)

	var planErr *PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, "Makefile", planErr.Path)
	assert.Contains(t, planErr.Error(), "different content producers")
}

func TestAssembleRejectsDirFileCollision(t *testing.T) {
	artifacts := []Artifact{
		Directory("shared", nil),
		File("shared", Static(nil)),
	}

	_, err := assemble(artifacts, allFeatures(t), nil)

	var planErr *PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Contains(t, planErr.Error(), "both a directory and a file")
}

func TestAssembleRejectsEscapingPaths(t *testing.T) {
	for _, path := range []string{"../outside.txt", "/etc/passwd"} {
		_, err := assemble([]Artifact{File(path, Static(nil))}, allFeatures(t), nil)

		var planErr *PlanError
		require.ErrorAs(t, err, &planErr, "path %q", path)
	}
}

func TestAssembleCountsGatedOffArtifacts(t *testing.T) {
	artifacts := []Artifact{
		File("Makefile", Static(nil)),
		GatedFile(".github/workflows/ci.yml", If(features.CI), Static(nil)),
		GatedFile("infrastructure/docker/Dockerfile", If(features.Docker), Static(nil)),
	}

	plan, err := assemble(artifacts, noOptionalFeatures(t), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Makefile"}, plan.Paths())
	assert.Equal(t, 2, plan.Skipped)
}

func TestPlannerAppliesExclusionPatterns(t *testing.T) {
	// An artifact a generator forgot to gate still cannot reach the plan
	// when its path matches a feature-derived exclusion.
	gen := staticGen{artifacts: []Artifact{
		File("backend/Dockerfile", Static(nil)),
		File("backend/src/main.py", Static(nil)),
		File("frontend/src/App.test.tsx", Static(nil)),
	}}

	plan, err := New(gen).Build(testMeta(t), noOptionalFeatures(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"backend/src/main.py"}, plan.Paths())
	assert.Equal(t, 2, plan.Skipped)
}

func TestGateCombinators(t *testing.T) {
	set := features.MustResolve(features.Toggles{features.Docker: false})

	assert.True(t, If(features.Database)(set))
	assert.False(t, If(features.Docker)(set))
	assert.True(t, Unless(features.Docker)(set))
	assert.False(t, AllOf(If(features.Database), If(features.Docker))(set))
	assert.True(t, AnyOf(If(features.Docker), If(features.Database))(set))
}

func TestBaseContext(t *testing.T) {
	meta, err := project.NewMetadata("demo_shop", project.Vue)
	require.NoError(t, err)

	ctx := BaseContext(meta, allFeatures(t))

	assert.Equal(t, "demo_shop", ctx["PROJECT_NAME"])
	assert.Equal(t, "Demo Shop", ctx["PROJECT_TITLE"])
	assert.Equal(t, "demo-shop", ctx["PROJECT_SLUG"])
	assert.Equal(t, "DEMO_SHOP_", ctx["ENV_PREFIX"])
	assert.Equal(t, "vue", ctx["FRONTEND"])
}

func TestExtendDoesNotMutate(t *testing.T) {
	base := template.Context{"A": "1"}
	merged := Extend(base, template.Context{"B": "2"})

	assert.Equal(t, template.Context{"A": "1"}, base)
	assert.Equal(t, template.Context{"A": "1", "B": "2"}, merged)
}
