package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	set, err := Resolve(Toggles{})
	require.NoError(t, err)

	for _, n := range All {
		if n == MinimalTooling {
			assert.False(t, set.Enabled(n), "minimal_tooling defaults off")
		} else {
			assert.True(t, set.Enabled(n), "%s defaults on", n)
		}
	}
}

func TestResolveUnknownFeature(t *testing.T) {
	_, err := Resolve(Toggles{"kubernetes": true})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []Name{"kubernetes"}, cfgErr.Flags)
	assert.Contains(t, cfgErr.Error(), "unknown feature")
}

func TestResolveDependencyPropagation(t *testing.T) {
	tests := []struct {
		name     string
		raw      Toggles
		disabled []Name
		enabled  []Name
	}{
		{
			name:     "disabling database disables type generation",
			raw:      Toggles{Database: false},
			disabled: []Name{Database, TypeGeneration},
			enabled:  []Name{Cache, Celery, Docker},
		},
		{
			name:     "explicit type generation still loses to disabled database",
			raw:      Toggles{Database: false, TypeGeneration: true},
			disabled: []Name{Database, TypeGeneration},
		},
		{
			name:     "disabling cache disables celery",
			raw:      Toggles{Cache: false},
			disabled: []Name{Cache, Celery},
			enabled:  []Name{Database, TypeGeneration},
		},
		{
			name:     "explicit celery still loses to disabled cache",
			raw:      Toggles{Cache: false, Celery: true},
			disabled: []Name{Cache, Celery},
		},
		{
			name:     "disabling database disables auth",
			raw:      Toggles{Database: false},
			disabled: []Name{Database, Auth},
			enabled:  []Name{Cache, Testing},
		},
		{
			name:     "explicit auth still loses to disabled database",
			raw:      Toggles{Database: false, Auth: true},
			disabled: []Name{Database, Auth},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Resolve(tt.raw)
			require.NoError(t, err)

			for _, n := range tt.disabled {
				assert.False(t, set.Enabled(n), "%s should be disabled", n)
			}
			for _, n := range tt.enabled {
				assert.True(t, set.Enabled(n), "%s should be enabled", n)
			}
		})
	}
}

func TestResolveConflict(t *testing.T) {
	// Both sides explicitly requested: hard error naming both flags.
	_, err := Resolve(Toggles{MinimalTooling: true, TypeGeneration: true})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.ElementsMatch(t, []Name{MinimalTooling, TypeGeneration}, cfgErr.Flags)
	assert.Contains(t, cfgErr.Error(), "minimal_tooling")
}

func TestResolveConflictExplicitBeatsDefault(t *testing.T) {
	// minimal_tooling explicit, type_generation only default-on: the
	// explicit side wins, no error.
	set, err := Resolve(Toggles{MinimalTooling: true})
	require.NoError(t, err)
	assert.True(t, set.Enabled(MinimalTooling))
	assert.False(t, set.Enabled(TypeGeneration))
}

func TestResolvePropagationPrecedesConflicts(t *testing.T) {
	// type_generation is explicitly requested but its prerequisite is
	// gone, so it is force-disabled before the exclusion check and never
	// conflicts with minimal_tooling.
	set, err := Resolve(Toggles{Database: false, TypeGeneration: true, MinimalTooling: true})
	require.NoError(t, err)

	assert.True(t, set.Enabled(MinimalTooling))
	assert.False(t, set.Enabled(TypeGeneration))
	assert.False(t, set.Enabled(Database))
}

func TestResolveIsDeterministic(t *testing.T) {
	raw := Toggles{Database: false, Docker: false, MinimalTooling: true}

	first, err := Resolve(raw)
	require.NoError(t, err)
	second, err := Resolve(raw)
	require.NoError(t, err)

	assert.Equal(t, first.Map(), second.Map())
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	raw := Toggles{Cache: false, Celery: true}

	_, err := Resolve(raw)
	require.NoError(t, err)

	assert.Equal(t, Toggles{Cache: false, Celery: true}, raw)
}

func TestSetMapIsACopy(t *testing.T) {
	set := MustResolve(Toggles{})

	m := set.Map()
	m[Database] = false

	assert.True(t, set.Enabled(Database))
}

func TestFileDefaultsMissingFile(t *testing.T) {
	raw, err := FileDefaults(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestFileDefaults(t *testing.T) {
	dir := t.TempDir()
	config := `features:
  docker: false
  vscode: false
  minimal_tooling: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bowerbird.yml"), []byte(config), 0644))

	raw, err := FileDefaults(dir)
	require.NoError(t, err)

	assert.Equal(t, Toggles{Docker: false, VSCode: false, MinimalTooling: true}, raw)
}

func TestMergeLaterLayersWin(t *testing.T) {
	base := Toggles{Docker: false, CI: false}
	flags := Toggles{Docker: true}

	merged := Merge(base, flags)

	assert.Equal(t, Toggles{Docker: true, CI: false}, merged)
	assert.Equal(t, Toggles{Docker: false, CI: false}, base)
}
