// Package features resolves raw feature toggles into an immutable,
// constraint-satisfying feature set.
//
// Every generation run starts here: downstream components (planner,
// generators, writer) read the resolved Set and never re-validate toggles
// themselves.
package features

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies a toggleable feature.
type Name string

const (
	// Core infrastructure
	Database Name = "database"
	Cache    Name = "cache"
	Celery   Name = "celery"
	Docker   Name = "docker"

	// Development & CI
	CI      Name = "ci"
	Testing Name = "testing"
	VSCode  Name = "vscode"

	// Code generation & tooling
	TypeGeneration Name = "type_generation"
	Auth           Name = "auth"
	MinimalTooling Name = "minimal_tooling"
)

// All lists every known feature in a stable order.
var All = []Name{
	Database, Cache, Celery, Docker,
	CI, Testing, VSCode,
	TypeGeneration, Auth, MinimalTooling,
}

// Toggles is the raw, possibly partial flag input to Resolve.
// Unspecified features take their documented defaults.
type Toggles map[Name]bool

// Set is a resolved, validated feature set. It is immutable: once built by
// Resolve, every value satisfies all declared dependency and conflict rules.
type Set struct {
	values map[Name]bool
}

// Enabled reports whether the named feature is on.
// Unknown names are simply off.
func (s Set) Enabled(n Name) bool {
	return s.values[n]
}

// EnabledNames lists every enabled feature in stable order.
func (s Set) EnabledNames() []Name {
	var names []Name
	for _, n := range All {
		if s.values[n] {
			names = append(names, n)
		}
	}
	return names
}

// DisabledNames lists every disabled feature in stable order.
func (s Set) DisabledNames() []Name {
	var names []Name
	for _, n := range All {
		if !s.values[n] {
			names = append(names, n)
		}
	}
	return names
}

// Map returns a copy of the resolved values, keyed by feature name.
// Mutating the copy does not affect the Set.
func (s Set) Map() map[Name]bool {
	m := make(map[Name]bool, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// ConfigError reports an invalid or conflicting feature combination.
// It names the offending flags and the violated rule.
type ConfigError struct {
	Flags []Name
	Rule  string
}

func (e *ConfigError) Error() string {
	flags := make([]string, len(e.Flags))
	for i, f := range e.Flags {
		flags[i] = string(f)
	}
	sort.Strings(flags)
	return fmt.Sprintf("invalid feature configuration [%s]: %s", strings.Join(flags, ", "), e.Rule)
}
