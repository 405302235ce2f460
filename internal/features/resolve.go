package features

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// defaults are the documented values a feature takes when its flag is not
// given. Everything is on except minimal_tooling.
var defaults = map[Name]bool{
	Database:       true,
	Cache:          true,
	Celery:         true,
	Docker:         true,
	CI:             true,
	Testing:        true,
	VSCode:         true,
	TypeGeneration: true,
	Auth:           true,
	MinimalTooling: false,
}

// dependency declares that Feature only works while Requires is enabled.
// Disabling the prerequisite transitively force-disables the dependent,
// even when the dependent was explicitly requested.
type dependency struct {
	Feature  Name
	Requires Name
	Rule     string
}

var dependencies = []dependency{
	{TypeGeneration, Database, "type_generation requires database (types are generated from the database schemas)"},
	{Celery, Cache, "celery requires cache (the job queue brokers through Redis)"},
	{Auth, Database, "auth requires database (user accounts are persisted)"},
}

// exclusion declares two features that cannot both be explicitly requested.
// When only one side is explicit, the explicit one wins and the defaulted
// side is switched off.
type exclusion struct {
	A, B Name
	Rule string
}

var exclusions = []exclusion{
	{MinimalTooling, TypeGeneration, "minimal_tooling excludes type_generation (type generation is part of the full tooling chain)"},
}

// Resolve validates raw toggles against the declared dependency and conflict
// rules and produces an immutable Set.
//
// Resolution order: default-filling, dependency propagation, conflict
// detection. Resolve is pure: identical input always yields identical output,
// and it never returns a Set that violates a declared rule.
func Resolve(raw Toggles) (Set, error) {
	values := make(map[Name]bool, len(defaults))
	explicit := make(map[Name]bool, len(raw))

	for n, v := range defaults {
		values[n] = v
	}
	for n, v := range raw {
		if _, known := defaults[n]; !known {
			return Set{}, &ConfigError{Flags: []Name{n}, Rule: "unknown feature"}
		}
		values[n] = v
		explicit[n] = true
	}

	propagate(values)

	// Mutual exclusions, checked against post-propagation values: a side
	// already force-disabled by a missing prerequisite cannot conflict.
	// Two explicit trues are a hard error; an explicit true beats a
	// defaulted true.
	for _, ex := range exclusions {
		if !values[ex.A] || !values[ex.B] {
			continue
		}
		if explicit[ex.A] && explicit[ex.B] {
			return Set{}, &ConfigError{Flags: []Name{ex.A, ex.B}, Rule: ex.Rule}
		}
		if explicit[ex.A] {
			values[ex.B] = false
		} else {
			values[ex.A] = false
		}
	}

	// An exclusion may have switched a prerequisite off.
	propagate(values)

	return Set{values: values}, nil
}

// propagate disables every feature whose prerequisite is disabled, to a
// fixpoint so chains cascade.
func propagate(values map[Name]bool) {
	for changed := true; changed; {
		changed = false
		for _, dep := range dependencies {
			if values[dep.Feature] && !values[dep.Requires] {
				values[dep.Feature] = false
				changed = true
			}
		}
	}
}

// MustResolve is Resolve for inputs known to be valid, such as test fixtures
// and the built-in defaults. It panics on a ConfigError.
func MustResolve(raw Toggles) Set {
	set, err := Resolve(raw)
	if err != nil {
		panic(err)
	}
	return set
}

// FileDefaults reads the optional bowerbird.yml in dir and returns the
// toggle overrides it declares under the "features" key. A missing file
// yields empty Toggles. Flags given on the command line still override
// anything found here.
func FileDefaults(dir string) (Toggles, error) {
	v := viper.New()
	v.SetConfigName("bowerbird")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Toggles{}, nil
		}
		return nil, fmt.Errorf("reading bowerbird.yml: %w", err)
	}

	raw := Toggles{}
	for _, n := range All {
		key := "features." + string(n)
		if v.IsSet(key) {
			raw[n] = v.GetBool(key)
		}
	}
	return raw, nil
}

// Merge overlays later toggle maps onto earlier ones and returns the result.
// Inputs are not mutated.
func Merge(layers ...Toggles) Toggles {
	merged := Toggles{}
	for _, layer := range layers {
		for n, v := range layer {
			merged[n] = v
		}
	}
	return merged
}
