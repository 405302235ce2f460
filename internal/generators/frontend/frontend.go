// Package frontend defines the contract shared by all frontend variant
// generators. Every variant delivers the same catalog of logical slots —
// pages, layouts, state stores, the API client, UI primitives, build and
// lint configuration — so switching frameworks changes file names and
// grouping, never which capabilities the scaffold has.
package frontend

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pbohannon/bowerbird/internal/plan"
	"github.com/pbohannon/bowerbird/internal/project"
)

// Generator is implemented by each frontend variant. Mapping exposes the
// variant's path for every catalog slot so callers can translate between
// variants without generating anything.
type Generator interface {
	plan.Generator
	Variant() project.Variant
	Mapping() map[string]string
	Profile() Profile
}

// UnsupportedError reports a frontend variant no generator is registered
// for.
type UnsupportedError struct {
	Variant project.Variant
}

func (e *UnsupportedError) Error() string {
	known := make([]string, 0, len(Variants()))
	for _, v := range Variants() {
		known = append(known, string(v))
	}
	return fmt.Sprintf("unsupported frontend %q (supported: %s)", e.Variant, strings.Join(known, ", "))
}

var (
	registryMu sync.RWMutex
	registry   = make(map[project.Variant]func() Generator)
)

// Register adds a variant constructor to the registry. Variant packages call
// it from init; registering the same variant twice panics, which surfaces a
// wiring bug at startup rather than at generation time.
func Register(v project.Variant, ctor func() Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[v]; exists {
		panic(fmt.Sprintf("frontend variant %q registered twice", v))
	}
	registry[v] = ctor
}

// ForVariant constructs the generator registered for the variant.
func ForVariant(v project.Variant) (Generator, error) {
	registryMu.RLock()
	ctor, ok := registry[v]
	registryMu.RUnlock()

	if !ok {
		return nil, &UnsupportedError{Variant: v}
	}
	return ctor(), nil
}

// Variants lists the registered variants in sorted order.
func Variants() []project.Variant {
	registryMu.RLock()
	defer registryMu.RUnlock()

	variants := make([]project.Variant, 0, len(registry))
	for v := range registry {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i] < variants[j] })
	return variants
}
