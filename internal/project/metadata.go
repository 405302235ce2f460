// Package project holds the immutable per-run project metadata and the
// manifest written into every generated tree.
package project

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant identifies a frontend technology choice.
type Variant string

const (
	React  Variant = "react"
	Vue    Variant = "vue"
	Svelte Variant = "svelte"
)

// Variants lists every supported frontend variant in a stable order.
var Variants = []Variant{React, Vue, Svelte}

// KnownVariant reports whether v names a supported frontend variant.
func KnownVariant(v Variant) bool {
	for _, known := range Variants {
		if v == known {
			return true
		}
	}
	return false
}

// Metadata describes the project being generated. It is created once at the
// start of a run and never mutated.
type Metadata struct {
	// Name is the normalized project name: lowercase, underscores only.
	Name string
	// Title is the human-readable form, e.g. "demo_shop" → "Demo Shop".
	Title string
	// Slug is the hyphenated form used in package names and image tags.
	Slug string
	// EnvPrefix is the prefix for generated environment variables,
	// e.g. "DEMO_SHOP_".
	EnvPrefix string
	// Frontend is the chosen frontend variant.
	Frontend Variant
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var titleCaser = cases.Title(language.English)

// NewMetadata normalizes rawName and derives the project identifiers.
// Spaces and hyphens are folded to underscores before validation, so
// "Demo Shop" and "demo-shop" both become "demo_shop".
func NewMetadata(rawName string, frontend Variant) (Metadata, error) {
	name := strings.ToLower(strings.TrimSpace(rawName))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)

	if !namePattern.MatchString(name) {
		return Metadata{}, fmt.Errorf("invalid project name %q: must start with a letter and contain only letters, digits, and underscores", rawName)
	}
	if !KnownVariant(frontend) {
		return Metadata{}, fmt.Errorf("unknown frontend variant %q (supported: react, vue, svelte)", frontend)
	}

	return Metadata{
		Name:      name,
		Title:     titleCaser.String(strings.ReplaceAll(name, "_", " ")),
		Slug:      strings.ReplaceAll(name, "_", "-"),
		EnvPrefix: strings.ToUpper(name) + "_",
		Frontend:  frontend,
	}, nil
}
