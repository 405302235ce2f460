// Package template implements the flat placeholder templates used by all
// generators.
//
// A template is plain text with zero or more {{NAME}} tokens, where NAME is
// an uppercase identifier. Rendering is a single, non-recursive substitution
// pass against a Context: there is no control flow inside templates — all
// conditional inclusion happens at the artifact level before rendering.
// Brace sequences that do not match the token shape (Vue's "{{ count }}",
// for example) pass through untouched.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"sync"
)

// Context maps placeholder names to their substitution values. It is built
// fresh per artifact render.
type Context map[string]string

// TemplateError reports a missing template resource or a placeholder left
// unresolved after rendering. Unresolved placeholders are a hard failure so
// a broken scaffold with literal placeholder text can never ship.
type TemplateError struct {
	Template    string
	Placeholder string
	Err         error
}

func (e *TemplateError) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("template %s: unresolved placeholder {{%s}}", e.Template, e.Placeholder)
	}
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

var placeholderPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// Template is a parsed template resource: a logical path plus its
// placeholder segmentation. Templates are stateless and reusable across runs.
type Template struct {
	Path     string
	segments []segment
}

// segment is either a literal run or a single placeholder.
type segment struct {
	literal     string
	placeholder string
}

// Parse segments raw template text. Parsing never fails: anything that is
// not a well-formed {{NAME}} token is literal text.
func Parse(path, raw string) *Template {
	t := &Template{Path: path}

	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(raw, -1) {
		if m[0] > last {
			t.segments = append(t.segments, segment{literal: raw[last:m[0]]})
		}
		t.segments = append(t.segments, segment{placeholder: raw[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(raw) {
		t.segments = append(t.segments, segment{literal: raw[last:]})
	}

	return t
}

// Placeholders lists the distinct placeholder names in order of first use.
func (t *Template) Placeholders() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range t.segments {
		if s.placeholder != "" && !seen[s.placeholder] {
			seen[s.placeholder] = true
			names = append(names, s.placeholder)
		}
	}
	return names
}

// Render substitutes every placeholder from ctx. A placeholder missing from
// ctx yields a TemplateError; context keys with no matching placeholder are
// ignored, keeping contexts forward-compatible.
func (t *Template) Render(ctx Context) ([]byte, error) {
	var buf bytes.Buffer
	for _, s := range t.segments {
		if s.placeholder == "" {
			buf.WriteString(s.literal)
			continue
		}
		value, ok := ctx[s.placeholder]
		if !ok {
			return nil, &TemplateError{Template: t.Path, Placeholder: s.placeholder}
		}
		buf.WriteString(value)
	}
	return buf.Bytes(), nil
}

// Engine loads and renders templates with caching. Safe for concurrent use.
type Engine struct {
	mu    sync.RWMutex
	cache map[string]*Template
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]*Template)}
}

// Render parses and renders a template from a string. The name is used for
// caching and error messages.
func (e *Engine) Render(name, raw string, ctx Context) ([]byte, error) {
	return e.cached("string:"+name, name, func() (string, error) { return raw, nil }, ctx)
}

// RenderFS renders a template loaded from a filesystem, typically a
// generator's embedded templates directory.
func (e *Engine) RenderFS(fsys fs.FS, path string, ctx Context) ([]byte, error) {
	load := func() (string, error) {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return e.cached("fs:"+path, path, load, ctx)
}

// LoadFS parses (and caches) a template from a filesystem without rendering.
func (e *Engine) LoadFS(fsys fs.FS, path string) (*Template, error) {
	key := "fs:" + path

	e.mu.RLock()
	tmpl, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, &TemplateError{Template: path, Err: err}
	}
	tmpl = Parse(path, string(data))

	e.mu.Lock()
	e.cache[key] = tmpl
	e.mu.Unlock()

	return tmpl, nil
}

// ClearCache drops all cached templates (useful for testing).
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*Template)
}

func (e *Engine) cached(key, name string, load func() (string, error), ctx Context) ([]byte, error) {
	e.mu.RLock()
	tmpl, ok := e.cache[key]
	e.mu.RUnlock()

	if !ok {
		raw, err := load()
		if err != nil {
			return nil, &TemplateError{Template: name, Err: err}
		}
		tmpl = Parse(name, raw)

		e.mu.Lock()
		e.cache[key] = tmpl
		e.mu.Unlock()
	}

	return tmpl.Render(ctx)
}
