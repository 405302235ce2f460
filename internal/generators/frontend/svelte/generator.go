// Package svelte generates the Svelte frontend variant: a SvelteKit +
// TypeScript app running in SPA mode. Routing is filesystem-based, so pages
// live under src/routes with (marketing), (app), and (auth) groups instead
// of a central route table.
package svelte

import (
	"embed"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/generators/frontend"
	"github.com/pbohannon/bowerbird/internal/project"
	"github.com/pbohannon/bowerbird/internal/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

func init() {
	frontend.Register(project.Svelte, New)
}

// New builds the Svelte frontend generator.
func New() frontend.Generator {
	return frontend.NewGenerator(frontend.Blueprint{
		Variant:   project.Svelte,
		Templates: templates,
		Paths:     paths,
		Dirs:      []string{"static", "src/lib/utils"},
		Context:   renderContext,
		Profile: frontend.Profile{
			DevCommand:     "npm run dev",
			BuildCommand:   "npm run build",
			LintExtensions: ".ts,.svelte",
		},
	})
}

var paths = map[string]string{
	"entry/html":           "src/app.html",
	"entry/bootstrap":      "src/routes/+layout.ts",
	"app/root":             "src/routes/+layout.svelte",
	"layout/main":          "src/routes/(app)/+layout.svelte",
	"page/home":            "src/routes/(marketing)/+page.svelte",
	"page/about":           "src/routes/(marketing)/about/+page.svelte",
	"page/dashboard":       "src/routes/(app)/dashboard/+page.svelte",
	"page/login":           "src/routes/(auth)/login/+page.svelte",
	"state/app":            "src/lib/stores/app.ts",
	"state/auth":           "src/lib/stores/auth.ts",
	"service/api":          "src/lib/services/api.ts",
	"styles/global":        "src/app.css",
	"ui/button":            "src/lib/components/ui/Button.svelte",
	"ui/card":              "src/lib/components/ui/Card.svelte",
	"ui/spinner":           "src/lib/components/ui/Spinner.svelte",
	"types/index":          "src/lib/types/index.ts",
	"config/package":       "package.json",
	"config/typescript":    "tsconfig.json",
	"config/build":         "vite.config.ts",
	"config/build-aux":     "svelte.config.js",
	"config/ambient-types": "src/app.d.ts",
	"config/lint":          ".eslintrc.cjs",
	"config/vitest":        "vitest.config.ts",
	"config/env":           ".env.example",
	"test/setup":           "src/lib/utils/test-setup.ts",
	"test/smoke":           "src/routes/home.test.ts",
}

func renderContext(_ project.Metadata, set features.Set) template.Context {
	deps := map[string]string{}
	devDeps := map[string]string{
		"@sveltejs/adapter-auto":       "^3.2.5",
		"@sveltejs/kit":                "^2.6.2",
		"@sveltejs/vite-plugin-svelte": "^3.1.2",
		"svelte":                       "^4.2.19",
		"svelte-check":                 "^4.0.4",
		"typescript":                   "^5.6.2",
		"vite":                         "^5.4.8",
	}
	scripts := []frontend.Script{
		{Name: "dev", Command: "vite dev"},
		{Name: "build", Command: "vite build"},
		{Name: "preview", Command: "vite preview"},
		{Name: "type-check", Command: "svelte-kit sync && svelte-check --tsconfig ./tsconfig.json"},
	}

	if !set.Enabled(features.MinimalTooling) {
		devDeps["eslint"] = "^8.57.1"
		devDeps["eslint-plugin-svelte"] = "^2.44.1"
		devDeps["svelte-eslint-parser"] = "^0.41.1"
		devDeps["@typescript-eslint/parser"] = "^7.18.0"
		scripts = append(scripts,
			frontend.Script{Name: "lint", Command: "eslint . --ext .ts,.svelte"},
			frontend.Script{Name: "lint:fix", Command: "eslint . --ext .ts,.svelte --fix"},
		)
	}
	if set.Enabled(features.Testing) {
		devDeps["vitest"] = "^2.1.2"
		devDeps["@testing-library/svelte"] = "^5.2.3"
		devDeps["@testing-library/jest-dom"] = "^6.5.0"
		devDeps["jsdom"] = "^25.0.1"
		scripts = append(scripts,
			frontend.Script{Name: "test", Command: "vitest"},
			frontend.Script{Name: "test:run", Command: "vitest run"},
		)
	}

	authNav := ""
	if set.Enabled(features.Auth) {
		authNav = "    <a href=\"/login\">Sign in</a>\n"
	}

	return template.Context{
		"FRONTEND_DEPENDENCIES":     frontend.DependencyBlock(deps),
		"FRONTEND_DEV_DEPENDENCIES": frontend.DependencyBlock(devDeps),
		"FRONTEND_SCRIPTS":          frontend.ScriptBlock(scripts),
		"AUTH_NAV_LINKS":            authNav,
	}
}
