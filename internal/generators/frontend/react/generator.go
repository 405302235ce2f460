// Package react generates the React frontend variant: a Vite + TypeScript
// app with react-router pages, zustand client state, and TanStack Query for
// server state.
package react

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
	frontend.Register(project.React, New)
}

// New builds the React frontend generator.
func New() frontend.Generator {
	return frontend.NewGenerator(frontend.Blueprint{
		Variant:   project.React,
		Templates: templates,
		Paths:     paths,
		Dirs:      []string{"public", "src/hooks"},
		Context:   renderContext,
		Profile: frontend.Profile{
			DevCommand:     "npm run dev",
			BuildCommand:   "npm run build",
			LintExtensions: ".ts,.tsx",
		},
	})
}

var paths = map[string]string{
	"entry/html":           "index.html",
	"entry/bootstrap":      "src/main.tsx",
	"app/root":             "src/App.tsx",
	"layout/main":          "src/layouts/MainLayout.tsx",
	"page/home":            "src/pages/HomePage.tsx",
	"page/about":           "src/pages/AboutPage.tsx",
	"page/dashboard":       "src/pages/DashboardPage.tsx",
	"page/login":           "src/pages/LoginPage.tsx",
	"state/app":            "src/stores/app.ts",
	"state/auth":           "src/stores/auth.ts",
	"service/api":          "src/services/api.ts",
	"styles/global":        "src/index.css",
	"ui/button":            "src/components/ui/Button.tsx",
	"ui/card":              "src/components/ui/Card.tsx",
	"ui/spinner":           "src/components/ui/Spinner.tsx",
	"types/index":          "src/types/index.ts",
	"config/package":       "package.json",
	"config/typescript":    "tsconfig.json",
	"config/build":         "vite.config.ts",
	"config/build-aux":     "tsconfig.node.json",
	"config/ambient-types": "src/vite-env.d.ts",
	"config/lint":          ".eslintrc.cjs",
	"config/vitest":        "vitest.config.ts",
	"config/env":           ".env.example",
	"test/setup":           "src/utils/test-setup.ts",
	"test/smoke":           "src/App.test.tsx",
}

func renderContext(_ project.Metadata, set features.Set) template.Context {
	deps := map[string]string{
		"react":                 "^18.3.1",
		"react-dom":             "^18.3.1",
		"react-router-dom":      "^6.26.2",
		"@tanstack/react-query": "^5.59.0",
		"zustand":               "^4.5.5",
	}
	devDeps := map[string]string{
		"@types/react":         "^18.3.10",
		"@types/react-dom":     "^18.3.0",
		"@vitejs/plugin-react": "^4.3.2",
		"typescript":           "^5.6.2",
		"vite":                 "^5.4.8",
	}
	scripts := []frontend.Script{
		{Name: "dev", Command: "vite"},
		{Name: "build", Command: "tsc -b && vite build"},
		{Name: "preview", Command: "vite preview"},
		{Name: "type-check", Command: "tsc --noEmit"},
	}

	if !set.Enabled(features.MinimalTooling) {
		devDeps["eslint"] = "^8.57.1"
		devDeps["@typescript-eslint/eslint-plugin"] = "^7.18.0"
		devDeps["@typescript-eslint/parser"] = "^7.18.0"
		devDeps["eslint-plugin-react-hooks"] = "^4.6.2"
		devDeps["eslint-plugin-react-refresh"] = "^0.4.12"
		scripts = append(scripts,
			frontend.Script{Name: "lint", Command: "eslint . --ext .ts,.tsx"},
			frontend.Script{Name: "lint:fix", Command: "eslint . --ext .ts,.tsx --fix"},
		)
	}
	if set.Enabled(features.Testing) {
		devDeps["vitest"] = "^2.1.2"
		devDeps["@testing-library/react"] = "^16.0.1"
		devDeps["@testing-library/jest-dom"] = "^6.5.0"
		devDeps["jsdom"] = "^25.0.1"
		scripts = append(scripts,
			frontend.Script{Name: "test", Command: "vitest"},
			frontend.Script{Name: "test:run", Command: "vitest run"},
		)
	}

	authImports := ""
	authRoutes := ""
	if set.Enabled(features.Auth) {
		authImports = "import LoginPage from './pages/LoginPage'\n"
		authRoutes = "          <Route path=\"/login\" element={<LoginPage />} />\n"
	}

	return template.Context{
		"FRONTEND_DEPENDENCIES":     frontend.DependencyBlock(deps),
		"FRONTEND_DEV_DEPENDENCIES": frontend.DependencyBlock(devDeps),
		"FRONTEND_SCRIPTS":          frontend.ScriptBlock(scripts),
		"AUTH_PAGE_IMPORTS":         authImports,
		"AUTH_PAGE_ROUTES":          authRoutes,
	}
}
