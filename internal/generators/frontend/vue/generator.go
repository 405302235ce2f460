// Package vue generates the Vue frontend variant: a Vite + TypeScript app
// with vue-router views and pinia stores. Routes are declared inline in the
// bootstrap module so the route table and the app entry stay in one place.
package vue

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
	frontend.Register(project.Vue, New)
}

// New builds the Vue frontend generator.
func New() frontend.Generator {
	return frontend.NewGenerator(frontend.Blueprint{
		Variant:   project.Vue,
		Templates: templates,
		Paths:     paths,
		Dirs:      []string{"public", "src/composables"},
		Context:   renderContext,
		Profile: frontend.Profile{
			DevCommand:     "npm run dev",
			BuildCommand:   "npm run build",
			LintExtensions: ".ts,.vue",
		},
	})
}

var paths = map[string]string{
	"entry/html":           "index.html",
	"entry/bootstrap":      "src/main.ts",
	"app/root":             "src/App.vue",
	"layout/main":          "src/layouts/MainLayout.vue",
	"page/home":            "src/views/HomeView.vue",
	"page/about":           "src/views/AboutView.vue",
	"page/dashboard":       "src/views/DashboardView.vue",
	"page/login":           "src/views/LoginView.vue",
	"state/app":            "src/stores/app.ts",
	"state/auth":           "src/stores/auth.ts",
	"service/api":          "src/services/api.ts",
	"styles/global":        "src/assets/main.css",
	"ui/button":            "src/components/ui/BaseButton.vue",
	"ui/card":              "src/components/ui/BaseCard.vue",
	"ui/spinner":           "src/components/ui/BaseSpinner.vue",
	"types/index":          "src/types/index.ts",
	"config/package":       "package.json",
	"config/typescript":    "tsconfig.json",
	"config/build":         "vite.config.ts",
	"config/build-aux":     "tsconfig.node.json",
	"config/ambient-types": "env.d.ts",
	"config/lint":          ".eslintrc.cjs",
	"config/vitest":        "vitest.config.ts",
	"config/env":           ".env.example",
	"test/setup":           "src/utils/test-setup.ts",
	"test/smoke":           "src/views/HomeView.test.ts",
}

func renderContext(_ project.Metadata, set features.Set) template.Context {
	deps := map[string]string{
		"vue":        "^3.5.10",
		"vue-router": "^4.4.5",
		"pinia":      "^2.2.4",
	}
	devDeps := map[string]string{
		"@vitejs/plugin-vue": "^5.1.4",
		"@vue/tsconfig":      "^0.5.1",
		"typescript":         "^5.6.2",
		"vite":               "^5.4.8",
		"vue-tsc":            "^2.1.6",
	}
	scripts := []frontend.Script{
		{Name: "dev", Command: "vite"},
		{Name: "build", Command: "vue-tsc -b && vite build"},
		{Name: "preview", Command: "vite preview"},
		{Name: "type-check", Command: "vue-tsc --noEmit"},
	}

	if !set.Enabled(features.MinimalTooling) {
		devDeps["eslint"] = "^8.57.1"
		devDeps["eslint-plugin-vue"] = "^9.28.0"
		devDeps["@vue/eslint-config-typescript"] = "^13.0.0"
		scripts = append(scripts,
			frontend.Script{Name: "lint", Command: "eslint . --ext .ts,.vue"},
			frontend.Script{Name: "lint:fix", Command: "eslint . --ext .ts,.vue --fix"},
		)
	}
	if set.Enabled(features.Testing) {
		devDeps["vitest"] = "^2.1.2"
		devDeps["@vue/test-utils"] = "^2.4.6"
		devDeps["@testing-library/jest-dom"] = "^6.5.0"
		devDeps["jsdom"] = "^25.0.1"
		scripts = append(scripts,
			frontend.Script{Name: "test", Command: "vitest"},
			frontend.Script{Name: "test:run", Command: "vitest run"},
		)
	}

	authRoutes := ""
	if set.Enabled(features.Auth) {
		authRoutes = "        { path: 'login', name: 'login', component: () => import('./views/LoginView.vue') },\n"
	}

	return template.Context{
		"FRONTEND_DEPENDENCIES":     frontend.DependencyBlock(deps),
		"FRONTEND_DEV_DEPENDENCIES": frontend.DependencyBlock(devDeps),
		"FRONTEND_SCRIPTS":          frontend.ScriptBlock(scripts),
		"AUTH_PAGE_ROUTES":          authRoutes,
	}
}
