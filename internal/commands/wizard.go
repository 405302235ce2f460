package commands

import (
	"github.com/charmbracelet/huh"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/project"
)

// runWizard collects the frontend choice and feature toggles interactively,
// prefilled from the toggles gathered so far. The wizard edits raw toggles;
// dependency and conflict rules still run in the resolver afterwards.
func runWizard(variant project.Variant, toggles features.Toggles) (project.Variant, features.Toggles, error) {
	// Prefill from the resolved set so defaults show up checked.
	set, err := features.Resolve(toggles)
	if err != nil {
		return variant, nil, err
	}

	var selected []string
	for _, n := range set.EnabledNames() {
		selected = append(selected, string(n))
	}

	featureOptions := make([]huh.Option[string], 0, len(features.All))
	for _, n := range features.All {
		featureOptions = append(featureOptions, huh.NewOption(string(n), string(n)))
	}

	frontendName := string(variant)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Frontend framework").
				Options(
					huh.NewOption("React", string(project.React)),
					huh.NewOption("Vue", string(project.Vue)),
					huh.NewOption("Svelte", string(project.Svelte)),
				).
				Value(&frontendName),
			huh.NewMultiSelect[string]().
				Title("Features").
				Description("Dependencies between features are resolved automatically.").
				Options(featureOptions...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return variant, nil, err
	}

	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}

	result := features.Toggles{}
	for _, n := range features.All {
		result[n] = chosen[string(n)]
	}
	return project.Variant(frontendName), result, nil
}
