package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/orchestrator"
	"github.com/pbohannon/bowerbird/internal/output"
	"github.com/pbohannon/bowerbird/internal/project"
)

// negations maps each --no-* flag to the feature it disables. Features are
// on by default (except minimal tooling), so the CLI only exposes the
// negative direction plus --minimal-tooling.
var negations = []struct {
	Flag    string
	Feature features.Name
}{
	{"no-database", features.Database},
	{"no-cache", features.Cache},
	{"no-celery", features.Celery},
	{"no-docker", features.Docker},
	{"no-ci", features.CI},
	{"no-testing", features.Testing},
	{"no-vscode", features.VSCode},
	{"no-type-gen", features.TypeGeneration},
	{"no-auth", features.Auth},
}

// NewNewCmd creates the `bowerbird new` command.
func NewNewCmd() *cobra.Command {
	var (
		frontendName   string
		outputDir      string
		force          bool
		dryRun         bool
		initGit        bool
		interactive    bool
		minimalTooling bool
	)
	noFlags := make(map[string]*bool, len(negations))

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Generate a new project",
		Long: `Generate a new full-stack monorepo in a directory named after the
project. Feature defaults can be overridden per feature with the --no-*
flags, or project-wide by a bowerbird.yml in the working directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileDefaults, err := features.FileDefaults(".")
			if err != nil {
				return err
			}

			flagToggles := features.Toggles{}
			for _, n := range negations {
				if cmd.Flags().Changed(n.Flag) && *noFlags[n.Flag] {
					flagToggles[n.Feature] = false
				}
			}
			if cmd.Flags().Changed("minimal-tooling") {
				flagToggles[features.MinimalTooling] = minimalTooling
			}

			toggles := features.Merge(fileDefaults, flagToggles)
			variant := project.Variant(frontendName)

			if interactive {
				variant, toggles, err = runWizard(variant, toggles)
				if err != nil {
					return err
				}
			}

			result, err := orchestrator.Run(cmd.Context(), orchestrator.Request{
				Name:      args[0],
				Frontend:  variant,
				Toggles:   toggles,
				TargetDir: outputDir,
				DryRun:    dryRun,
				Force:     force,
				InitGit:   initGit,
			})
			if err != nil {
				return err
			}

			if result.Write.DryRun {
				output.Info(fmt.Sprintf("Dry run: %d artifacts planned for %s (%d skipped by features)",
					len(result.Plan.Artifacts), result.Write.TargetDir, result.Plan.Skipped))
				return nil
			}

			output.Success(fmt.Sprintf("Created %s: %d files, %d directories",
				result.Write.TargetDir, result.Write.Written, result.Write.Dirs))
			output.Info("Next steps:")
			output.Step("cd " + result.Write.TargetDir)
			output.Step("make install")
			output.Step("make dev-backend")
			output.Step("make dev-frontend")
			return nil
		},
	}

	cmd.Flags().StringVarP(&frontendName, "frontend", "f", "react", "frontend variant (react, vue, svelte)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: ./<name>)")
	cmd.Flags().BoolVar(&force, "force", false, "write into a non-empty directory without prompting")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be generated without writing")
	cmd.Flags().BoolVar(&initGit, "git", false, "initialize a git repository with an initial commit")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose frontend and features interactively")
	cmd.Flags().BoolVar(&minimalTooling, "minimal-tooling", false, "strip linting and formatting tooling")
	for _, n := range negations {
		noFlags[n.Flag] = cmd.Flags().Bool(n.Flag, false, "disable the "+string(n.Feature)+" feature")
	}

	return cmd
}
