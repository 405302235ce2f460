package main

import (
	"errors"
	"os"

	"github.com/pbohannon/bowerbird/internal/commands"
	"github.com/pbohannon/bowerbird/internal/features"
	"github.com/pbohannon/bowerbird/internal/output"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		output.Error(err.Error())

		// Invalid feature combinations are usage errors.
		var confErr *features.ConfigError
		if errors.As(err, &confErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
