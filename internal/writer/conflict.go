package writer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ConflictStrategy decides whether a write pass may proceed into a
// non-empty target directory.
type ConflictStrategy interface {
	Resolve(dir string, entries int) (bool, error)
}

// defaultStrategy picks the strategy for the current invocation: --force
// overwrites, an interactive terminal asks, everything else refuses.
func defaultStrategy(force bool) ConflictStrategy {
	switch {
	case force:
		return ForceStrategy{}
	case term.IsTerminal(int(os.Stdin.Fd())):
		return InteractiveStrategy{}
	default:
		return RefuseStrategy{}
	}
}

// ForceStrategy always proceeds.
type ForceStrategy struct{}

func (ForceStrategy) Resolve(string, int) (bool, error) { return true, nil }

// RefuseStrategy never proceeds. It is the non-interactive default so
// scripts cannot clobber a directory by accident.
type RefuseStrategy struct{}

func (RefuseStrategy) Resolve(string, int) (bool, error) { return false, nil }

// InteractiveStrategy asks the user before writing into a non-empty
// directory.
type InteractiveStrategy struct{}

func (InteractiveStrategy) Resolve(dir string, entries int) (bool, error) {
	overwrite := false
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Directory %s is not empty (%d entries)", dir, entries)).
		Description("Existing files with matching names will be overwritten.").
		Affirmative("Overwrite").
		Negative("Cancel").
		Value(&overwrite)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}
