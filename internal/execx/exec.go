// Package execx runs the external commands bowerbird shells out to, which
// today means git. Commands stream output when verbose, and long-running
// ones can show a spinner instead.
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands in a fixed working directory.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	dir    string

	// commandFunc is swapped out in tests.
	commandFunc func(name string, args ...string) *exec.Cmd
}

// New creates an executor rooted at dir.
func New(dir string) *Executor {
	return &Executor{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		dir:         dir,
		commandFunc: exec.Command,
	}
}

// Run executes a command and waits for it, honoring ctx cancellation.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.commandFunc(name, args...)
	cmd.Dir = e.dir
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return fmt.Errorf("%w: install %s and try again", err, name)
		}
		return fmt.Errorf("starting %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
		}
		return nil
	}
}

// RunWithSpinner runs a command showing a spinner with the given message
// instead of streaming its output.
func (e *Executor) RunWithSpinner(ctx context.Context, message, name string, args ...string) error {
	quiet := &Executor{
		stdout:      io.Discard,
		stderr:      io.Discard,
		dir:         e.dir,
		commandFunc: e.commandFunc,
	}

	done := make(chan error, 1)
	go func() { done <- quiet.Run(ctx, name, args...) }()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(e.stderr))
	go func() { _, _ = p.Run() }()

	err := <-done
	p.Send(spinnerDoneMsg{err: err})
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return err
}

// InitRepo initializes a git repository in the executor's directory and
// records the generated tree as the first commit.
func (e *Executor) InitRepo(ctx context.Context) error {
	if err := e.RunWithSpinner(ctx, "Initializing git repository", "git", "init"); err != nil {
		return err
	}
	if err := e.Run(ctx, "git", "add", "-A"); err != nil {
		return err
	}
	return e.Run(ctx, "git", "commit", "-m", "Initial commit")
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{spinner: s, message: message}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✖ %s\n", m.message)
		}
		return fmt.Sprintf("✔ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// isCommandNotFound unwraps the *exec.Error that cmd.Start wraps a missing
// binary in.
func isCommandNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
