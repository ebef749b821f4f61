package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/session"
)

// ErrAborted is returned when the user quits with ctrl+c
var ErrAborted = errors.New("editing aborted")

// Options controls how the editor program runs
type Options struct {
	AltScreen bool
	Fuzzy     bool
	// InputTTY reads keys from the controlling terminal instead of stdin,
	// for when stdin carried the item document.
	InputTTY bool
	// Output receives the rendered editor. Defaults to os.Stderr because
	// stdout carries the result.
	Output io.Writer
}

// Run starts the editor on sess and blocks until the user finishes.
func Run(sess *session.Session, opts Options) (*items.Set, error) {
	filter := SubstringFilter
	if opts.Fuzzy {
		filter = FuzzyFilter
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	progOpts := []tea.ProgramOption{tea.WithOutput(out)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.InputTTY {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(NewModel(sess, filter), progOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("editor error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("editor error: unexpected model %T", final)
	}
	return m.Result()
}
