package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/logging"
	"github.com/muurk/cfgedit/internal/session"
)

// Rows used by everything except the line list
const chromeRows = 12

// Model is the Bubble Tea model hosting an editing session
type Model struct {
	sess   *session.Session
	input  textinput.Model
	help   help.Model
	keys   keyMap
	filter Filter

	lines   []string // session lines, refreshed after every event
	visible []int    // indices into lines that pass the filter
	cursor  int      // index into visible
	moved   bool     // cursor moved since the last filter change

	validationErr error
	fatal         error
	aborted       bool
	result        *items.Set

	width  int
	height int
}

// NewModel creates a model for sess. The session must be browsing.
func NewModel(sess *session.Session, filter Filter) Model {
	if filter == nil {
		filter = FuzzyFilter
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 0
	ti.Focus()

	m := Model{
		sess:   sess,
		input:  ti,
		help:   help.New(),
		keys:   newKeyMap(),
		filter: filter,
	}
	m.refresh()
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.sess.Finished() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			return m.dispatch(m.sess.Cancel())

		case key.Matches(msg, m.keys.Submit):
			return m.dispatch(m.sess.Submit(m.input.Value()))

		case key.Matches(msg, m.keys.Select):
			// Typed text wins over a filtered control line unless the user
			// picked a line explicitly.
			if len(m.visible) == 0 || (m.sess.AcceptsFreeText() && !m.moved) {
				return m.dispatch(m.sess.Submit(m.input.Value()))
			}
			return m.dispatch(m.sess.Select(m.visible[m.cursor]))

		case key.Matches(msg, m.keys.Up):
			if len(m.visible) > 0 {
				m.cursor = (m.cursor - 1 + len(m.visible)) % len(m.visible)
				m.moved = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if len(m.visible) > 0 {
				m.cursor = (m.cursor + 1) % len(m.visible)
				m.moved = true
			}
			return m, nil

		case key.Matches(msg, m.keys.Complete):
			if len(m.visible) == 0 {
				return m, nil
			}
			if text, ok := m.sess.Complete(m.visible[m.cursor]); ok {
				m.input.SetValue(text)
				m.input.CursorEnd()
				m.applyFilter()
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

// dispatch applies the outcome of a session event
func (m Model) dispatch(act session.Action, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		if items.IsValidationError(err) {
			m.validationErr = err
			return m, nil
		}
		logging.Error("Session failed", zap.Error(err))
		m.fatal = err
		return m, tea.Quit
	}
	m.validationErr = nil

	if act == session.ActionExit {
		m.result = m.sess.Items()
		return m, tea.Quit
	}

	// Free-text items start from their current value; choice lists start
	// unfiltered.
	m.input.Reset()
	if pos, ok := m.sess.Position(); ok && m.sess.AcceptsFreeText() {
		m.input.SetValue(m.sess.Items().At(pos).Item.Text())
		m.input.CursorEnd()
	}
	m.refresh()
	return m, nil
}

// refresh reloads the lines from the session and reapplies the filter
func (m *Model) refresh() {
	m.lines = m.sess.Lines()
	m.applyFilter()
}

func (m *Model) applyFilter() {
	m.visible = m.filter(m.input.Value(), m.lines)
	m.cursor = 0
	m.moved = false
}

// View renders the editor
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.sess.Title()))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if status := m.sess.Status(); status != "" {
		b.WriteString(StatusStyle.Render(status))
		b.WriteString("\n")
	}
	if m.validationErr != nil {
		b.WriteString(ValidationErrorStyle.Render("✗ " + m.validationErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(EmptyStyle.Render("no matching lines"))
		b.WriteString("\n")
	}
	if m.sess.AcceptsFreeText() && !m.moved {
		b.WriteString(EmptyStyle.Render("enter submits the text"))
		b.WriteString("\n")
	}

	// While typing a value nothing is highlighted until the cursor moves
	highlight := !m.sess.AcceptsFreeText() || m.moved
	start, end := m.window()
	last := len(m.lines) - 1
	for i := start; i < end; i++ {
		idx := m.visible[i]
		b.WriteString(RenderLine(m.lines[idx], highlight && i == m.cursor, idx == last))
		b.WriteString("\n")
	}

	return RenderApplicationContainer(b.String(), m.help.View(m.keys), m.width, m.height)
}

// window returns the range of visible lines that fits the terminal while
// keeping the cursor on screen.
func (m Model) window() (int, int) {
	n := len(m.visible)
	rows := m.height - chromeRows
	if m.height <= 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

// Result returns the finished item set. It returns ErrAborted when the user
// quit without finishing, and the session error when one ended the program.
func (m Model) Result() (*items.Set, error) {
	if m.fatal != nil {
		return nil, m.fatal
	}
	if m.aborted || m.result == nil {
		return nil, ErrAborted
	}
	return m.result, nil
}
