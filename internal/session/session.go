package session

import (
	"fmt"
	"strings"

	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/logging"
)

// Control line labels
const (
	ApplyLine  = "Apply"
	CancelLine = "Cancel"
)

// State is the editing state of a session
type State int

const (
	// StateBrowsing lists every item plus the Apply line
	StateBrowsing State = iota
	// StateEditing lists the input choices for one item plus the Cancel line
	StateEditing
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateEditing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action tells the host what to do after an event
type Action int

const (
	// ActionReload means the lines or status changed and should be redrawn
	ActionReload Action = iota
	// ActionExit means the session is finished and the result is ready
	ActionExit
)

// Session is the editing state machine for one item set.
// It is not safe for concurrent use; the host delivers events one at a time.
type Session struct {
	set      *items.Set
	state    State
	position int
	finished bool

	// Derived from (state, set) by render. Never assigned elsewhere.
	lines  []string
	status string
}

// New creates a session in the browsing state. The session takes ownership
// of set and mutates it in place.
func New(set *items.Set) *Session {
	s := &Session{set: set, position: -1}
	s.render()
	return s
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Position returns the index of the item being edited. ok is false while
// browsing.
func (s *Session) Position() (pos int, ok bool) {
	if s.state != StateEditing {
		return -1, false
	}
	return s.position, true
}

// Lines returns the selectable lines for the current state
func (s *Session) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Status returns the status message for the current state
func (s *Session) Status() string {
	return s.status
}

// Title returns a short heading for the current state
func (s *Session) Title() string {
	if s.state == StateEditing {
		return "editing " + s.set.At(s.position).Name
	}
	return "edit"
}

// Items returns the item set being edited
func (s *Session) Items() *items.Set {
	return s.set
}

// Finished reports whether Finalize has been called
func (s *Session) Finished() bool {
	return s.finished
}

// AcceptsFreeText reports whether the item being edited takes typed input
// (Int, Float, String) rather than a selected row.
func (s *Session) AcceptsFreeText() bool {
	if s.state != StateEditing {
		return false
	}
	switch s.set.At(s.position).Item.(type) {
	case *items.Int, *items.Float, *items.String:
		return true
	case *items.Bool, *items.Enum:
		return false
	default:
		panic(fmt.Sprintf("session: unknown item type %T", s.set.At(s.position).Item))
	}
}

// EnterEdit starts editing the item at pos and returns its current value as
// text, for pre-filling an input field.
func (s *Session) EnterEdit(pos int) (string, error) {
	if err := s.require("EnterEdit", StateBrowsing); err != nil {
		return "", err
	}
	if pos < 0 || pos >= s.set.Len() {
		return "", &InvariantError{
			Op:     "EnterEdit",
			State:  s.state,
			Reason: fmt.Sprintf("position %d out of range for %d item(s)", pos, s.set.Len()),
		}
	}

	s.transition(StateEditing, pos)
	return s.set.At(pos).Item.Text(), nil
}

// CommitEdit applies an edit to the item being edited and returns to
// browsing. A validation error leaves the item unchanged and the session in
// the editing state.
func (s *Session) CommitEdit(edit items.Edit) error {
	if err := s.require("CommitEdit", StateEditing); err != nil {
		return err
	}

	entry := s.set.At(s.position)
	kind := string(entry.Item.Kind())
	before := entry.Item.Text()

	if _, err := items.Commit(entry.Item, edit); err != nil {
		logging.LogRejected(entry.Name, kind, err)
		return fmt.Errorf("%s: %w", entry.Name, err)
	}

	logging.LogCommit(entry.Name, kind, before, entry.Item.Text())
	s.transition(StateBrowsing, -1)
	return nil
}

// CancelEdit abandons the current edit and returns to browsing
func (s *Session) CancelEdit() error {
	if err := s.require("CancelEdit", StateEditing); err != nil {
		return err
	}
	s.transition(StateBrowsing, -1)
	return nil
}

// Finalize ends the session and returns the edited set. It is only valid
// while browsing; afterwards every operation fails.
func (s *Session) Finalize() (*items.Set, error) {
	if err := s.require("Finalize", StateBrowsing); err != nil {
		return nil, err
	}
	s.finished = true
	logging.Debug("Session finalized")
	return s.set, nil
}

// Select handles the user picking a line. While browsing, the last line
// (Apply) finalizes the session and any other line starts editing that item.
// While editing, the last line (Cancel) abandons the edit and any other line
// is committed as a selection.
func (s *Session) Select(row int) (Action, error) {
	last := len(s.lines) - 1

	if s.finished {
		return ActionExit, &InvariantError{Op: "Select", State: s.state, Reason: "session already finalized"}
	}

	switch s.state {
	case StateBrowsing:
		if row == last {
			if _, err := s.Finalize(); err != nil {
				return ActionExit, err
			}
			return ActionExit, nil
		}
		if _, err := s.EnterEdit(row); err != nil {
			return ActionReload, err
		}
		return ActionReload, nil

	case StateEditing:
		if row == last {
			return ActionReload, s.CancelEdit()
		}
		return ActionReload, s.CommitEdit(items.Selected(row))

	default:
		panic(fmt.Sprintf("session: unknown state %v", s.state))
	}
}

// Submit handles free text entered by the user. It is ignored while
// browsing.
func (s *Session) Submit(text string) (Action, error) {
	if s.finished {
		return ActionExit, &InvariantError{Op: "Submit", State: s.state, Reason: "session already finalized"}
	}
	if s.state == StateBrowsing {
		return ActionReload, nil
	}
	return ActionReload, s.CommitEdit(items.Typed(text))
}

// Cancel handles the user backing out. While editing it abandons the edit;
// while browsing it ends the session exactly as Apply does.
func (s *Session) Cancel() (Action, error) {
	if s.finished {
		return ActionExit, &InvariantError{Op: "Cancel", State: s.state, Reason: "session already finalized"}
	}
	if s.state == StateEditing {
		return ActionReload, s.CancelEdit()
	}
	if _, err := s.Finalize(); err != nil {
		return ActionExit, err
	}
	return ActionExit, nil
}

// Complete returns the text of a line for completion into the input field.
// ok is false when row is out of range.
func (s *Session) Complete(row int) (text string, ok bool) {
	if row < 0 || row >= len(s.lines) {
		return "", false
	}
	return s.lines[row], true
}

// require checks the session is live and in the wanted state
func (s *Session) require(op string, want State) error {
	if s.finished {
		return &InvariantError{Op: op, State: s.state, Reason: "session already finalized"}
	}
	if s.state != want {
		return &InvariantError{Op: op, State: s.state}
	}
	return nil
}

func (s *Session) transition(to State, pos int) {
	logging.LogTransition(s.state.String(), to.String(), pos)
	s.state = to
	s.position = pos
	s.render()
}

// render recomputes lines and status from the state and the item set
func (s *Session) render() {
	if s.state == StateBrowsing {
		s.lines = append(s.set.Lines(), ApplyLine)
		s.status = ""
		return
	}

	it := s.set.At(s.position).Item
	s.status = "Old value: " + it.Text()

	var lines []string
	switch v := it.(type) {
	case *items.Bool:
		lines = []string{"true", "false"}
	case *items.Int:
		s.status += ";" + boundsText(v.Min, v.Max, items.FormatInt)
	case *items.Float:
		s.status += ";" + boundsText(v.Min, v.Max, items.FormatFloat)
	case *items.String:
	case *items.Enum:
		lines = append(lines, v.Options...)
	default:
		panic(fmt.Sprintf("session: unknown item type %T", it))
	}
	s.lines = append(lines, CancelLine)
}

func boundsText[T int64 | float64](min, max *T, format func(T) string) string {
	var b strings.Builder
	if min != nil {
		fmt.Fprintf(&b, " Min: %s;", format(*min))
	}
	if max != nil {
		fmt.Fprintf(&b, " Max: %s;", format(*max))
	}
	return b.String()
}
