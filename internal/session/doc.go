// Package session implements the editing state machine behind cfgedit.
//
// A Session starts in the browsing state, listing one "name: value" line per
// item followed by an Apply line. Selecting an item moves to the editing
// state, whose lines depend on the item type:
//
//	Bool     true, false, Cancel
//	Int      Cancel            (value typed as free text)
//	Float    Cancel            (value typed as free text)
//	String   Cancel            (value typed as free text)
//	Enum     <options...>, Cancel
//
// The status line shows the old value and, for numbers, the bounds:
//
//	Old value: 5; Min: 0; Max: 10;
//
// Hosts drive the session with three events and redraw or exit according to
// the returned Action:
//
//	act, err := sess.Select(row)  // a line was picked
//	act, err := sess.Submit(text) // free text was entered
//	act, err := sess.Cancel()     // the user backed out
//
// A validation error from a commit keeps the session in the editing state so
// the user can try again. Calling an operation in the wrong state returns an
// InvariantError.
package session
