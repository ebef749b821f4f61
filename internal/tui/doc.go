// Package tui hosts an editing session in a Bubble Tea program.
//
// The screen shows the session title, an input line, the status message and
// the current lines. Typing filters the lines (fuzzy by default); while a
// number or string item is being edited the same input holds the value to
// submit.
//
// # Keys
//
//   - up/down, ctrl+p/ctrl+n: move the cursor
//   - enter: select the highlighted line. While a number or string is
//     being edited, enter submits the text unless up/down picked a line.
//   - alt+enter, ctrl+s: submit the text
//   - tab: copy the highlighted line into the input
//   - esc: leave the current edit, or finish from the item list
//   - ctrl+c: quit without output
//
// # Usage
//
//	set, err := tui.Run(session.New(set), tui.Options{AltScreen: true, Fuzzy: true})
//	if errors.Is(err, tui.ErrAborted) {
//	    return nil
//	}
//
// The program renders to stderr so stdout stays free for the result.
package tui
