// Package ui renders the non-interactive terminal output of cfgedit.
//
// Standard output carries the edited document, so everything here writes to
// stderr by default: the --example boxes, fatal error boxes with
// troubleshooting hints, and confirmation prompts. Styling uses Lipgloss and
// widths follow the terminal attached to stderr.
//
//	p := ui.NewPrinter(nil)
//	if err != nil {
//	    p.PrintError("Malformed input", err, items.GetTroubleshootingHint(err))
//	}
//
// The interactive editor lives in package tui and shares this palette.
package ui
