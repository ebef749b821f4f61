package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled, non-interactive output. cfgedit prints everything
// except the result document to stderr, so that is the default.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer that writes to w (os.Stderr when nil)
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{out: w, width: GetTerminalWidth()}
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintError prints a fatal error box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// PrintExample prints the example input and output documents
func (p *Printer) PrintExample() error {
	content, err := RenderExample(p.width)
	if err != nil {
		return err
	}
	p.Println(content)
	return nil
}

// RenderBox renders a titled box around body
func RenderBox(title, command, body string, color lipgloss.Color, width int) string {
	parts := []string{HeaderTitleStyle.Render(strings.ToUpper(title))}
	if command != "" {
		parts = append(parts, HeaderCommandStyle.Render(command))
	}
	parts = append(parts, RenderHorizontalDivider(width-6, "─"), body)

	return BoxStyle(width, color).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// RenderErrorBox renders an error box with an optional troubleshooting list
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	lines := []string{ErrorTitleStyle.Render("   " + FailureMarker + "  FAILED  ─  " + title), ""}

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Width(width-10).Render("   Error: "+err.Error()), "")
	}

	if len(troubleshooting) > 0 {
		tips := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range troubleshooting {
			tips = append(tips, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(tips, "\n")))
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
