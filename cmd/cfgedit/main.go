// Cfgedit is an interactive editor for typed configuration items.
//
// It reads a JSON document describing named items (Bool, Int, Float,
// String, Enum), lets the user browse and change them in a terminal UI, and
// writes the edited document to stdout in the same shape.
//
// Usage:
//
//	cfgedit --file items.json > edited.json
//	producer | cfgedit --stdin --out-singleobj
//
// See 'cfgedit --help' and 'cfgedit --example'.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/cfgedit/internal/input"
	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/logging"
	"github.com/muurk/cfgedit/internal/tui"
	"github.com/muurk/cfgedit/internal/ui"
	"github.com/muurk/cfgedit/internal/version"
)

// Exit statuses
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitAborted = 130
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	logging.Sync()
	os.Exit(exitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "cfgedit",
	Short: "Interactive editor for typed configuration items",
	Long: `Edit a list of typed, named configuration values in the terminal.

The input document is a JSON array of {"name": ..., "item": {...}} objects
where each item is one of Bool, Int, Float, String or Enum. Pick an item to
change it, then choose Apply (or press esc) to write the edited document to
stdout. ctrl+c quits without output.

Exactly one input source is required: --stdin, --file or --input.`,
	Example: `  # Edit a file and capture the result
  cfgedit --file items.json > edited.json

  # Read from a pipe until a blank line
  generate-items | cfgedit --stdin

  # Write {"name": item} instead of the array, as YAML
  cfgedit --file items.yaml --out-singleobj --out-format yaml

  # Show a sample document
  cfgedit --example`,
	Version:       version.Get().Version,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return input.NewUsageError("unexpected argument %q", args[0])
		}
		return nil
	},
	RunE: runEdit,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return input.NewUsageError("%v", err)
	})

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get())
	},
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, tui.ErrAborted):
		return exitAborted
	case input.IsUsageError(err):
		return exitUsage
	default:
		return exitFailure
	}
}

// reportError prints err to stderr in the form that suits its type
func reportError(err error) {
	switch {
	case errors.Is(err, tui.ErrAborted):
		// The user asked to leave; nothing to report
	case input.IsUsageError(err):
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'cfgedit --help' for usage.\n", err)
	case items.IsMalformedInput(err):
		ui.NewPrinter(os.Stderr).PrintError("Malformed input", err, items.GetTroubleshootingHint(err))
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
