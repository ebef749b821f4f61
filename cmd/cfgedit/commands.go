package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/cfgedit/internal/config"
	"github.com/muurk/cfgedit/internal/input"
	"github.com/muurk/cfgedit/internal/logging"
	"github.com/muurk/cfgedit/internal/output"
	"github.com/muurk/cfgedit/internal/session"
	"github.com/muurk/cfgedit/internal/tui"
	"github.com/muurk/cfgedit/internal/ui"
)

// Editor flags
var (
	useStdin     bool
	inputFile    string
	inputLiteral string
	inSingleObj  bool
	outSingleObj bool
	outFormat    string
	showExample  bool
	altScreen    bool
	fuzzyFilter  bool
	logLevel     string
	logFile      string
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&useStdin, "stdin", false, "Read the item document from stdin, until a blank line or EOF")
	f.StringVar(&inputFile, "file", "", "Read the item document from a JSON or YAML file")
	f.StringVar(&inputLiteral, "input", "", "Read the item document from this JSON string")
	f.BoolVar(&inSingleObj, "in-singleobj", false, `Accept {"name": item} input instead of the array`)
	f.BoolVar(&outSingleObj, "out-singleobj", false, `Write {"name": item} instead of the array (see --example)`)
	f.StringVar(&outFormat, "out-format", "", "Output format: json or yaml (default from preferences, else json)")
	f.BoolVar(&showExample, "example", false, "Print a sample input and output, then exit")
	f.BoolVar(&altScreen, "alt-screen", true, "Run the editor in the alternate screen buffer")
	f.BoolVar(&fuzzyFilter, "fuzzy", true, "Fuzzy line filtering (substring matching when false)")
	f.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default silent)")
	f.StringVar(&logFile, "log-file", "", "Write logs to this file (default cfgedit.log next to the preferences file)")
}

// settings is the effective configuration after applying flags over
// preferences
type settings struct {
	Output    output.Options
	AltScreen bool
	Fuzzy     bool
	LogLevel  string
	LogFile   string
}

// resolveSettings merges preferences with the flags the user actually set.
// Logging follows flag, then environment, then preferences.
func resolveSettings(cmd *cobra.Command, prefs *config.Preferences) (settings, error) {
	s := settings{
		Output: output.Options{
			Format:       prefs.Format(),
			SingleObject: prefs.SingleObject,
		},
		AltScreen: prefs.AltScreen,
		Fuzzy:     prefs.FuzzyFilter,
		LogLevel:  firstNonEmpty(logLevel, os.Getenv(logging.LogLevelEnvVar), prefs.LogLevel),
		LogFile:   firstNonEmpty(logFile, os.Getenv(logging.LogFileEnvVar), prefs.LogFile),
	}

	flags := cmd.Flags()
	if flags.Changed("out-format") {
		format, err := output.ParseFormat(outFormat)
		if err != nil {
			return settings{}, input.NewUsageError("%v", err)
		}
		s.Output.Format = format
	}
	if flags.Changed("out-singleobj") {
		s.Output.SingleObject = outSingleObj
	}
	if flags.Changed("alt-screen") {
		s.AltScreen = altScreen
	}
	if flags.Changed("fuzzy") {
		s.Fuzzy = fuzzyFilter
	}

	return s, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	if showExample {
		return ui.NewPrinter(cmd.ErrOrStderr()).PrintExample()
	}

	src, err := input.SelectSource(useStdin, inputFile, inputLiteral)
	if err != nil {
		return err
	}

	prefs, err := config.LoadPreferences()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	s, err := resolveSettings(cmd, prefs)
	if err != nil {
		return err
	}

	logPath, err := logDestination(s)
	if err != nil {
		return err
	}
	if err := logging.Initialize(logging.Options{Level: s.LogLevel, File: logPath}); err != nil {
		return err
	}

	// Past argument parsing
	cmd.SilenceUsage = true

	set, err := input.Load(src, input.Options{
		Stdin:        cmd.InOrStdin(),
		Hint:         cmd.ErrOrStderr(),
		SingleObject: inSingleObj,
	})
	if err != nil {
		return err
	}

	result, err := tui.Run(session.New(set), tui.Options{
		AltScreen: s.AltScreen,
		Fuzzy:     s.Fuzzy,
		InputTTY:  src.Kind == input.KindStdin,
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	logging.Info("Writing result",
		zap.String("format", string(s.Output.Format)),
		zap.Bool("single_object", s.Output.SingleObject),
	)
	return output.Write(cmd.OutOrStdout(), result, s.Output)
}

// logDestination picks the log file. The editor owns stderr, so a level set
// without a file logs next to the preferences file.
func logDestination(s settings) (string, error) {
	if s.LogLevel == "" || s.LogFile != "" {
		return s.LogFile, nil
	}
	return config.DefaultLogPath()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
