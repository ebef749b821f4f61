package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/muurk/cfgedit/internal/config"
	"github.com/muurk/cfgedit/internal/input"
	"github.com/muurk/cfgedit/internal/items"
	"github.com/muurk/cfgedit/internal/logging"
	"github.com/muurk/cfgedit/internal/output"
	"github.com/muurk/cfgedit/internal/tui"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"aborted", tui.ErrAborted, exitAborted},
		{"wrapped abort", fmt.Errorf("edit: %w", tui.ErrAborted), exitAborted},
		{"usage", input.NewUsageError("no input source"), exitUsage},
		{"malformed", items.NewMalformedInputError("bad document", nil), exitFailure},
		{"other", errors.New("boom"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

// newFlagCommand binds the editor flags to a fresh command so tests can
// parse arguments without touching rootCmd
func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	outFormat, outSingleObj, altScreen, fuzzyFilter = "", false, true, true
	logLevel, logFile = "", ""

	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.StringVar(&outFormat, "out-format", "", "")
	f.BoolVar(&outSingleObj, "out-singleobj", false, "")
	f.BoolVar(&altScreen, "alt-screen", true, "")
	f.BoolVar(&fuzzyFilter, "fuzzy", true, "")
	f.StringVar(&logLevel, "log-level", "", "")
	f.StringVar(&logFile, "log-file", "", "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	return cmd
}

func TestResolveSettings_PreferencesApplyWithoutFlags(t *testing.T) {
	t.Setenv(logging.LogLevelEnvVar, "")
	t.Setenv(logging.LogFileEnvVar, "")

	prefs := config.NewPreferences()
	prefs.OutputFormat = "yaml"
	prefs.SingleObject = true
	prefs.AltScreen = false
	prefs.LogLevel = "warn"

	s, err := resolveSettings(newFlagCommand(t), prefs)
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if s.Output.Format != output.FormatYAML {
		t.Errorf("format = %q, want yaml", s.Output.Format)
	}
	if !s.Output.SingleObject {
		t.Error("single object should come from preferences")
	}
	if s.AltScreen {
		t.Error("alt screen should come from preferences")
	}
	if !s.Fuzzy {
		t.Error("fuzzy should keep the default")
	}
	if s.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", s.LogLevel)
	}
}

func TestResolveSettings_FlagsOverridePreferences(t *testing.T) {
	t.Setenv(logging.LogLevelEnvVar, "info")
	t.Setenv(logging.LogFileEnvVar, "")

	prefs := config.NewPreferences()
	prefs.OutputFormat = "yaml"
	prefs.SingleObject = true
	prefs.LogLevel = "warn"

	cmd := newFlagCommand(t, "--out-format=json", "--out-singleobj=false", "--fuzzy=false", "--log-level=debug")
	s, err := resolveSettings(cmd, prefs)
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if s.Output.Format != output.FormatJSON {
		t.Errorf("format = %q, want json", s.Output.Format)
	}
	if s.Output.SingleObject {
		t.Error("--out-singleobj=false should override preferences")
	}
	if s.Fuzzy {
		t.Error("--fuzzy=false should override preferences")
	}
	if s.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", s.LogLevel)
	}
}

func TestResolveSettings_EnvironmentOverridesPreferenceLogging(t *testing.T) {
	t.Setenv(logging.LogLevelEnvVar, "error")
	t.Setenv(logging.LogFileEnvVar, "/tmp/cfgedit.log")

	prefs := config.NewPreferences()
	prefs.LogLevel = "debug"
	prefs.LogFile = "/var/log/other.log"

	s, err := resolveSettings(newFlagCommand(t), prefs)
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}
	if s.LogLevel != "error" {
		t.Errorf("log level = %q, want error", s.LogLevel)
	}
	if s.LogFile != "/tmp/cfgedit.log" {
		t.Errorf("log file = %q, want /tmp/cfgedit.log", s.LogFile)
	}
}

func TestResolveSettings_BadFormatIsUsageError(t *testing.T) {
	_, err := resolveSettings(newFlagCommand(t, "--out-format=toml"), config.NewPreferences())
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !input.IsUsageError(err) {
		t.Errorf("error should be a usage error, got %T: %v", err, err)
	}
	if exitCode(err) != exitUsage {
		t.Errorf("exitCode() = %d, want %d", exitCode(err), exitUsage)
	}
}

func TestLogDestination(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.PathEnvVar, filepath.Join(dir, "config.yaml"))

	tests := []struct {
		name string
		s    settings
		want string
	}{
		{"silent", settings{}, ""},
		{"explicit file", settings{LogLevel: "debug", LogFile: "/tmp/x.log"}, "/tmp/x.log"},
		{"level without file", settings{LogLevel: "debug"}, filepath.Join(dir, "cfgedit.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := logDestination(tt.s)
			if err != nil {
				t.Fatalf("logDestination() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("logDestination() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunEdit_MissingSourceBeforePreferences(t *testing.T) {
	broken := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(broken, []byte("version: [not a number\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(config.PathEnvVar, broken)

	useStdin, inputFile, inputLiteral, showExample = false, "", "", false

	err := runEdit(&cobra.Command{Use: "test"}, nil)
	if !input.IsUsageError(err) {
		t.Fatalf("runEdit() error = %v, want a usage error", err)
	}
	if exitCode(err) != exitUsage {
		t.Errorf("exitCode() = %d, want %d", exitCode(err), exitUsage)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty() = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty() = %q, want empty", got)
	}
}
