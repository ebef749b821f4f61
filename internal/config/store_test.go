package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/cfgedit/internal/output"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "cfgedit") {
		t.Errorf("GetConfigDir() = %v, should contain 'cfgedit'", configDir)
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		if os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join("/tmp/xdg", "cfgedit") {
		t.Errorf("GetConfigDir() = %v, want /tmp/xdg/cfgedit", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(PathEnvVar, "")
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Setenv(PathEnvVar, "/etc/cfgedit.yaml")
	configPath, err = GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if configPath != "/etc/cfgedit.yaml" {
		t.Errorf("GetConfigPath() = %v, want the %s override", configPath, PathEnvVar)
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(PathEnvVar, filepath.Join(dir, "config.yaml"))

	logPath, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath() error = %v", err)
	}
	if want := filepath.Join(dir, "cfgedit.log"); logPath != want {
		t.Errorf("DefaultLogPath() = %v, want %v", logPath, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("log directory should exist, stat error = %v", err)
	}
}

func TestNewPreferences(t *testing.T) {
	p := NewPreferences()

	if p.Version != CurrentVersion {
		t.Errorf("Version = %v, want %v", p.Version, CurrentVersion)
	}
	if p.Format() != output.FormatJSON {
		t.Errorf("Format() = %v, want json", p.Format())
	}
	if !p.AltScreen {
		t.Error("AltScreen should be true by default")
	}
	if !p.FuzzyFilter {
		t.Error("FuzzyFilter should be true by default")
	}
	if p.SingleObject {
		t.Error("SingleObject should be false by default")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestPreferencesValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *Preferences)
		wantErr bool
	}{
		{"defaults", func(p *Preferences) {}, false},
		{"yaml format", func(p *Preferences) { p.OutputFormat = "yaml" }, false},
		{"unknown format", func(p *Preferences) { p.OutputFormat = "toml" }, true},
		{"future version", func(p *Preferences) { p.Version = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPreferences()
			tt.modify(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv(PathEnvVar, path)

	p := NewPreferences()
	p.OutputFormat = "yaml"
	p.SingleObject = true
	p.FuzzyFilter = false
	p.LogLevel = "debug"

	if err := p.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !strings.HasPrefix(string(data), "# cfgedit preferences") {
		t.Errorf("saved file should start with header comment, got:\n%s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	loaded, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}
	if *loaded != *p {
		t.Errorf("loaded preferences = %+v, want %+v", *loaded, *p)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(PathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))

	p, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}
	if *p != *NewPreferences() {
		t.Errorf("missing file should give defaults, got %+v", *p)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(PathEnvVar, path)
	if err := os.WriteFile(path, []byte("version: 1\noutput_format: yaml\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := ReloadPreferences()
	if err != nil {
		t.Fatalf("ReloadPreferences() error = %v", err)
	}
	if p.Format() != output.FormatYAML {
		t.Errorf("Format() = %v, want yaml", p.Format())
	}
	if !p.AltScreen || !p.FuzzyFilter {
		t.Errorf("unspecified fields should keep defaults, got %+v", *p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "version: [1"},
		{"bad version", "version: 7\n"},
		{"bad format", "version: 1\noutput_format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			t.Setenv(PathEnvVar, path)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			if _, err := ReloadPreferences(); err == nil {
				t.Error("ReloadPreferences() should fail")
			}
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(PathEnvVar, path)

	got, err := WriteDefault(false)
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if got != path {
		t.Errorf("WriteDefault() path = %v, want %v", got, path)
	}

	if _, err := WriteDefault(false); !errors.Is(err, ErrExists) {
		t.Errorf("second WriteDefault() error = %v, want ErrExists", err)
	}
	if _, err := WriteDefault(true); err != nil {
		t.Errorf("forced WriteDefault() error = %v", err)
	}
}
