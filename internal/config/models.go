package config

import (
	"fmt"

	"github.com/muurk/cfgedit/internal/output"
)

// CurrentVersion is the preferences file format version
const CurrentVersion = 1

// Preferences are the user defaults for cfgedit. Command line flags
// override every field.
type Preferences struct {
	Version      int    `yaml:"version"`
	OutputFormat string `yaml:"output_format"`       // json or yaml
	SingleObject bool   `yaml:"single_object"`       // write {"name": item} instead of the array
	AltScreen    bool   `yaml:"alt_screen"`          // run the editor in the alternate screen buffer
	FuzzyFilter  bool   `yaml:"fuzzy_filter"`        // fuzzy line filtering; substring when false
	LogLevel     string `yaml:"log_level,omitempty"` // debug, info, warn or error
	LogFile      string `yaml:"log_file,omitempty"`
}

// NewPreferences returns the built-in defaults
func NewPreferences() *Preferences {
	return &Preferences{
		Version:      CurrentVersion,
		OutputFormat: string(output.FormatJSON),
		AltScreen:    true,
		FuzzyFilter:  true,
	}
}

// Validate checks the values read from disk
func (p *Preferences) Validate() error {
	if p.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", p.Version, CurrentVersion)
	}
	if _, err := output.ParseFormat(p.OutputFormat); err != nil {
		return fmt.Errorf("output_format: %w", err)
	}
	return nil
}

// Format returns the preferred output format
func (p *Preferences) Format() output.Format {
	f, err := output.ParseFormat(p.OutputFormat)
	if err != nil {
		return output.FormatJSON
	}
	return f
}
