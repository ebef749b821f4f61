// Package config manages the cfgedit preferences file.
//
// Preferences are stored as YAML in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/cfgedit/config.yaml or $HOME/.config/cfgedit/config.yaml
//   - macOS: $HOME/.config/cfgedit/config.yaml
//   - Windows: %LOCALAPPDATA%\cfgedit\config.yaml
//
// CFGEDIT_CONFIG overrides the path. A missing file means the built-in
// defaults, and fields absent from the file keep their defaults.
//
// # Usage Example
//
//	prefs, err := config.LoadPreferences()
//	if err != nil {
//	    return err
//	}
//	format := prefs.Format()
//
//	prefs.FuzzyFilter = false
//	if err := prefs.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global preferences use sync.Once for initialization and file writes
// are serialized by a mutex and performed atomically via rename.
package config
