package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "cfgedit"
	configFile = "config.yaml"
	logFile    = "cfgedit.log"

	// PathEnvVar overrides the preferences file location
	PathEnvVar = "CFGEDIT_CONFIG"
)

var (
	// Global preferences (loaded lazily)
	globalPrefs     *Preferences
	globalPrefsOnce sync.Once
	globalPrefsErr  error

	fileMutex sync.Mutex
)

// ErrExists is returned by WriteDefault when a preferences file is present
var ErrExists = errors.New("preferences file already exists")

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/cfgedit or $HOME/.config/cfgedit
//   - macOS: $HOME/.config/cfgedit
//   - Windows: %LOCALAPPDATA%\cfgedit
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the preferences file path. CFGEDIT_CONFIG wins over
// the platform directory.
func GetConfigPath() (string, error) {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// DefaultLogPath returns the log file used when a log level is set without a
// file. It sits next to the preferences file; the directory is created.
func DefaultLogPath() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, logFile), nil
}

// LoadPreferences returns the global preferences, reading them from disk on
// first use. A missing file yields the defaults.
func LoadPreferences() (*Preferences, error) {
	globalPrefsOnce.Do(func() {
		globalPrefs, globalPrefsErr = loadFromDisk()
	})
	return globalPrefs, globalPrefsErr
}

// ReloadPreferences discards the cached preferences and reads them again
func ReloadPreferences() (*Preferences, error) {
	fileMutex.Lock()
	globalPrefsOnce = sync.Once{}
	fileMutex.Unlock()
	return LoadPreferences()
}

func loadFromDisk() (*Preferences, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return NewPreferences(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults
	prefs := NewPreferences()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return prefs, nil
}

// Save writes the preferences atomically
func (p *Preferences) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := p.Marshal()
	if err != nil {
		return err
	}

	header := []byte(`# cfgedit preferences
# Command line flags override every value here.
#
# Location: ` + configPath + `

`)
	data = append(header, data...)

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// Marshal returns the YAML encoding of the preferences
func (p *Preferences) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault saves the built-in defaults unless a file already exists,
// in which case ErrExists is returned. force overwrites.
func WriteDefault(force bool) (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, ErrExists
		}
	}
	return configPath, NewPreferences().Save()
}
