package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".notion-template.yaml"

// Duration wraps time.Duration with YAML support for Go duration strings
// such as "45s" or "1m30s". yaml.v3 only decodes durations from integer
// nanoseconds, which nobody writes by hand.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// File is the on-disk YAML configuration. All fields are optional; values
// present here sit below environment variables in the resolution order,
// so a config file is a convenience, never an override.
type File struct {
	// APIKey is the Notion internal integration secret.
	APIKey string `yaml:"api_key"`

	// ParentPageID is the destination parent page identifier.
	ParentPageID string `yaml:"parent_page_id"`

	// Timeout overrides the default request timeout when positive.
	Timeout Duration `yaml:"timeout"`

	// Template is a path to a template definition file. Relative paths
	// are resolved against the working directory, not the config file.
	Template string `yaml:"template"`
}

// LoadConfigFile loads a configuration from a YAML file. If the file does
// not exist it returns ErrConfigNotFound; callers decide whether that is
// fatal based on whether the path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .notion-template.yaml in the current directory
//  3. Look for .notion-template.yaml in the user's home directory
//  4. Look for .notion-template.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), DefaultConfigFile))

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
