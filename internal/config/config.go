package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout is the timeout for the single page-creation request.
	// The Notion API can take several seconds to materialize a large page,
	// so the timeout is generous; there is only one request per run, so a
	// long wait costs nothing in aggregate.
	DefaultTimeout = 30 * time.Second

	// AppName is the application name used for XDG directory paths.
	AppName = "notion-template"

	// EnvAPIKey is the environment variable holding the Notion API key
	// (an internal integration secret).
	EnvAPIKey = "NOTION_API_KEY"

	// EnvParentPageID is the environment variable holding the destination
	// parent page identifier.
	EnvParentPageID = "NOTION_PARENT_PAGE_ID"
)

// Credentials authenticate one generation run: an opaque bearer token and
// the identifier of the page the new page is created under.
//
// Credentials are immutable for the lifetime of a run and are never
// persisted by the tool itself. They may arrive from a config file the
// user wrote, but the tool only reads such files.
type Credentials struct {
	// APIKey is the Notion internal integration secret, sent as a bearer
	// token on the page-creation request. Never logged; see the log
	// package's masking handler.
	APIKey string

	// ParentPageID identifies the existing page the generated page is
	// inserted under. Accepted as either the bare 32-character hex tail
	// of a page URL or a dashed UUID.
	ParentPageID string
}

// Config holds all options for one generation run. It is populated from
// CLI flags and the resolution chain, then passed through the application
// by value rather than read from global state.
type Config struct {
	// Credentials for the API call.
	Credentials Credentials

	// Timeout is the timeout for the page-creation request.
	Timeout time.Duration

	// TemplatePath is the path to a template definition file. Empty means
	// use the embedded Life Design template.
	TemplatePath string

	// ConfigFilePath is an explicit configuration file path. Empty means
	// search the standard locations (current directory, home directory,
	// XDG config directory).
	ConfigFilePath string

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a Config with default values. Credentials start empty
// and are filled in by ResolveCredentials.
func NewConfig() *Config {
	return &Config{
		Timeout: DefaultTimeout,
	}
}

// Validate checks the configuration after resolution. It returns the
// first error found; fixing one error often makes the rest irrelevant.
func (c *Config) Validate() error {
	if c.Credentials.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Credentials.ParentPageID == "" {
		return ErrMissingParentPageID
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for the tool.
// On Linux: ~/.config/notion-template
// On macOS: ~/Library/Application Support/notion-template
// On Windows: %APPDATA%\notion-template
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
