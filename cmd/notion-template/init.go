package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/notion-template.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new notion-template configuration file",
		Long: `Initialize creates a new .notion-template.yaml configuration file in the
current directory.

The generated file includes:
- Commented placeholders for the API key and parent page ID
- Documentation for all available options
- Instructions for obtaining credentials from Notion

Examples:
  # Create .notion-template.yaml in current directory
  notion-template init

  # Create config file at a specific path
  notion-template init -o myconfig.yaml

  # Force overwrite existing file
  notion-template init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/notion-template.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The config file may hold the integration secret, so restrict it to
	// the owner.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to set:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - api_key: your internal integration secret (notion.so/my-integrations)")
	fmt.Fprintln(cmd.OutOrStdout(), "  - parent_page_id: the ID from your destination page's URL")

	return nil
}
