package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/config"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/log"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/notion"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/template"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create the Life Design dashboard page in your Notion workspace",
		Long: `Generate builds the Life Design dashboard template and creates it as a new
page under the configured parent page with a single Notion API call.

The parent page must be shared with your integration, or the API rejects
the request. Re-running generate creates a new page each time; the Notion
API offers no idempotency for page creation, so this tool never updates or
deduplicates earlier runs.

Examples:
  # Create the default Life Design dashboard
  notion-template generate

  # Pass credentials explicitly instead of using the environment
  notion-template generate --api-key secret_xxx --parent-page 059af7e3f1c84f95b5f5db4e053526eb

  # Use a custom template definition
  notion-template generate --template my-template.yaml

  # Inspect the exact payload without creating anything
  notion-template generate --dry-run

Configuration file (.notion-template.yaml) example:
  api_key: secret_xxx
  parent_page_id: 059af7e3f1c84f95b5f5db4e053526eb
  timeout: 45s
  template: my-template.yaml`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	// Credential flags (highest-priority source)
	cmd.Flags().StringP("api-key", "k", "",
		"Notion API key (internal integration secret)")
	cmd.Flags().StringP("parent-page", "p", "",
		"Parent page ID (32 hex characters from the page URL, dashes allowed)")

	// Generation flags
	cmd.Flags().StringP("template", "t", "",
		"Template definition file (default: embedded Life Design template)")
	cmd.Flags().Duration("timeout", config.DefaultTimeout,
		"Timeout for the page-creation request")
	cmd.Flags().Bool("dry-run", false,
		"Build and print the request payload without creating anything")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .notion-template.yaml in current dir, home dir, or XDG config dir)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	cfg, file, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Set up structured logging with credential masking
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Resolve credentials from flags, environment, config file, prompt.
	// Dry runs skip the API key entirely; nothing is transmitted.
	flagAPIKey, err := cmd.Flags().GetString("api-key")
	if err != nil {
		return err
	}
	flagParentPage, err := cmd.Flags().GetString("parent-page")
	if err != nil {
		return err
	}
	cfg.Credentials, err = config.ResolveCredentials(config.ResolveInput{
		FlagAPIKey:       flagAPIKey,
		FlagParentPageID: flagParentPage,
		File:             file,
		Prompter:         config.NewPrompter(),
		SkipAPIKey:       dryRun,
	})
	if err != nil {
		return err
	}

	if !dryRun {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	// Set up context with signal handling so an interrupt aborts the
	// in-flight request instead of leaving it dangling.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runGenerate(ctx, cmd, cfg, dryRun, logger)
}

// buildConfig creates a Config from cobra command flags and the
// configuration file, and returns the loaded file for credential
// resolution. Flags win over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, *config.File, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	cfg.TemplatePath, err = cmd.Flags().GetString("template")
	if err != nil {
		return nil, nil, err
	}
	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, nil, err
	}

	// If the user explicitly specified a config file, a missing file is
	// an error; otherwise a missing file just means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	var file *config.File
	if configPath != "" {
		file, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// File values fill in flags the user did not set
	if file != nil {
		if cfg.TemplatePath == "" {
			cfg.TemplatePath = file.Template
		}
		if !cmd.Flags().Changed("timeout") && file.Timeout > 0 {
			cfg.Timeout = time.Duration(file.Timeout)
		}
	}

	return cfg, file, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadTemplate loads the template definition from the configured path, or
// the embedded Life Design template when no path is set.
func loadTemplate(cfg *config.Config) (*template.Definition, error) {
	if cfg.TemplatePath != "" {
		return template.LoadFile(cfg.TemplatePath)
	}
	return template.Default(), nil
}

// runGenerate builds the page payload and either prints it (dry run) or
// transmits it with a single API call.
func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dryRun bool, logger *slog.Logger) error {
	def, err := loadTemplate(cfg)
	if err != nil {
		return err
	}

	page := def.Build(cfg.Credentials.ParentPageID)
	if err := page.Validate(); err != nil {
		return fmt.Errorf("invalid page payload: %w", err)
	}

	logger.Debug("page payload built",
		"title", page.Title(),
		"blocks", len(page.Children),
		"parent_page_id", page.Parent.PageID,
	)

	if dryRun {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(page)
	}

	client := notion.NewClient(cfg.Credentials.APIKey, notion.WithTimeout(cfg.Timeout))

	fmt.Fprintf(cmd.OutOrStdout(), "Creating %q...\n", page.Title())
	startTime := time.Now()

	created, err := client.CreatePage(ctx, page)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(cmd.OutOrStdout(), "✨ Template created successfully in %s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(cmd.OutOrStdout(), "Page ID:  %s\n", created.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Page URL: %s\n", created.URL)

	return nil
}
