// Package main provides the entry point for the notion-template CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for notion-template.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notion-template",
		Short: "Generate a Life Design dashboard page in Notion",
		Long: `notion-template creates a pre-structured Life Design dashboard page in a
Notion workspace: a habit tracker, goal tracker, weekly review, bookshelf
tracker, and student tracker, assembled from a declarative template and
created with a single Notion API call.

Credentials are resolved from CLI flags, the NOTION_API_KEY and
NOTION_PARENT_PAGE_ID environment variables, a .notion-template.yaml
configuration file, or an interactive prompt, in that order.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewPreviewCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
