package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/config"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/notion"
	"github.com/raimonvibe/sarah-s-lifestyle-notion-template/internal/report"
	"github.com/spf13/cobra"
)

// previewParentID is a placeholder parent page identifier used when
// building a page purely for rendering. Preview never transmits anything,
// so the real parent page is irrelevant.
var previewParentID = strings.Repeat("0", notion.PageIDLength)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the template as Markdown without touching Notion",
		Long: `Preview renders the template content as GitHub Flavored Markdown so you
can inspect what generate would create. No credentials are needed and no
network requests are made.

Examples:
  # Preview the default Life Design template on stdout
  notion-template preview

  # Preview a custom template and write it to a file
  notion-template preview --template my-template.yaml --output preview.md`,
		Args: cobra.NoArgs,
		RunE: runPreviewCmd,
	}

	cmd.Flags().StringP("template", "t", "",
		"Template definition file (default: embedded Life Design template)")
	cmd.Flags().StringP("output", "o", "",
		"Write the preview to the specified file instead of stdout")

	return cmd
}

// runPreviewCmd executes the preview command.
func runPreviewCmd(cmd *cobra.Command, _ []string) error {
	templatePath, err := cmd.Flags().GetString("template")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	cfg.TemplatePath = templatePath
	def, err := loadTemplate(cfg)
	if err != nil {
		return err
	}

	page := def.Build(previewParentID)

	output := cmd.OutOrStdout()
	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer := report.NewMarkdownWriter(output)
	if _, err := writer.Write(page); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}
