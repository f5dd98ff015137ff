package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewPreviewCmd tests the preview command creation.
func TestNewPreviewCmd(t *testing.T) {
	t.Parallel()

	cmd := NewPreviewCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "preview" {
			t.Errorf("expected use 'preview', got %q", cmd.Use)
		}
	})

	t.Run("has template flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("template") == nil {
			t.Error("expected template flag")
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("output") == nil {
			t.Error("expected output flag")
		}
	})
}

// TestRunPreviewCmd tests preview command execution.
func TestRunPreviewCmd(t *testing.T) {
	t.Parallel()

	t.Run("renders default template to stdout", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"preview"})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "# Sarah's Life Design Dashboard") {
			t.Error("expected page title as H1")
		}
		if !strings.Contains(got, "## The Ultimate Habit Tracker") {
			t.Error("expected habit tracker section heading")
		}
		if !strings.Contains(got, "- [ ] ") {
			t.Error("expected unchecked to-do items")
		}
	})

	t.Run("writes preview to file", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "preview.md")
		cmd := newTestCommand(t, "preview", "--output", outputPath)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read preview file: %v", err)
		}
		if !strings.Contains(string(content), "# Sarah's Life Design Dashboard") {
			t.Error("expected page title in preview file")
		}
	})

	t.Run("renders custom template file", func(t *testing.T) {
		t.Parallel()

		templatePath := filepath.Join(t.TempDir(), "custom.yaml")
		definition := `title: Custom Workspace
sections:
  - name: Notes
    blocks:
      - kind: heading
        level: 1
        text: Notes
      - kind: paragraph
        text: A scratch space.
`
		if err := os.WriteFile(templatePath, []byte(definition), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		cmd.SetArgs([]string{"preview", "--template", templatePath})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "# Custom Workspace") {
			t.Error("expected custom page title as H1")
		}
		if !strings.Contains(got, "A scratch space.") {
			t.Error("expected paragraph text")
		}
	})

	t.Run("fails on missing template file", func(t *testing.T) {
		t.Parallel()

		cmd := newTestCommand(t, "preview", "--template",
			filepath.Join(t.TempDir(), "missing.yaml"))
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing template file")
		}
	})
}
