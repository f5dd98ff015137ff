package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks the user for a value interactively. It exists so the
// resolver can be tested without a terminal and so non-interactive
// invocations (dry runs, CI) can disable prompting entirely.
type Prompter struct {
	// In is the reader prompted values are read from, one per line.
	In io.Reader

	// Out is where prompt labels are written. Prompts go to stderr by
	// default so stdout stays clean for command output.
	Out io.Writer
}

// NewPrompter creates a Prompter reading from stdin and writing to stderr.
func NewPrompter() *Prompter {
	return &Prompter{In: os.Stdin, Out: os.Stderr}
}

// Ask writes the label and reads one trimmed line of input.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", label)
	scanner := bufio.NewScanner(p.In)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// ResolveInput carries the per-source values the resolver chooses between.
type ResolveInput struct {
	// FlagAPIKey and FlagParentPageID are values from CLI flags, the
	// highest-priority source. Empty means the flag was not set.
	FlagAPIKey       string
	FlagParentPageID string

	// File is the loaded configuration file, or nil if none was found.
	File *File

	// Prompter asks for values still missing after all other sources.
	// Nil disables prompting; missing values then become errors.
	Prompter *Prompter

	// SkipAPIKey skips API key resolution entirely. Dry runs build and
	// print the payload without transmitting, so they need the parent
	// page ID but must not demand (or prompt for) a token.
	SkipAPIKey bool
}

// ResolveCredentials resolves the API key and parent page ID from the
// enumerated sources in fixed priority order: CLI flag, environment
// variable, configuration file, interactive prompt. Each credential is
// resolved independently, so the API key may come from the environment
// while the page ID comes from a prompt.
//
// The returned Credentials are complete; if any source chain is exhausted
// without a value, the corresponding sentinel error is returned instead.
func ResolveCredentials(in ResolveInput) (Credentials, error) {
	var apiKey string
	if !in.SkipAPIKey {
		var err error
		apiKey, err = resolveValue(in.FlagAPIKey, EnvAPIKey, fileAPIKey(in.File), in.Prompter,
			"Enter your Notion API Key (Internal Integration Secret)")
		if err != nil {
			return Credentials{}, err
		}
		if apiKey == "" {
			return Credentials{}, ErrMissingAPIKey
		}
	}

	pageID, err := resolveValue(in.FlagParentPageID, EnvParentPageID, fileParentPageID(in.File), in.Prompter,
		"Enter your Notion Parent Page ID")
	if err != nil {
		return Credentials{}, err
	}
	if pageID == "" {
		return Credentials{}, ErrMissingParentPageID
	}

	return Credentials{APIKey: apiKey, ParentPageID: pageID}, nil
}

// resolveValue walks one credential's source chain and returns the first
// non-empty value, or empty string if every source came up short.
func resolveValue(flagValue, envName, fileValue string, prompter *Prompter, promptLabel string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := strings.TrimSpace(os.Getenv(envName)); v != "" {
		return v, nil
	}
	if fileValue != "" {
		return fileValue, nil
	}
	if prompter != nil {
		return prompter.Ask(promptLabel)
	}
	return "", nil
}

// fileAPIKey returns the config file's API key, tolerating a nil file.
func fileAPIKey(f *File) string {
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.APIKey)
}

// fileParentPageID returns the config file's page ID, tolerating a nil file.
func fileParentPageID(f *File) string {
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.ParentPageID)
}
