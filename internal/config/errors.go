package config

import "errors"

// Configuration and credential resolution errors.
//
// Package-level sentinel errors allow callers to branch with errors.Is
// while keeping human-readable messages. The missing-credential messages
// name every source the resolver tried, because by the time they surface
// the whole chain has been exhausted.
var (
	// ErrMissingAPIKey is returned when no source yields an API key.
	ErrMissingAPIKey = errors.New("missing API key: set --api-key, the " + EnvAPIKey + " environment variable, or api_key in the config file")

	// ErrMissingParentPageID is returned when no source yields a parent
	// page identifier.
	ErrMissingParentPageID = errors.New("missing parent page id: set --parent-page, the " + EnvParentPageID + " environment variable, or parent_page_id in the config file")

	// ErrInvalidTimeout is returned when the request timeout is not
	// positive. A zero or negative timeout would fail every request
	// immediately.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConfigNotFound is returned when an explicitly specified
	// configuration file does not exist. When no path was specified, a
	// missing config file is not an error; the resolver simply moves to
	// the next source.
	ErrConfigNotFound = errors.New("configuration file not found")
)
