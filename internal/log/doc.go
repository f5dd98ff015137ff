// Package log provides secure logging with automatic masking of
// credentials, built on top of the standard slog package.
//
// The tool handles exactly one secret, but a dangerous one: the Notion
// internal integration secret grants write access to every page shared
// with the integration. The SecureHandler guarantees that neither the
// token nor the Authorization header it rides in can reach log output,
// even in verbose mode, so a --verbose transcript is always safe to share
// when reporting problems.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("sending request",
//	    "api_key", creds.APIKey, // masked in output
//	    "parent_page_id", creds.ParentPageID,
//	)
package log
