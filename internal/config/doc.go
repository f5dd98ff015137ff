// Package config provides configuration and credential resolution for the
// template generator. Credentials (the Notion API key and the destination
// parent page ID) are resolved from an enumerated list of sources tried in
// a fixed priority order: CLI flags, environment variables, a YAML
// configuration file, and finally an interactive prompt. Missing values
// surface as typed errors rather than ambient failures deep in the client.
package config
