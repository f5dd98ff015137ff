// Package main provides the entry point for the notion-template CLI.
//
// notion-template creates a pre-structured Life Design dashboard page
// (habit tracker, goal tracker, weekly review, bookshelf tracker, student
// tracker) inside a Notion workspace via the Notion API.
//
// Usage:
//
//	notion-template generate
//	notion-template preview
//
// See --help for all available options.
package main

// main is the entry point for notion-template.
func main() {
	Execute()
}
