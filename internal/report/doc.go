// Package report renders built page payloads as GitHub Flavored Markdown.
// The rendering is used by the preview command to show the template's
// content offline, before (or instead of) creating anything in Notion.
package report
