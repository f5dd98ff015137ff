// Package notion provides the Notion API data model and client used to
// create template pages. It defines the Block and Page structures that
// serialize to the Notion block object schema, pure constructor functions
// for each supported block kind, pre-flight validation of block trees, and
// a minimal HTTP client for the page-creation endpoint.
package notion
