// Package template defines the declarative page template format and the
// embedded Life Design template.
//
// Templates separate "what content" from "how to serialize": a template is
// YAML data describing an ordered tree of content nodes, and Build maps
// those nodes onto the generic block constructors in the notion package.
// The full Life Design dashboard (habit tracker, goal tracker, weekly
// review, bookshelf tracker, student tracker) ships embedded as the
// default template; users can point the CLI at their own template file to
// generate different content with the same machinery.
package template
