// Package wikimd fetches Wikipedia articles and converts their body into
// simplified Markdown: headings, paragraphs, emphasized spans and LaTeX
// display-math blocks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package wikimd
