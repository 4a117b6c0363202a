package wikimd

// Extractor converts a raw Wikipedia article page into Markdown.
type Extractor interface {
	// Extract parses the page, locates the main content region, cuts the
	// related-topics tail and returns the article body as Markdown.
	// Returns ENOTFOUND if the page has no main content region.
	Extract(html string) (markdown string, err error)
}
