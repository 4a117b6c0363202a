// Package goquery implements article extraction on top of goquery:
// locating the main content region, pruning the related-topics tail and
// rendering the remaining body as Markdown.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikimd"
)

// ContentID is the id of the element holding a Wikipedia article body.
const ContentID = "bodyContent"

// Ensure Extractor implements wikimd.Extractor at compile time.
var _ wikimd.Extractor = (*Extractor)(nil)

// Extractor turns a raw Wikipedia page into Markdown.
type Extractor struct {
	renderer  Renderer
	converter wikimd.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarker overrides the related-topics heading text.
func WithMarker(marker string) Option {
	return func(e *Extractor) {
		e.renderer.Marker = marker
	}
}

// WithMathTextDeduplication stops math spans from also being emitted as
// plain text lines.
func WithMathTextDeduplication() Option {
	return func(e *Extractor) {
		e.renderer.DedupeMathText = true
	}
}

// WithConverter renders the pruned content region with a general-purpose
// HTML converter instead of the built-in walker.
func WithConverter(c wikimd.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates an Extractor using the related-topics marker of lang.
func NewExtractor(lang string, opts ...Option) *Extractor {
	e := &Extractor{
		renderer: Renderer{Marker: wikimd.RelatedTopicsMarker(lang)},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html, locates the main content region, prunes it and
// returns the Markdown. Malformed markup is parsed best-effort.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", wikimd.Errorf(wikimd.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("#" + ContentID).First()
	if body.Length() == 0 {
		return "", wikimd.Errorf(wikimd.ENOTFOUND, "failed to locate main content")
	}

	Prune(body, e.renderer.Marker)

	if e.converter != nil {
		return e.convert(body)
	}
	return e.renderer.Render(body), nil
}

// convert drops the marker heading and everything after it, then hands the
// remaining content HTML to the converter.
func (e *Extractor) convert(body *goquery.Selection) (string, error) {
	if heading := findMarker(body, e.renderer.Marker); heading != nil {
		cutAt(heading, body.Get(0))
	}

	content, err := body.Html()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	return e.converter.Convert(content)
}
