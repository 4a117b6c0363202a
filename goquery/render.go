package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikimd"
)

// Renderer converts an article content tree into simplified Markdown.
// The zero value renders without a related-topics marker.
type Renderer struct {
	// Marker is the h2 text that ends the article body.
	Marker string

	// DedupeMathText skips the plain-text line otherwise emitted after the
	// $$ block of a math span, which matches both the math and span rules.
	DedupeMathText bool
}

// Render walks the children of root and returns the Markdown. Every call
// starts from fresh extraction state, so a Renderer may be shared.
func (r Renderer) Render(root *goquery.Selection) string {
	w := &walker{marker: r.Marker, dedupeMath: r.DedupeMathText}
	w.walk(root)
	return w.buf.String()
}

// Render is shorthand for Renderer{Marker: marker}.Render(root).
func Render(root *goquery.Selection, marker string) string {
	return Renderer{Marker: marker}.Render(root)
}

// walker holds the extraction state of a single Render call.
type walker struct {
	marker     string
	dedupeMath bool

	stopped bool
	buf     strings.Builder
}

func (w *walker) walk(sel *goquery.Selection) {
	if w.stopped {
		return
	}

	sel.Contents().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		n := classify(child, w.marker)
		if n.marker {
			w.stopped = true
			return false
		}

		if n.kind == kindSpan && n.math {
			w.buf.WriteString("\n$$")
			w.buf.WriteString(strings.TrimSpace(n.text))
			w.buf.WriteString("$$\n")
		}
		if n.kind == kindHeading {
			w.buf.WriteString("\n")
			w.buf.WriteString(strings.Repeat("#", n.level))
			w.buf.WriteString(" ")
			w.buf.WriteString(strings.TrimSpace(n.text))
			w.buf.WriteString("\n")
		}
		if n.kind == kindParagraph {
			w.buf.WriteString("\n")
			w.buf.WriteString(strings.TrimSpace(n.text))
			w.buf.WriteString("\n")
		}
		if n.kind == kindEmphasis || (n.kind == kindSpan && !(n.math && w.dedupeMath)) {
			w.buf.WriteString(strings.TrimSpace(n.text))
			w.buf.WriteString("\n")
		}

		if n.hasChildren {
			w.sanitize()
			w.walk(child)
		}
		return !w.stopped
	})
}

// sanitize cleans the whole buffer accumulated so far.
func (w *walker) sanitize() {
	s := w.buf.String()
	if cleaned := wikimd.Sanitize(s); cleaned != s {
		w.buf.Reset()
		w.buf.WriteString(cleaned)
	}
}
