package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nodeKind is the rendering-relevant classification of a content node.
type nodeKind int

const (
	kindOther nodeKind = iota
	kindHeading
	kindParagraph
	kindEmphasis
	kindSpan
)

// node is a child of the walked tree classified once, so every rendering
// rule reads the same facts.
type node struct {
	kind        nodeKind
	level       int  // 1-6 for kindHeading
	math        bool // span whose class mentions "math"
	marker      bool // h2 containing the related-topics marker
	text        string
	hasChildren bool
}

// classify inspects a single-node selection.
func classify(sel *goquery.Selection, marker string) node {
	n := sel.Get(0)
	nd := node{hasChildren: n.FirstChild != nil}
	if n.Type != html.ElementNode {
		return nd
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		nd.kind = kindHeading
		nd.level = int(n.Data[1] - '0')
	case atom.P:
		nd.kind = kindParagraph
	case atom.Span:
		nd.kind = kindSpan
		nd.math = strings.Contains(sel.AttrOr("class", ""), "math")
	case atom.Strong, atom.Em, atom.B, atom.I:
		nd.kind = kindEmphasis
	default:
		return nd
	}

	nd.text = sel.Text()
	nd.marker = nd.kind == kindHeading && nd.level == 2 && isMarker(nd.text, marker)
	return nd
}

// isMarker reports whether heading text contains the related-topics marker,
// ignoring case. An empty marker never matches.
func isMarker(text, marker string) bool {
	if marker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(marker))
}
