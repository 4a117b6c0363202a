package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Prune walks root depth-first in document order and truncates the tree at
// the first h2 whose text contains marker: every sibling following that
// heading is detached. The heading itself stays so a later Render stops on
// it. Reports whether a marker heading was found.
func Prune(root *goquery.Selection, marker string) bool {
	heading := findMarker(root, marker)
	if heading == nil {
		return false
	}
	detachFollowing(heading)
	return true
}

// findMarker returns the first marker heading under sel in document order.
func findMarker(sel *goquery.Selection, marker string) *html.Node {
	var found *html.Node
	sel.Contents().EachWithBreak(func(_ int, child *goquery.Selection) bool {
		n := child.Get(0)
		if n.Type == html.ElementNode && n.Data == "h2" && isMarker(child.Text(), marker) {
			found = n
			return false
		}
		if n.FirstChild != nil {
			found = findMarker(child, marker)
		}
		return found == nil
	})
	return found
}

// detachFollowing removes every sibling after n from their parent.
func detachFollowing(n *html.Node) {
	for sib := n.NextSibling; sib != nil; {
		next := sib.NextSibling
		n.Parent.RemoveChild(sib)
		sib = next
	}
}

// cutAt removes heading and everything after it in document order, up to
// but excluding root's own siblings.
func cutAt(heading, root *html.Node) {
	for n := heading; n != nil && n != root; n = n.Parent {
		detachFollowing(n)
	}
	heading.Parent.RemoveChild(heading)
}
