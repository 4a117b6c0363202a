// Package htmltomarkdown provides the alternate article engine backed by
// JohannesKaufmann/html-to-markdown. Unlike the native walk it keeps
// lists, tables and links.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikimd"
	"golang.org/x/net/html"
)

// Ensure Converter implements wikimd.Converter at compile time.
var _ wikimd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert article HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with the Wikipedia rules applied:
// math spans become $$ blocks, edit links and citation markers are dropped.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.TagType("sup", converter.TagTypeRemove, converter.PriorityEarly)
	conv.Register.TagType("style", converter.TagTypeRemove, converter.PriorityEarly)
	conv.Register.RendererFor("span", converter.TagTypeInline, renderSpan, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikimd.Errorf(wikimd.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

func renderSpan(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	class := attr(n, "class")
	switch {
	case strings.Contains(class, "mw-editsection"):
		return converter.RenderSuccess
	case strings.Contains(class, "math"):
		text := strings.TrimSpace(goquery.NewDocumentFromNode(n).Text())
		w.WriteString("\n\n$$" + text + "$$\n\n")
		return converter.RenderSuccess
	}
	return converter.RenderTryNext
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
