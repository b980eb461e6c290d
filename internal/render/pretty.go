package render

import (
	"strings"

	"golang.org/x/net/html"
)

const indentUnit = "  "

// voidElements have no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// inlineElements render within their parent's line rather than on their own.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "br": true, "cite": true,
	"code": true, "del": true, "em": true, "i": true, "img": true,
	"ins": true, "kbd": true, "mark": true, "q": true, "s": true,
	"samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "wbr": true,
}

// writeNode serialises n with two-space indentation. Elements whose
// children are all text or inline render on a single line; anything
// containing block children opens and closes on its own lines.
func writeNode(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	switch n.Type {
	case html.TextNode:
		if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
			b.WriteString(indent)
			b.WriteString(html.EscapeString(trimmed))
			b.WriteString("\n")
		}
		return
	case html.CommentNode:
		b.WriteString(indent)
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->\n")
		return
	case html.ElementNode:
		// handled below
	default:
		return
	}

	b.WriteString(indent)
	writeOpenTag(b, n)
	if voidElements[n.Data] {
		b.WriteString("\n")
		return
	}

	if fitsOneLine(n) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeInline(b, c)
		}
		writeCloseTag(b, n)
		b.WriteString("\n")
		return
	}

	b.WriteString("\n")
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c, depth+1)
	}
	b.WriteString(indent)
	writeCloseTag(b, n)
	b.WriteString("\n")
}

// writeInline serialises a node without introducing line breaks, preserving
// text content (including any embedded newlines, as inside pre blocks).
func writeInline(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		writeOpenTag(b, n)
		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeInline(b, c)
		}
		writeCloseTag(b, n)
	}
}

// fitsOneLine reports whether an element has no block-level children and
// can therefore render as a single line.
func fitsOneLine(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !inlineElements[c.Data] {
			return false
		}
	}
	return true
}

func writeOpenTag(b *strings.Builder, n *html.Node) {
	b.WriteString("<")
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteString(`"`)
	}
	b.WriteString(">")
}

func writeCloseTag(b *strings.Builder, n *html.Node) {
	b.WriteString("</")
	b.WriteString(n.Data)
	b.WriteString(">")
}
