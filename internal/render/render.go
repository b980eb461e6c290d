// Package render assembles one standalone HTML document per source file.
// Plain text bodies become escaped paragraphs; Markdown bodies are
// converted by goldmark and inserted as already-safe HTML.
package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/silkie/internal/config"
	"git.home.luguber.info/inful/silkie/internal/document"
	silkerrors "git.home.luguber.info/inful/silkie/internal/errors"
)

// Renderer produces HTML documents for one generation run's options.
type Renderer struct {
	opts config.Options
	md   goldmark.Markdown
}

// New creates a Renderer. Goldmark is used with CommonMark defaults; this
// tool deliberately carries no Markdown extensions.
func New(opts config.Options) *Renderer {
	return &Renderer{opts: opts, md: goldmark.New()}
}

// Render returns the complete, pretty-printed HTML document for doc.
// It assumes it is only invoked for supported formats.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	root := element("html", attr("lang", r.opts.Lang))
	root.AppendChild(r.head(doc))

	body := element("body")
	switch doc.Format {
	case document.FormatMarkdown:
		if err := r.appendMarkdown(body, doc.Body); err != nil {
			return "", err
		}
	default:
		appendText(body, doc)
	}
	root.AppendChild(body)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	writeNode(&b, root, 0)
	return b.String(), nil
}

// head builds the document head: charset, viewport, description metas
// (page and Open Graph variants), title, and the optional stylesheet link.
func (r *Renderer) head(doc *document.Document) *html.Node {
	head := element("head")
	head.AppendChild(element("meta", attr("charset", "utf-8")))
	head.AppendChild(element("meta",
		attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1")))
	head.AppendChild(element("meta",
		attr("name", "description"),
		attr("content", r.opts.Description)))
	head.AppendChild(element("meta",
		attr("property", "og:description"),
		attr("content", r.opts.Description)))

	title := element("title")
	title.AppendChild(text(doc.TitleOrFallback()))
	head.AppendChild(title)

	if r.opts.StylesheetURL != "" {
		head.AppendChild(element("link",
			attr("rel", "stylesheet"),
			attr("href", r.opts.StylesheetURL)))
	}
	return head
}

// appendText emits the optional h1 and one escaped paragraph per
// blank-line-separated block. Paragraph text is literal, never markup.
func appendText(body *html.Node, doc *document.Document) {
	if doc.Title != "" {
		h1 := element("h1")
		h1.AppendChild(text(doc.Title))
		body.AppendChild(h1)
	}
	for _, paragraph := range document.Paragraphs(doc.Body) {
		p := element("p")
		p.AppendChild(text(paragraph))
		body.AppendChild(p)
	}
}

// appendMarkdown converts the Markdown source and grafts the resulting
// fragment into the body node tree.
func (r *Renderer) appendMarkdown(body *html.Node, source string) error {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryInternal, "markdown conversion failed")
	}

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(buf.Bytes()), context)
	if err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryInternal, "failed to parse converted markdown")
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return nil
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

func text(content string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: content}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
