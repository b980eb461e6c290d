// Package document models a single source file: its content, the title
// derived from the blank-line heuristic, and the slug that routes it.
package document

import (
	"os"
	"path/filepath"
	"strings"

	silkerrors "git.home.luguber.info/inful/silkie/internal/errors"
)

// Format identifies how a source file's body is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// SupportedExtensions lists the recognised source extensions in the fixed
// preference order used when scanning a directory.
var SupportedExtensions = []string{".txt", ".md"}

// formats maps extensions to their body format.
var formats = map[string]Format{
	".txt": FormatText,
	".md":  FormatMarkdown,
}

// Document is the ephemeral per-file value carried through one generation.
type Document struct {
	SourcePath string
	Slug       string
	Title      string // empty when the heuristic found nothing
	Body       string // content with any detected title and separator removed
	Format     Format
}

// IsSupported reports whether the file at path has a supported extension.
func IsSupported(path string) bool {
	_, ok := formats[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads a source file and derives its slug, title, and body.
// Line endings are normalised to LF so the title heuristic behaves
// identically for CRLF files.
func Load(path string) (*Document, error) {
	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, silkerrors.New(silkerrors.CategoryInternal, "unsupported file extension: "+filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, silkerrors.NotFound(path)
		}
		return nil, silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to read source file")
	}
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")

	doc := &Document{
		SourcePath: path,
		Slug:       Slugify(path),
		Format:     format,
	}

	switch format {
	case FormatText:
		doc.Title, doc.Body = ExtractTitle(content)
	default:
		// Markdown titles belong to the Markdown engine, not the heuristic.
		doc.Body = strings.TrimSpace(content)
	}

	return doc, nil
}

// ExtractTitle applies the plain-text title heuristic: a title exists only
// when the first line is non-empty and followed by exactly two blank lines
// (a "\n\n\n" gap). It returns the trimmed title, or empty when the pattern
// is absent, together with the remaining body trimmed of surrounding
// whitespace.
func ExtractTitle(content string) (title, body string) {
	nl := strings.Index(content, "\n")
	if nl > 0 && strings.HasPrefix(content[nl:], "\n\n\n") {
		return strings.TrimSpace(content[:nl]), strings.TrimSpace(content[nl+3:])
	}
	return "", strings.TrimSpace(content)
}

// Paragraphs splits a plain-text body on blank-line boundaries. Single
// newlines stay inside their paragraph.
func Paragraphs(body string) []string {
	parts := strings.Split(body, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// Slugify converts a source path to its route slug: the filename stem,
// lowercased, with spaces replaced by hyphens. This matches common static
// site URL generation behavior.
func Slugify(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ToLower(stem)
	return strings.ReplaceAll(stem, " ", "-")
}

// TitleOrFallback returns the extracted title, or a title-cased form of the
// slug for Markdown pages and untitled text pages.
func (d *Document) TitleOrFallback() string {
	if d.Title != "" {
		return d.Title
	}
	words := strings.Fields(strings.ReplaceAll(d.Slug, "-", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
