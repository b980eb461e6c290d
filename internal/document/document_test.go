package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTitle_DoubleBlankLineGap_ReturnsTrimmedFirstLine(t *testing.T) {
	title, body := ExtractTitle("Hello\n\n\nWorld\n\nFoo bar")

	require.Equal(t, "Hello", title)
	require.Equal(t, "World\n\nFoo bar", body)
}

func TestExtractTitle_PaddedFirstLine_ReturnsTrimmedTitle(t *testing.T) {
	title, _ := ExtractTitle("  Hello  \n\n\nWorld")

	require.Equal(t, "Hello", title)
}

func TestExtractTitle_SingleBlankLine_ReturnsEmptyTitle(t *testing.T) {
	title, body := ExtractTitle("Hello\n\nWorld")

	require.Empty(t, title)
	require.Equal(t, "Hello\n\nWorld", body)
}

func TestExtractTitle_NoBlankLines_ReturnsEmptyTitle(t *testing.T) {
	title, body := ExtractTitle("Hello\nWorld")

	require.Empty(t, title)
	require.Equal(t, "Hello\nWorld", body)
}

func TestExtractTitle_EmptyFirstLine_ReturnsEmptyTitle(t *testing.T) {
	title, _ := ExtractTitle("\n\n\nWorld")

	require.Empty(t, title)
}

func TestExtractTitle_NoNewline_ReturnsEmptyTitle(t *testing.T) {
	title, body := ExtractTitle("Hello")

	require.Empty(t, title)
	require.Equal(t, "Hello", body)
}

func TestParagraphs_BlankLineBoundaries_SplitsBlocks(t *testing.T) {
	paragraphs := Paragraphs("World\n\nFoo bar")

	require.Equal(t, []string{"World", "Foo bar"}, paragraphs)
}

func TestParagraphs_SingleNewline_StaysInOneParagraph(t *testing.T) {
	paragraphs := Paragraphs("line one\nline two")

	require.Equal(t, []string{"line one\nline two"}, paragraphs)
}

func TestParagraphs_ExtraBlankLines_SkipsEmptyBlocks(t *testing.T) {
	paragraphs := Paragraphs("one\n\n\n\ntwo")

	require.Equal(t, []string{"one", "two"}, paragraphs)
}

func TestSlugify_SpacesAndCase_NormalisesStem(t *testing.T) {
	require.Equal(t, "my-page", Slugify("/somewhere/My Page.txt"))
	require.Equal(t, "notes", Slugify("notes.md"))
}

func TestLoad_TextFileWithTitle_PopulatesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello\n\n\nWorld\n\nFoo bar\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "greeting", doc.Slug)
	require.Equal(t, "Hello", doc.Title)
	require.Equal(t, "World\n\nFoo bar", doc.Body)
	require.Equal(t, FormatText, doc.Format)
}

func TestLoad_CRLFContent_NormalisesLineEndings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello\r\n\r\n\r\nWorld\r\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Hello", doc.Title)
	require.Equal(t, "World", doc.Body)
}

func TestLoad_MarkdownFile_LeavesTitleToTheEngine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("# Heading\n\n\nBody\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, doc.Title)
	require.Equal(t, "# Heading\n\n\nBody", doc.Body)
	require.Equal(t, FormatMarkdown, doc.Format)
}

func TestIsSupported_KnownAndUnknownExtensions(t *testing.T) {
	require.True(t, IsSupported("page.txt"))
	require.True(t, IsSupported("page.md"))
	require.True(t, IsSupported("PAGE.TXT"))
	require.False(t, IsSupported("page.rst"))
	require.False(t, IsSupported("page"))
}

func TestTitleOrFallback_UntitledDocument_TitleCasesSlug(t *testing.T) {
	doc := &Document{Slug: "my-first-page"}

	require.Equal(t, "My First Page", doc.TitleOrFallback())
}

func TestTitleOrFallback_TitledDocument_ReturnsTitle(t *testing.T) {
	doc := &Document{Slug: "greeting", Title: "Hello"}

	require.Equal(t, "Hello", doc.TitleOrFallback())
}
