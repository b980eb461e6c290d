package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath      = "path"
	KeySlug      = "slug"
	KeyExtension = "extension"
	KeyRoute     = "route"
	KeyOutputDir = "output_dir"
	KeyCount     = "count"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr      { return slog.String(KeyPath, p) }
func Slug(s string) slog.Attr      { return slog.String(KeySlug, s) }
func Extension(e string) slog.Attr { return slog.String(KeyExtension, e) }
func Route(r string) slog.Attr     { return slog.String(KeyRoute, r) }
func OutputDir(d string) slog.Attr { return slog.String(KeyOutputDir, d) }
func Count(n int) slog.Attr        { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
