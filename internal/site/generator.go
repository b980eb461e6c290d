// Package site drives a generation run: it rebuilds the output directory
// from scratch, walks the input, and routes each rendered document to
// <output>/<slug>.html with duplicate detection.
package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"git.home.luguber.info/inful/silkie/internal/config"
	"git.home.luguber.info/inful/silkie/internal/document"
	silkerrors "git.home.luguber.info/inful/silkie/internal/errors"
	"git.home.luguber.info/inful/silkie/internal/logfields"
	"git.home.luguber.info/inful/silkie/internal/render"
)

var successStyle = pterm.NewStyle(pterm.FgGreen, pterm.Bold)

// Generator performs one sequential generation run over immutable options.
type Generator struct {
	opts     config.Options
	renderer *render.Renderer
	routes   map[string]string // slug -> source path that claimed it
	// quiet suppresses the per-file console line; tests use it.
	quiet bool
}

// NewGenerator creates a Generator for the given options.
func NewGenerator(opts config.Options) *Generator {
	return &Generator{
		opts:     opts,
		renderer: render.New(opts),
		routes:   make(map[string]string),
	}
}

// Generate rebuilds the output directory and processes the configured
// input. An empty input path is a no-op. A duplicate route aborts the
// whole run; pages written before the collision remain, and the next run
// starts clean anyway.
func (g *Generator) Generate() error {
	if g.opts.InputPath == "" {
		slog.Debug("No input path configured, nothing to generate")
		return nil
	}

	if err := g.cleanOutputDir(); err != nil {
		return err
	}

	info, err := os.Stat(g.opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return silkerrors.NotFound(g.opts.InputPath)
		}
		return silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to stat input path")
	}

	if !info.IsDir() {
		if !document.IsSupported(g.opts.InputPath) {
			slog.Warn("Skipping unsupported file", logfields.Path(g.opts.InputPath))
			return nil
		}
		return g.generateFile(g.opts.InputPath)
	}
	return g.generateDir(g.opts.InputPath)
}

// cleanOutputDir removes and recreates the output directory so no state
// survives between runs.
func (g *Generator) cleanOutputDir() error {
	if err := os.RemoveAll(g.opts.OutputDir); err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to clean output directory")
	}
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to create output directory")
	}
	slog.Debug("Output directory rebuilt", logfields.OutputDir(g.opts.OutputDir))
	return nil
}

// generateDir processes every matching file, one supported extension at a
// time in preference order, in sorted directory order within each
// extension. Subdirectories are not descended into.
func (g *Generator) generateDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to read input directory")
	}

	generated := 0
	for _, extension := range document.SupportedExtensions {
		for _, entry := range entries {
			if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), extension) {
				continue
			}
			if err := g.generateFile(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
			generated++
		}
	}
	slog.Debug("Generation complete", logfields.Count(generated), logfields.OutputDir(g.opts.OutputDir))
	return nil
}

// generateFile renders one source file and writes it to its route.
func (g *Generator) generateFile(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	html, err := g.renderer.Render(doc)
	if err != nil {
		return err
	}

	route, err := g.route(doc)
	if err != nil {
		return err
	}

	if err := os.WriteFile(route, []byte(html), 0o644); err != nil {
		return silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to write static file")
	}

	slog.Debug("Static file generated", logfields.Slug(doc.Slug), logfields.Route(route))
	if !g.quiet {
		successStyle.Printfln("✓ Success: Static file for '%s' is generated in %s/", doc.Slug, g.opts.OutputDir)
	}
	return nil
}

// route computes <output>/<slug>.html, failing on a slug already claimed
// in this run or a destination that already exists on disk. Parent
// directories are created as needed.
func (g *Generator) route(doc *document.Document) (string, error) {
	if prior, taken := g.routes[doc.Slug]; taken {
		return "", silkerrors.DuplicateRoute(doc.Slug).
			WithContext("source", doc.SourcePath).
			WithContext("claimed_by", prior)
	}

	route := filepath.Join(g.opts.OutputDir, doc.Slug+".html")
	if _, err := os.Stat(route); err == nil {
		return "", silkerrors.DuplicateRoute(doc.Slug).WithContext("source", doc.SourcePath)
	}

	if err := os.MkdirAll(filepath.Dir(route), 0o755); err != nil {
		return "", silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to create route directory")
	}

	g.routes[doc.Slug] = doc.SourcePath
	return route, nil
}
