// Package config resolves CLI flags, optional config-file defaults, and
// built-in defaults into one immutable Options value per invocation.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	silkerrors "git.home.luguber.info/inful/silkie/internal/errors"
)

const (
	// DefaultLang is the html lang attribute used when no tag is configured.
	DefaultLang = "en-CA"
	// DefaultOutputDir is the build directory recreated on every run.
	DefaultOutputDir = "dist"
)

// Options is the resolved configuration for one generation run. It is
// constructed once by Load and never mutated afterwards; per-file state
// lives in document.Document.
type Options struct {
	InputPath     string
	StylesheetURL string
	Lang          string
	Description   string
	OutputDir     string
}

// Flags carries the raw CLI values before resolution. Empty fields fall
// back to config-file values, then to built-in defaults.
type Flags struct {
	Input      string
	Stylesheet string
	Lang       string
	Output     string
	Config     string
}

// fileValues mirrors the recognised config-file keys.
type fileValues struct {
	Input       string `yaml:"input"`
	Stylesheet  string `yaml:"stylesheet"`
	Lang        string `yaml:"lang"`
	Description string `yaml:"description"`
	Output      string `yaml:"output"`
}

// Load resolves flags and the optional config file into validated Options.
// Flag values win over config-file values, which win over defaults.
func Load(flags Flags) (Options, error) {
	var file fileValues
	if flags.Config != "" {
		loaded, err := loadFile(flags.Config)
		if err != nil {
			return Options{}, err
		}
		file = loaded
	}

	opts := Options{
		InputPath:     firstNonEmpty(flags.Input, file.Input),
		StylesheetURL: firstNonEmpty(flags.Stylesheet, file.Stylesheet),
		Lang:          firstNonEmpty(flags.Lang, file.Lang, DefaultLang),
		Description:   file.Description,
		OutputDir:     firstNonEmpty(flags.Output, file.Output, DefaultOutputDir),
	}

	if _, err := language.Parse(opts.Lang); err != nil {
		return Options{}, silkerrors.Wrap(err, silkerrors.CategoryConfig, "invalid language tag: "+opts.Lang)
	}

	if opts.InputPath != "" {
		if _, err := os.Stat(opts.InputPath); err != nil {
			if os.IsNotExist(err) {
				return Options{}, silkerrors.NotFound(opts.InputPath)
			}
			return Options{}, silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to stat input path")
		}
	}

	return opts, nil
}

// loadFile reads a config file. YAML and JSON files are unmarshalled with
// yaml.v3 (which accepts JSON); anything else is treated as INI-style
// key=value lines. Environment references are expanded before parsing.
func loadFile(path string) (fileValues, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fileValues{}, silkerrors.NotFound(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileValues{}, silkerrors.Wrap(err, silkerrors.CategoryFileSystem, "failed to read config file")
	}
	expanded := os.ExpandEnv(string(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		var values fileValues
		if err := yaml.Unmarshal([]byte(expanded), &values); err != nil {
			return fileValues{}, silkerrors.MalformedConfig(err, path)
		}
		return values, nil
	default:
		pairs, err := godotenv.Unmarshal(expanded)
		if err != nil {
			return fileValues{}, silkerrors.MalformedConfig(err, path)
		}
		return fileValues{
			Input:       pairs["input"],
			Stylesheet:  pairs["stylesheet"],
			Lang:        pairs["lang"],
			Description: pairs["description"],
			Output:      pairs["output"],
		}, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
