// Package loader resolves block metadata to source files on disk and
// derives per-block install and CLI instructions.
//
// The filesystem is treated as an untrusted mirror of the registry: every
// read soft-fails with a (value, ok) pair, and a missing or unreadable
// file degrades the response rather than erroring. Layout convention:
//
//	{dir}/{categoryDir}/{slug}.tsx           base source
//	{dir}/{categoryDir}/{slug}/{style}.tsx   style variant
//
// where categoryDir is the category id with an "s" appended unless it
// already ends in one.
package loader

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/parser"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

const sourceExt = ".tsx"

// blockFilePattern matches every base block source under a loader root.
const blockFilePattern = "*/*.tsx"

// Loader reads block sources from a root directory.
type Loader struct {
	dir    string
	cache  *Cache
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithCache makes the loader serve reads through a mapped-file cache.
func WithCache(c *Cache) Option {
	return func(l *Loader) { l.cache = c }
}

// WithLogger sets the logger used for soft-failure warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New creates a Loader rooted at dir. The directory does not have to
// exist; reads against a missing root simply report absence.
func New(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:    dir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the loader's root directory.
func (l *Loader) Dir() string {
	return l.dir
}

// CategoryDir returns the on-disk directory name for a category.
func CategoryDir(cat category.ID) string {
	s := string(cat)
	if strings.HasSuffix(s, "s") {
		return s
	}
	return s + "s"
}

// BlockPath returns the base source path for a block.
func (l *Loader) BlockPath(cat category.ID, slug string) string {
	return filepath.Join(l.dir, CategoryDir(cat), slug+sourceExt)
}

// VariantPath returns the style-variant source path for a block.
func (l *Loader) VariantPath(cat category.ID, slug string, style theme.Style) string {
	return filepath.Join(l.dir, CategoryDir(cat), slug, string(style)+sourceExt)
}

// read returns a file's contents, going through the cache when one is
// configured. Absence and read errors both report !ok.
func (l *Loader) read(path string) (string, bool) {
	if l.cache != nil {
		return l.cache.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.Warn("block source unreadable", "path", path, "error", err)
		}
		return "", false
	}
	return string(data), true
}

// Source returns a block's base source.
func (l *Loader) Source(block registry.BlockMeta) (string, bool) {
	return l.read(l.BlockPath(block.Category, block.Slug))
}

// SourceExists reports whether the block's base source file is present.
func (l *Loader) SourceExists(block registry.BlockMeta) bool {
	info, err := os.Stat(l.BlockPath(block.Category, block.Slug))
	return err == nil && !info.IsDir()
}

// Variant returns the source for a block in the given style. The default
// style maps to the base file. A missing variant falls back to the base
// source, so callers always get the closest available rendition.
func (l *Loader) Variant(block registry.BlockMeta, style theme.Style) (string, bool) {
	style = theme.Normalize(string(style))
	if style == theme.DefaultStyle {
		return l.Source(block)
	}
	if src, ok := l.read(l.VariantPath(block.Category, block.Slug, style)); ok {
		return src, true
	}
	return l.Source(block)
}

// VariantSource is one style's rendition of a block.
type VariantSource struct {
	Slug   string      `json:"slug"`
	Style  theme.Style `json:"style"`
	Source string      `json:"source"`
}

// AllVariants returns the source for every style the block declares,
// applying the per-style fallback. Styles that produce no source at all
// (no variant file and no base file) are skipped.
func (l *Loader) AllVariants(block registry.BlockMeta) []VariantSource {
	out := make([]VariantSource, 0, len(block.Styles))
	for _, style := range block.Styles {
		src, ok := l.Variant(block, style)
		if !ok {
			continue
		}
		out = append(out, VariantSource{Slug: block.Slug, Style: style, Source: src})
	}
	return out
}

// AvailableStyles returns the styles a block can serve source for.
func (l *Loader) AvailableStyles(block registry.BlockMeta) []theme.Style {
	variants := l.AllVariants(block)
	styles := make([]theme.Style, 0, len(variants))
	for _, v := range variants {
		styles = append(styles, v.Style)
	}
	return styles
}

// BlockDetail is a block enriched with everything the loader can derive
// from its source file. Parsed is nil when no source is on disk.
type BlockDetail struct {
	registry.BlockMeta
	Source         string         `json:"source,omitempty"`
	Parsed         *parser.Result `json:"parsed,omitempty"`
	Variants       []theme.Style  `json:"variants"`
	InstallCommand string         `json:"install_command,omitempty"`
	CLICommand     string         `json:"cli_command"`
}

// WithSource assembles the full detail view for a block.
func (l *Loader) WithSource(block registry.BlockMeta) BlockDetail {
	detail := BlockDetail{
		BlockMeta:      block,
		Variants:       l.AvailableStyles(block),
		InstallCommand: InstallCommand(block),
		CLICommand:     CLICommand(block.Slug),
	}
	if src, ok := l.Source(block); ok {
		parsed := parser.ParseBlockSource(src)
		detail.Source = src
		detail.Parsed = &parsed
	}
	return detail
}

// InstallCommand returns the npm install line for a block's
// dependencies, or "" when it has none.
func InstallCommand(block registry.BlockMeta) string {
	if len(block.Dependencies) == 0 {
		return ""
	}
	return "npm install " + strings.Join(block.Dependencies, " ")
}

// CLICommand returns the one-liner that installs a block via the CLI.
func CLICommand(slug string) string {
	return "npx laufblocks add " + slug
}

// ListBlockFiles returns the slugs whose base source lives under one
// category directory, sorted. A missing directory yields an empty slice.
func (l *Loader) ListBlockFiles(cat category.ID) []string {
	dir := filepath.Join(l.dir, CategoryDir(cat))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var slugs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), sourceExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), sourceExt))
	}
	sort.Strings(slugs)
	return slugs
}

// BlockFile is one base source file found under the root.
type BlockFile struct {
	Category category.ID `json:"category"`
	Slug     string      `json:"slug"`
	Path     string      `json:"path"`
}

// ScanAllBlockFiles globs every base block source under the root, sorted
// by path. Variant files are excluded; they belong to a base file's
// block. It never errors: an absent root is an empty catalog on disk.
func (l *Loader) ScanAllBlockFiles() []BlockFile {
	matches, err := doublestar.Glob(os.DirFS(l.dir), blockFilePattern)
	if err != nil {
		l.logger.Warn("block scan failed", "dir", l.dir, "error", err)
		return nil
	}
	sort.Strings(matches)
	files := make([]BlockFile, 0, len(matches))
	for _, m := range matches {
		dir, name := filepath.Split(filepath.FromSlash(m))
		files = append(files, BlockFile{
			Category: categoryForDir(filepath.Clean(dir)),
			Slug:     strings.TrimSuffix(name, sourceExt),
			Path:     filepath.Join(l.dir, filepath.FromSlash(m)),
		})
	}
	return files
}

// categoryForDir reverses CategoryDir. Directories that map to no known
// category fall back to the name with any trailing "s" stripped.
func categoryForDir(dir string) category.ID {
	for _, id := range category.IDs() {
		if CategoryDir(id) == dir {
			return id
		}
	}
	return category.ID(strings.TrimSuffix(dir, "s"))
}

// SlugForPath derives the block slug a source path belongs to, or ""
// when the path is not under the loader's layout. Both base files and
// style variants map back to their block.
func (l *Loader) SlugForPath(path string) string {
	rel, err := filepath.Rel(l.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	switch len(parts) {
	case 2: // categoryDir/slug.tsx
		if strings.HasSuffix(parts[1], sourceExt) {
			return strings.TrimSuffix(parts[1], sourceExt)
		}
	case 3: // categoryDir/slug/style.tsx
		if strings.HasSuffix(parts[2], sourceExt) {
			return parts[1]
		}
	}
	return ""
}

// walkDirs calls fn for every directory under the root, root included.
func (l *Loader) walkDirs(fn func(dir string)) {
	_ = filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			fn(path)
		}
		return nil
	})
}
