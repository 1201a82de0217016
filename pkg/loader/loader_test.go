package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/registry"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testBlock(slug string, cat category.ID) registry.BlockMeta {
	return registry.BlockMeta{
		ID:       slug,
		Slug:     slug,
		Name:     slug,
		Category: cat,
		Tier:     registry.TierFree,
		Styles:   theme.AllStyles(),
	}
}

func TestCategoryDir(t *testing.T) {
	assert.Equal(t, "heros", CategoryDir(category.Hero))
	assert.Equal(t, "navbars", CategoryDir(category.Navbar))
	// Already plural, no extra s.
	assert.Equal(t, "features", CategoryDir(category.Features))
}

func TestPaths(t *testing.T) {
	l := New("/blocks")
	assert.Equal(t, filepath.Join("/blocks", "heros", "hero-gradient.tsx"),
		l.BlockPath(category.Hero, "hero-gradient"))
	assert.Equal(t, filepath.Join("/blocks", "heros", "hero-gradient", "high_brand.tsx"),
		l.VariantPath(category.Hero, "hero-gradient", theme.StyleHighBrand))
}

func TestSource(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-gradient", category.Hero)

	_, ok := l.Source(block)
	assert.False(t, ok)
	assert.False(t, l.SourceExists(block))

	writeFile(t, l.BlockPath(block.Category, block.Slug), "export function HeroGradient() {}")

	src, ok := l.Source(block)
	require.True(t, ok)
	assert.Contains(t, src, "HeroGradient")
	assert.True(t, l.SourceExists(block))
}

func TestVariant_DefaultStyleIsBaseFile(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	writeFile(t, l.BlockPath(block.Category, block.Slug), "base")

	src, ok := l.Variant(block, theme.DefaultStyle)
	require.True(t, ok)
	assert.Equal(t, "base", src)
}

func TestVariant_FallsBackToBase(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	writeFile(t, l.BlockPath(block.Category, block.Slug), "base")

	// No high_brand file on disk, base is served instead.
	src, ok := l.Variant(block, theme.StyleHighBrand)
	require.True(t, ok)
	assert.Equal(t, "base", src)

	writeFile(t, l.VariantPath(block.Category, block.Slug, theme.StyleHighBrand), "branded")

	src, ok = l.Variant(block, theme.StyleHighBrand)
	require.True(t, ok)
	assert.Equal(t, "branded", src)
}

func TestVariant_UnknownStyleNormalizes(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	writeFile(t, l.BlockPath(block.Category, block.Slug), "base")

	src, ok := l.Variant(block, theme.Style("brutalist"))
	require.True(t, ok)
	assert.Equal(t, "base", src)
}

func TestAllVariants(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	writeFile(t, l.BlockPath(block.Category, block.Slug), "base")
	writeFile(t, l.VariantPath(block.Category, block.Slug, theme.StyleNeoIndustrial), "industrial")

	variants := l.AllVariants(block)
	assert.Equal(t, []VariantSource{
		{Slug: "hero-a", Style: theme.StyleMinimalist, Source: "base"},
		{Slug: "hero-a", Style: theme.StyleHighBrand, Source: "base"},
		{Slug: "hero-a", Style: theme.StyleNeoIndustrial, Source: "industrial"},
	}, variants)

	assert.Equal(t, theme.AllStyles(), l.AvailableStyles(block))
}

func TestAllVariants_OnlyDeclaredStyles(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	block.Styles = []theme.Style{theme.StyleMinimalist}
	writeFile(t, l.BlockPath(block.Category, block.Slug), "base")
	writeFile(t, l.VariantPath(block.Category, block.Slug, theme.StyleHighBrand), "branded")

	// The on-disk variant is ignored when the block does not declare it.
	variants := l.AllVariants(block)
	assert.Equal(t, []VariantSource{
		{Slug: "hero-a", Style: theme.StyleMinimalist, Source: "base"},
	}, variants)
}

func TestAllVariants_NoSource(t *testing.T) {
	l := New(t.TempDir())
	assert.Empty(t, l.AllVariants(testBlock("hero-a", category.Hero)))
}

func TestWithSource(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	block := testBlock("hero-a", category.Hero)
	block.Dependencies = []string{"framer-motion"}

	source := `"use client";
import { motion } from "framer-motion";

export interface HeroAProps {
  title: string;
}

export function HeroA({ title }: HeroAProps) {
  return null;
}
`
	writeFile(t, l.BlockPath(block.Category, block.Slug), source)

	detail := l.WithSource(block)
	assert.Equal(t, source, detail.Source)
	require.NotNil(t, detail.Parsed)
	assert.Equal(t, "HeroA", detail.Parsed.ComponentName)
	assert.Equal(t, []string{"framer-motion"}, detail.Parsed.Dependencies)
	assert.Equal(t, "npm install framer-motion", detail.InstallCommand)
	assert.Equal(t, "npx laufblocks add hero-a", detail.CLICommand)
	// Declared styles all resolve, the missing variants via base fallback.
	assert.Equal(t, theme.AllStyles(), detail.Variants)
}

func TestWithSource_MissingFile(t *testing.T) {
	l := New(t.TempDir())
	block := testBlock("hero-a", category.Hero)

	detail := l.WithSource(block)
	assert.Empty(t, detail.Source)
	assert.Nil(t, detail.Parsed)
	assert.Empty(t, detail.Variants)
	assert.Equal(t, "npx laufblocks add hero-a", detail.CLICommand)
}

func TestInstallCommand(t *testing.T) {
	block := testBlock("hero-a", category.Hero)
	assert.Empty(t, InstallCommand(block))

	block.Dependencies = []string{"framer-motion", "@radix-ui/react-dialog"}
	assert.Equal(t, "npm install framer-motion @radix-ui/react-dialog", InstallCommand(block))
}

func TestScanAllBlockFiles(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	writeFile(t, filepath.Join(dir, "heros", "hero-a.tsx"), "a")
	writeFile(t, filepath.Join(dir, "heros", "hero-a", "high_brand.tsx"), "a-hb")
	writeFile(t, filepath.Join(dir, "footers", "footer-b.tsx"), "b")
	writeFile(t, filepath.Join(dir, "heros", "notes.md"), "ignored")

	files := l.ScanAllBlockFiles()
	assert.Equal(t, []BlockFile{
		{Category: category.Footer, Slug: "footer-b", Path: filepath.Join(dir, "footers", "footer-b.tsx")},
		{Category: category.Hero, Slug: "hero-a", Path: filepath.Join(dir, "heros", "hero-a.tsx")},
	}, files)
}

func TestScanAllBlockFiles_MissingRoot(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, l.ScanAllBlockFiles())
}

func TestListBlockFiles(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	writeFile(t, filepath.Join(dir, "heros", "hero-b.tsx"), "b")
	writeFile(t, filepath.Join(dir, "heros", "hero-a.tsx"), "a")
	writeFile(t, filepath.Join(dir, "heros", "hero-a", "high_brand.tsx"), "variant")

	slugs := l.ListBlockFiles(category.Hero)
	assert.Equal(t, []string{"hero-a", "hero-b"}, slugs)

	assert.Empty(t, l.ListBlockFiles(category.Footer))
}

func TestSlugForPath(t *testing.T) {
	l := New("/blocks")

	assert.Equal(t, "hero-a", l.SlugForPath(filepath.Join("/blocks", "heros", "hero-a.tsx")))
	assert.Equal(t, "hero-a", l.SlugForPath(filepath.Join("/blocks", "heros", "hero-a", "high_brand.tsx")))
	assert.Empty(t, l.SlugForPath(filepath.Join("/blocks", "heros", "notes.md")))
	assert.Empty(t, l.SlugForPath("/elsewhere/heros/hero-a.tsx"))
	assert.Empty(t, l.SlugForPath(filepath.Join("/blocks", "top-level.tsx")))
}

func TestCheckDrift(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	reg := registry.New(
		testBlock("hero-a", category.Hero),
		testBlock("hero-b", category.Hero),
	)

	writeFile(t, l.BlockPath(category.Hero, "hero-a"), "a")
	writeFile(t, l.BlockPath(category.Hero, "hero-rogue"), "rogue")

	d := l.CheckDrift(reg)
	assert.Equal(t, []string{"hero-b"}, d.Missing)
	assert.Equal(t, []string{l.BlockPath(category.Hero, "hero-rogue")}, d.Untracked)
	assert.False(t, d.Empty())
}

func TestCheckDrift_Clean(t *testing.T) {
	dir := t.TempDir()
	l := New(dir)
	reg := registry.New(testBlock("hero-a", category.Hero))
	writeFile(t, l.BlockPath(category.Hero, "hero-a"), "a")

	assert.True(t, l.CheckDrift(reg).Empty())
}
