package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

// --- Helpers ---

func testBlock(slug string, cat category.ID, tier Tier) BlockMeta {
	return BlockMeta{
		ID:           slug,
		Slug:         slug,
		Name:         "Block " + slug,
		Description:  "Test block " + slug,
		Category:     cat,
		Tier:         tier,
		Dependencies: []string{},
		Styles:       []theme.Style{theme.StyleMinimalist},
	}
}

func testRegistry() *Registry {
	return New(
		testBlock("hero-a", category.Hero, TierFree),
		testBlock("hero-b", category.Hero, TierPro),
		testBlock("hero-c", category.Hero, TierFree),
		testBlock("footer-a", category.Footer, TierFree),
		testBlock("cta-a", category.CTA, TierPro),
	)
}

// --- Registry ---

func TestRegister_OverwriteIsIdempotent(t *testing.T) {
	r := New()
	b := testBlock("hero-a", category.Hero, TierFree)
	r.Register(b)

	b.Name = "Renamed"
	r.Register(b)
	r.Register(b)

	assert.Equal(t, 1, r.Count())
	got, ok := r.Get("hero-a")
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)
}

func TestRegister_OverwriteKeepsPosition(t *testing.T) {
	r := New(
		testBlock("first", category.Hero, TierFree),
		testBlock("second", category.Hero, TierFree),
	)
	updated := testBlock("first", category.Hero, TierPro)
	r.Register(updated)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Slug)
	assert.Equal(t, TierPro, all[0].Tier)
}

func TestGet_UnknownSlugIsAbsentNotError(t *testing.T) {
	r := testRegistry()
	_, ok := r.Get("nope")
	assert.False(t, ok)
	assert.False(t, r.Exists("nope"))
	assert.True(t, r.Exists("hero-a"))
}

func TestAll_SkipsUnpublished(t *testing.T) {
	unpublished := testBlock("hero-draft", category.Hero, TierFree)
	no := false
	unpublished.Published = &no

	r := New(testBlock("hero-a", category.Hero, TierFree), unpublished)

	all := r.All()
	require.Len(t, all, 1)
	assert.Equal(t, "hero-a", all[0].Slug)

	// Still addressable directly.
	assert.True(t, r.Exists("hero-draft"))
}

func TestAll_PreservesRegistrationOrder(t *testing.T) {
	r := testRegistry()
	slugs := make([]string, 0)
	for _, b := range r.All() {
		slugs = append(slugs, b.Slug)
	}
	assert.Equal(t, []string{"hero-a", "hero-b", "hero-c", "footer-a", "cta-a"}, slugs)
}

func TestIsPublished_DefaultsTrue(t *testing.T) {
	b := testBlock("x", category.Hero, TierFree)
	assert.True(t, b.IsPublished())

	yes := true
	b.Published = &yes
	assert.True(t, b.IsPublished())

	no := false
	b.Published = &no
	assert.False(t, b.IsPublished())
}

// --- Seed ---

func TestSeed_Shape(t *testing.T) {
	r := New(Seed()...)
	assert.Equal(t, 25, r.Count())

	byCat := r.CountByCategory()
	assert.Equal(t, 5, byCat[category.Hero])
	assert.Equal(t, 5, byCat[category.Navbar])
	assert.Equal(t, 5, byCat[category.Footer])
	assert.Equal(t, 5, byCat[category.Features])
	assert.Equal(t, 5, byCat[category.CTA])

	byTier := r.CountByTier()
	assert.Equal(t, 15, byTier[TierFree])
	assert.Equal(t, 10, byTier[TierPro])

	for _, b := range r.All() {
		assert.Equal(t, b.ID, b.Slug, "id and slug must be equal by construction")
		assert.NotEmpty(t, b.Styles)
		assert.Contains(t, b.Styles, theme.DefaultStyle, "every block supports the default style")
		assert.NotNil(t, b.Dependencies)
	}
}

func TestSeed_KnownDependencies(t *testing.T) {
	r := New(Seed()...)
	b, ok := r.Get("hero-gradient")
	require.True(t, ok)
	assert.Equal(t, []string{"framer-motion"}, b.Dependencies)

	b, ok = r.Get("hero-centered")
	require.True(t, ok)
	assert.Empty(t, b.Dependencies)
}
