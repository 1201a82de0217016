package registry

import (
	"strings"

	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

// Query functions are pure, side-effect-free reads over All(). The
// catalog is small (tens to low thousands of entries) so every query is a
// linear scan; that is a deliberate choice, not a missing index.

// Filter returns blocks matching every set criterion. Result order is the
// order produced by All().
func (r *Registry) Filter(f Filters) []BlockMeta {
	blocks := r.All()
	out := make([]BlockMeta, 0, len(blocks))

	search := strings.ToLower(f.Search)

	for _, b := range blocks {
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		if f.Tier != "" && b.Tier != f.Tier {
			continue
		}
		if f.Style != "" && !hasStyle(b.Styles, f.Style) {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		if f.Published != nil && b.IsPublished() != *f.Published {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matchesSearch reports whether the lowercased query is a substring of
// the block's name, description, or slug.
func matchesSearch(b BlockMeta, query string) bool {
	return strings.Contains(strings.ToLower(b.Name), query) ||
		strings.Contains(strings.ToLower(b.Description), query) ||
		strings.Contains(strings.ToLower(b.Slug), query)
}

func hasStyle(styles []theme.Style, want theme.Style) bool {
	for _, s := range styles {
		if s == want {
			return true
		}
	}
	return false
}

// ByCategory returns published blocks in one category.
func (r *Registry) ByCategory(c category.ID) []BlockMeta {
	return r.Filter(Filters{Category: c})
}

// ByTier returns published blocks at one tier.
func (r *Registry) ByTier(t Tier) []BlockMeta {
	return r.Filter(Filters{Tier: t})
}

// FreeBlocks returns published free-tier blocks.
func (r *Registry) FreeBlocks() []BlockMeta {
	return r.ByTier(TierFree)
}

// ProBlocks returns published pro-tier blocks.
func (r *Registry) ProBlocks() []BlockMeta {
	return r.ByTier(TierPro)
}

// Search returns published blocks whose name, description, or slug
// contains the query, case-insensitively.
func (r *Registry) Search(query string) []BlockMeta {
	return r.Filter(Filters{Search: query})
}

// DefaultRelatedLimit is the conventional number of related blocks to
// surface alongside a detail view.
const DefaultRelatedLimit = 5

// Related returns up to limit other blocks in the same category as slug,
// excluding slug itself, in catalog order. Unknown slugs and
// non-positive limits yield an empty result.
func (r *Registry) Related(slug string, limit int) []BlockMeta {
	block, ok := r.Get(slug)
	if !ok || limit <= 0 {
		return []BlockMeta{}
	}

	out := make([]BlockMeta, 0, limit)
	for _, b := range r.ByCategory(block.Category) {
		if b.Slug == slug {
			continue
		}
		out = append(out, b)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Count returns the number of published blocks.
func (r *Registry) Count() int {
	return len(r.All())
}

// CountByCategory tallies published blocks per category.
func (r *Registry) CountByCategory() map[category.ID]int {
	counts := make(map[category.ID]int)
	for _, b := range r.All() {
		counts[b.Category]++
	}
	return counts
}

// CountByTier tallies published blocks per tier.
func (r *Registry) CountByTier() map[Tier]int {
	counts := map[Tier]int{TierFree: 0, TierPro: 0}
	for _, b := range r.All() {
		counts[b.Tier]++
	}
	return counts
}
