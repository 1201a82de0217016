package registry

import (
	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

// Tier is a block's access level. Pro access is a superset of free.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// BlockMeta describes one reusable UI block offered in the catalog.
// Entries are registered once at startup and never mutated; consumers
// hold the slug and re-fetch rather than caching copies.
type BlockMeta struct {
	// ID and Slug are both unique; by construction they are always equal.
	ID   string `json:"id"`
	Slug string `json:"slug"`

	Name         string `json:"name"`
	Description  string `json:"description"`
	PreviewImage string `json:"preview_image"`

	Category category.ID   `json:"category"`
	Tier     Tier          `json:"tier"`
	Styles   []theme.Style `json:"styles"`

	// Dependencies lists npm packages the block needs at runtime.
	Dependencies []string `json:"dependencies"`

	// PropsInterface is the raw TypeScript props snippet, when curated.
	PropsInterface string `json:"props_interface,omitempty"`

	// Published gates visibility. Nil means published; only an explicit
	// false hides the block.
	Published *bool `json:"published,omitempty"`
}

// IsPublished reports whether the block is visible to users.
func (b BlockMeta) IsPublished() bool {
	return b.Published == nil || *b.Published
}

// Filters selects blocks in Registry.Filter. Zero-valued fields impose no
// constraint; set fields combine with AND.
type Filters struct {
	Category  category.ID
	Tier      Tier
	Style     theme.Style
	Search    string
	Published *bool
}
