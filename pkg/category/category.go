// Package category defines the fixed vocabulary of block categories and
// their display metadata.
package category

import "sort"

// ID is a block category key.
type ID string

const (
	Hero         ID = "hero"
	Navbar       ID = "navbar"
	Footer       ID = "footer"
	Features     ID = "features"
	Pricing      ID = "pricing"
	Testimonials ID = "testimonials"
	CTA          ID = "cta"
	FAQ          ID = "faq"
	Contact      ID = "contact"
	Logos        ID = "logos"
	Stats        ID = "stats"
	Blog         ID = "blog"
	Ecommerce    ID = "ecommerce"
	Auth         ID = "auth"
	Forms        ID = "forms"
)

// Meta is the static descriptor of a category. The icon is carried as a
// lucide icon name; rendering it is the client's concern.
type Meta struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
}

var categories = map[ID]Meta{
	Hero:         {ID: Hero, Label: "Hero", Description: "Eye-catching hero sections for landing pages", Icon: "layout", Order: 1},
	Navbar:       {ID: Navbar, Label: "Navbar", Description: "Navigation bars and headers", Icon: "navigation", Order: 2},
	Footer:       {ID: Footer, Label: "Footer", Description: "Page footers with links and branding", Icon: "panel-bottom", Order: 3},
	Features:     {ID: Features, Label: "Features", Description: "Feature showcases and benefit sections", Icon: "grid-3x3", Order: 4},
	Pricing:      {ID: Pricing, Label: "Pricing", Description: "Pricing tables and plan comparisons", Icon: "dollar-sign", Order: 5},
	Testimonials: {ID: Testimonials, Label: "Testimonials", Description: "Customer reviews and social proof", Icon: "message-square-quote", Order: 6},
	CTA:          {ID: CTA, Label: "CTA", Description: "Call-to-action sections", Icon: "mouse-pointer-click", Order: 7},
	FAQ:          {ID: FAQ, Label: "FAQ", Description: "Frequently asked questions sections", Icon: "help-circle", Order: 8},
	Contact:      {ID: Contact, Label: "Contact", Description: "Contact forms and information", Icon: "mail", Order: 9},
	Logos:        {ID: Logos, Label: "Logos", Description: "Logo clouds and partner showcases", Icon: "building-2", Order: 10},
	Stats:        {ID: Stats, Label: "Stats", Description: "Statistics and metrics displays", Icon: "bar-chart-3", Order: 11},
	Blog:         {ID: Blog, Label: "Blog", Description: "Blog post cards and article layouts", Icon: "file-text", Order: 12},
	Ecommerce:    {ID: Ecommerce, Label: "E-commerce", Description: "Product cards and shopping components", Icon: "shopping-cart", Order: 13},
	Auth:         {ID: Auth, Label: "Auth", Description: "Login, signup, and authentication forms", Icon: "lock", Order: 14},
	Forms:        {ID: Forms, Label: "Forms", Description: "Form layouts and input groups", Icon: "form-input", Order: 15},
}

// Get looks up category metadata by id.
func Get(id ID) (Meta, bool) {
	m, ok := categories[id]
	return m, ok
}

// All returns every category sorted by display order.
func All() []Meta {
	out := make([]Meta, 0, len(categories))
	for _, m := range categories {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Label returns the display label for a category, falling back to the raw
// id for unknown values.
func Label(id ID) string {
	if m, ok := categories[id]; ok {
		return m.Label
	}
	return string(id)
}

// IDs returns all category ids in display order.
func IDs() []ID {
	all := All()
	out := make([]ID, len(all))
	for i, m := range all {
		out[i] = m.ID
	}
	return out
}

// IsValid reports whether id names a known category.
func IsValid(id ID) bool {
	_, ok := categories[id]
	return ok
}
