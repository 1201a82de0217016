package registry

import (
	"github.com/laufblocks/laufblocks/pkg/category"
	"github.com/laufblocks/laufblocks/pkg/theme"
)

// allStyles is the style set every current block ships with.
var allStyles = []theme.Style{theme.StyleMinimalist, theme.StyleHighBrand, theme.StyleNeoIndustrial}

func block(slug, name, description string, cat category.ID, tier Tier, preview string, deps ...string) BlockMeta {
	if deps == nil {
		deps = []string{}
	}
	return BlockMeta{
		ID:           slug,
		Slug:         slug,
		Name:         name,
		Description:  description,
		Category:     cat,
		Tier:         tier,
		PreviewImage: preview,
		Dependencies: deps,
		Styles:       allStyles,
	}
}

// Seed returns the production block catalog. This is the source of truth
// for which blocks exist; adding a block means creating its component
// file under the blocks directory and adding an entry here.
func Seed() []BlockMeta {
	return []BlockMeta{
		// Heroes
		block("hero-gradient", "Gradient Hero",
			"A bold hero section with animated gradient background and customizable colors",
			category.Hero, TierFree, "/blocks/heroes/hero-gradient.png", "framer-motion"),
		block("hero-centered", "Centered Hero",
			"A clean, centered hero layout with optional badge and dual CTAs",
			category.Hero, TierFree, "/blocks/heroes/hero-centered.png"),
		block("hero-split", "Split Hero",
			"A two-column hero with image on one side and content on the other, featuring bullet points",
			category.Hero, TierFree, "/blocks/heroes/hero-split.png"),
		block("hero-video", "Video Hero",
			"A full-screen hero with video background, overlay controls, and play/mute toggles",
			category.Hero, TierPro, "/blocks/heroes/hero-video.png"),
		block("hero-animated", "Animated Hero",
			"A dynamic hero with Framer Motion animations, floating particles, and text cycling",
			category.Hero, TierPro, "/blocks/heroes/hero-animated.png", "framer-motion"),

		// Navbars
		block("navbar-simple", "Simple Navbar",
			"A clean navigation bar with logo, links, and CTA button with mobile menu",
			category.Navbar, TierFree, "/blocks/navbars/navbar-simple.png"),
		block("navbar-dropdowns", "Dropdown Navbar",
			"Navigation bar with dropdown menus for nested link structures",
			category.Navbar, TierFree, "/blocks/navbars/navbar-dropdowns.png"),
		block("navbar-transparent", "Transparent Navbar",
			"A transparent navbar that reveals a backdrop on scroll, perfect for hero sections",
			category.Navbar, TierFree, "/blocks/navbars/navbar-transparent.png"),
		block("navbar-megamenu", "Mega Menu Navbar",
			"A full-width mega menu navigation with sections, descriptions, and featured content",
			category.Navbar, TierPro, "/blocks/navbars/navbar-megamenu.png"),
		block("navbar-search", "Search Navbar",
			"Navigation bar with integrated search functionality and keyboard shortcut support",
			category.Navbar, TierPro, "/blocks/navbars/navbar-search.png"),

		// Footers
		block("footer-simple", "Simple Footer",
			"A minimal footer with logo, quick links, and copyright notice",
			category.Footer, TierFree, "/blocks/footers/footer-simple.png"),
		block("footer-columns", "Column Footer",
			"A multi-column footer layout with organized link sections",
			category.Footer, TierFree, "/blocks/footers/footer-columns.png"),
		block("footer-newsletter", "Newsletter Footer",
			"Footer with integrated email newsletter signup form",
			category.Footer, TierFree, "/blocks/footers/footer-newsletter.png"),
		block("footer-megalinks", "Mega Links Footer",
			"An extensive footer with multiple sections, badges, and comprehensive site navigation",
			category.Footer, TierPro, "/blocks/footers/footer-megalinks.png"),
		block("footer-social", "Social Footer",
			"A social-first footer with prominent social media icons and centered layout",
			category.Footer, TierPro, "/blocks/footers/footer-social.png"),

		// Features
		block("features-grid", "Grid Features",
			"A clean grid layout for showcasing features with icons and descriptions",
			category.Features, TierFree, "/blocks/features/features-grid.png"),
		block("features-alternating", "Alternating Features",
			"Left-right alternating layout with images and feature bullet points",
			category.Features, TierFree, "/blocks/features/features-alternating.png"),
		block("features-bento", "Bento Features",
			"A modern bento box grid layout with varying card sizes",
			category.Features, TierFree, "/blocks/features/features-bento.png"),
		block("features-icons", "Icon Features",
			"Large icon-focused features with multiple layout variants",
			category.Features, TierPro, "/blocks/features/features-icons.png"),
		block("features-animated", "Animated Features",
			"Scroll-triggered animated features with stagger effects and hover interactions",
			category.Features, TierPro, "/blocks/features/features-animated.png", "framer-motion"),

		// CTAs
		block("cta-simple", "Simple CTA",
			"A clean call-to-action section with headline and buttons",
			category.CTA, TierFree, "/blocks/cta/cta-simple.png"),
		block("cta-image", "Image CTA",
			"Call-to-action with a side image and content layout",
			category.CTA, TierFree, "/blocks/cta/cta-image.png"),
		block("cta-banner", "Banner CTA",
			"Full-width banner with multiple color variants and inline layout",
			category.CTA, TierFree, "/blocks/cta/cta-banner.png"),
		block("cta-floating", "Floating CTA",
			"A fixed bottom bar that appears after delay with dismissible functionality",
			category.CTA, TierPro, "/blocks/cta/cta-floating.png"),
		block("cta-gradient", "Gradient CTA",
			"A vibrant CTA with animated gradient background and floating orbs",
			category.CTA, TierPro, "/blocks/cta/cta-gradient.png", "framer-motion"),
	}
}
