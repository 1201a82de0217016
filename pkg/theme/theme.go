// Package theme defines the three LaufBlocks visual styles and their
// CSS variable sets. Themes are static data: three fixed Config values
// keyed by Style, immutable for the lifetime of the process.
package theme

import (
	"fmt"
	"strings"
)

// Style identifies one of the named visual variable sets.
type Style string

const (
	StyleMinimalist    Style = "minimalist"
	StyleHighBrand     Style = "high_brand"
	StyleNeoIndustrial Style = "neo_industrial"
)

// DefaultStyle is the style served when no preference is set. Variant
// source files never exist for the default style; the base file is it.
const DefaultStyle = StyleMinimalist

// Tailwind holds per-style utility class overrides applied on top of the
// CSS variables.
type Tailwind struct {
	FontWeight    string
	BorderWidth   string
	LetterSpacing string
}

// Config describes one visual style.
type Config struct {
	// Name is the human-readable display name.
	Name string
	// Description is a short blurb for style pickers.
	Description string
	// CSSVariables maps CSS custom property names to their values.
	CSSVariables map[string]string
	// Tailwind carries typography and border overrides.
	Tailwind Tailwind
}

// cssVarOrder fixes the emission order for CSSString and StyleObject so
// output is deterministic across runs.
var cssVarOrder = []string{
	"--primary",
	"--primary-foreground",
	"--secondary",
	"--secondary-foreground",
	"--accent",
	"--accent-foreground",
	"--muted",
	"--muted-foreground",
	"--border",
	"--radius",
	"--background",
	"--foreground",
}

var themes = map[Style]Config{
	StyleMinimalist: {
		Name:        "Minimalist",
		Description: "High whitespace, thin borders, subtle typography",
		CSSVariables: map[string]string{
			"--primary":              "240 5% 26%",
			"--primary-foreground":   "0 0% 100%",
			"--secondary":            "240 5% 96%",
			"--secondary-foreground": "240 5% 26%",
			"--accent":               "240 5% 90%",
			"--accent-foreground":    "240 5% 26%",
			"--muted":                "240 5% 96%",
			"--muted-foreground":     "240 5% 46%",
			"--border":               "240 5% 90%",
			"--radius":               "0.375rem",
			"--background":           "0 0% 100%",
			"--foreground":           "240 5% 10%",
		},
		Tailwind: Tailwind{
			FontWeight:    "300",
			BorderWidth:   "1px",
			LetterSpacing: "0.025em",
		},
	},
	StyleHighBrand: {
		Name:        "High-Brand",
		Description: "Bold typography, vibrant accents, gradients",
		CSSVariables: map[string]string{
			"--primary":              "262 83% 58%",
			"--primary-foreground":   "0 0% 100%",
			"--secondary":            "199 89% 48%",
			"--secondary-foreground": "0 0% 100%",
			"--accent":               "326 78% 60%",
			"--accent-foreground":    "0 0% 100%",
			"--muted":                "240 5% 96%",
			"--muted-foreground":     "240 5% 46%",
			"--border":               "262 40% 80%",
			"--radius":               "0.75rem",
			"--background":           "0 0% 100%",
			"--foreground":           "262 40% 10%",
		},
		Tailwind: Tailwind{
			FontWeight:    "700",
			BorderWidth:   "2px",
			LetterSpacing: "-0.025em",
		},
	},
	StyleNeoIndustrial: {
		Name:        "Neo-Industrial",
		Description: "Dark mode default, thick borders, high contrast",
		CSSVariables: map[string]string{
			"--primary":              "0 0% 100%",
			"--primary-foreground":   "0 0% 0%",
			"--secondary":            "0 0% 15%",
			"--secondary-foreground": "0 0% 100%",
			"--accent":               "47 100% 50%",
			"--accent-foreground":    "0 0% 0%",
			"--muted":                "0 0% 20%",
			"--muted-foreground":     "0 0% 60%",
			"--border":               "0 0% 100%",
			"--radius":               "0",
			"--background":           "0 0% 5%",
			"--foreground":           "0 0% 100%",
		},
		Tailwind: Tailwind{
			FontWeight:    "500",
			BorderWidth:   "3px",
			LetterSpacing: "0.05em",
		},
	},
}

// allStyles lists every style in display order.
var allStyles = []Style{StyleMinimalist, StyleHighBrand, StyleNeoIndustrial}

// Get returns the theme config for a style. The bool reports whether the
// style is known.
func Get(style Style) (Config, bool) {
	cfg, ok := themes[style]
	return cfg, ok
}

// AllStyles returns every known style in display order.
func AllStyles() []Style {
	out := make([]Style, len(allStyles))
	copy(out, allStyles)
	return out
}

// Name returns the display name for a style, or the raw style string when
// unknown.
func Name(style Style) string {
	if cfg, ok := themes[style]; ok {
		return cfg.Name
	}
	return string(style)
}

// IsValid reports whether a style is one of the known styles.
func IsValid(style Style) bool {
	_, ok := themes[style]
	return ok
}

// Normalize validates a persisted style preference. Unknown or empty
// values fall back to the default style rather than erroring, since a
// stale preference must never break rendering.
func Normalize(raw string) Style {
	s := Style(raw)
	if IsValid(s) {
		return s
	}
	return DefaultStyle
}

// CSSString renders a style's variables as newline-joined "key: value;"
// declarations, ready for injection into a <style> block.
func CSSString(style Style) string {
	cfg, ok := themes[style]
	if !ok {
		return ""
	}
	var b strings.Builder
	for i, key := range cssVarOrder {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s;", key, cfg.CSSVariables[key])
	}
	return b.String()
}

// StyleObject returns a copy of a style's variable map in a form directly
// applicable as inline element styles. Unknown styles yield an empty map.
func StyleObject(style Style) map[string]string {
	cfg, ok := themes[style]
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(cfg.CSSVariables))
	for k, v := range cfg.CSSVariables {
		out[k] = v
	}
	return out
}
