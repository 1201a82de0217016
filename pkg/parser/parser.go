// Package parser extracts metadata from block source files using
// structural pattern matching.
//
// This is deliberately not a language parser. Every extractor is a
// best-effort regex over semi-structured text: nested Props-named
// interfaces, generic types spanning a statement boundary, or comment
// syntax inside string literals will misparse. Consumers treat every
// derived field as optional and advisory, so a failed match degrades the
// metadata, never the block. Keep that contract when touching this
// package; callers only depend on ParseBlockSource.
package parser

import (
	"regexp"
	"sort"
	"strings"
)

// PropDefinition is one property recovered from a Props interface.
// Derived, ephemeral data: recomputed on each load, never persisted.
type PropDefinition struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Optional     bool   `json:"optional"`
	Description  string `json:"description,omitempty"`
	DefaultValue string `json:"default_value,omitempty"`
}

// Result aggregates everything ParseBlockSource can recover from one
// source file. Empty fields mean the corresponding pattern did not match.
type Result struct {
	ComponentName  string           `json:"component_name,omitempty"`
	PropsInterface string           `json:"props_interface,omitempty"`
	Props          []PropDefinition `json:"props"`
	Dependencies   []string         `json:"dependencies"`
	IsClient       bool             `json:"is_client"`
	Description    string           `json:"description,omitempty"`
}

var (
	// Matches `export interface XxxProps { ... }` tolerating one level of
	// nested braces (inline object types). Deeper nesting truncates.
	exportedInterfaceRe = regexp.MustCompile(`export\s+interface\s+(\w+Props)\s*\{([^}]*(?:\{[^}]*\}[^}]*)*)\}`)
	plainInterfaceRe    = regexp.MustCompile(`interface\s+(\w+Props)\s*\{([^}]+)\}`)

	interfaceBodyRe = regexp.MustCompile(`(?s)\{(.*)\}`)
	propLineRe      = regexp.MustCompile(`^(\w+)(\?)?:\s*(.+)$`)

	importRe = regexp.MustCompile(`import\s+(?:[\w\s{},*]+\s+from\s+)?['"]([^'"]+)['"]`)

	exportFuncRe    = regexp.MustCompile(`export\s+function\s+(\w+)`)
	exportConstRe   = regexp.MustCompile(`export\s+const\s+(\w+)\s*=`)
	exportDefaultRe = regexp.MustCompile(`export\s+default\s+(\w+)`)
	keywordTokenRe  = regexp.MustCompile(`function|class`)

	fileDescriptionRe = regexp.MustCompile(`(?:['"]use client['"];\s*)?/\*\*\s*\n\s*\*\s*([^\n@*]+)`)
)

// ExtractPropsInterface returns the first interface declaration whose
// name ends in Props, preferring an exported one. The bool reports
// whether a match was found.
func ExtractPropsInterface(source string) (string, bool) {
	if m := exportedInterfaceRe.FindString(source); m != "" {
		return m, true
	}
	if m := plainInterfaceRe.FindString(source); m != "" {
		return m, true
	}
	return "", false
}

// ParsePropsInterface splits an interface snippet into prop definitions.
// Descriptions and @default values are recovered by proximity regex
// against the original snippet, which can attribute the wrong comment
// when multiple properties share similar names.
func ParsePropsInterface(interfaceText string) []PropDefinition {
	props := []PropDefinition{}

	body := interfaceBodyRe.FindStringSubmatch(interfaceText)
	if body == nil {
		return props
	}

	for _, line := range splitStatements(body[1]) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*") {
			continue
		}

		m := propLineRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		name, optional, propType := m[1], m[2], m[3]

		props = append(props, PropDefinition{
			Name:         name,
			Type:         strings.TrimSpace(propType),
			Optional:     optional == "?",
			Description:  propDescription(interfaceText, name),
			DefaultValue: propDefault(interfaceText, name),
		})
	}

	return props
}

// splitStatements breaks an interface body on semicolons and newlines.
func splitStatements(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ';' || r == '\n'
	})
}

// propDescription recovers the doc comment immediately preceding a prop.
func propDescription(interfaceText, name string) string {
	re, err := regexp.Compile(`/\*\*[^*]*\*/\s*` + regexp.QuoteMeta(name))
	if err != nil {
		return ""
	}
	block := re.FindString(interfaceText)
	if block == "" {
		return ""
	}
	descRe := regexp.MustCompile(`/\*\*\s*\*?\s*([^*]+)`)
	if m := descRe.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// propDefault recovers an @default tag value preceding a prop.
func propDefault(interfaceText, name string) string {
	re, err := regexp.Compile(`@default\s+([^\n*]+)[\s*/]*` + regexp.QuoteMeta(name))
	if err != nil {
		return ""
	}
	if m := re.FindStringSubmatch(interfaceText); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractDependencies returns the npm packages imported by the source,
// deduplicated and sorted. Relative imports, the `@/` path alias, and
// react itself are excluded; scoped packages keep scope plus package as
// the dependency unit.
func ExtractDependencies(source string) []string {
	seen := make(map[string]bool)

	for _, m := range importRe.FindAllStringSubmatch(source, -1) {
		importPath := m[1]

		if strings.HasPrefix(importPath, ".") || strings.HasPrefix(importPath, "@/") {
			continue
		}
		if importPath == "react" {
			continue
		}

		if strings.HasPrefix(importPath, "@") {
			parts := strings.Split(importPath, "/")
			if len(parts) >= 2 {
				seen[parts[0]+"/"+parts[1]] = true
			}
			continue
		}
		if pkg := strings.Split(importPath, "/")[0]; pkg != "" {
			seen[pkg] = true
		}
	}

	deps := make([]string, 0, len(seen))
	for d := range seen {
		deps = append(deps, d)
	}
	sort.Strings(deps)
	return deps
}

// ExtractComponentName finds the exported component: a named exported
// function, then a named exported const, then a named default export
// (skipping default exports that are keyword artifacts, not identifiers).
func ExtractComponentName(source string) (string, bool) {
	if m := exportFuncRe.FindStringSubmatch(source); m != nil {
		return m[1], true
	}
	if m := exportConstRe.FindStringSubmatch(source); m != nil {
		return m[1], true
	}
	if m := exportDefaultRe.FindStringSubmatch(source); m != nil && !keywordTokenRe.MatchString(m[1]) {
		return m[1], true
	}
	return "", false
}

// IsClientComponent reports whether the source begins with the
// "use client" directive, after leading whitespace only.
func IsClientComponent(source string) bool {
	s := strings.TrimLeft(source, " \t\r\n")
	return strings.HasPrefix(s, `"use client"`) || strings.HasPrefix(s, `'use client'`)
}

// ExtractDescription returns the first descriptive line of a doc comment
// at the top of the file, optionally after the client directive.
func ExtractDescription(source string) (string, bool) {
	if m := fileDescriptionRe.FindStringSubmatch(source); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ParseBlockSource runs every extractor over one source text.
func ParseBlockSource(source string) Result {
	res := Result{
		Dependencies: ExtractDependencies(source),
		IsClient:     IsClientComponent(source),
		Props:        []PropDefinition{},
	}

	if name, ok := ExtractComponentName(source); ok {
		res.ComponentName = name
	}
	if desc, ok := ExtractDescription(source); ok {
		res.Description = desc
	}
	if iface, ok := ExtractPropsInterface(source); ok {
		res.PropsInterface = iface
		res.Props = ParsePropsInterface(iface)
	}

	return res
}
