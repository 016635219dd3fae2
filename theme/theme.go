// Package theme resolves class prefixes and assembles class attribute values.
package theme

import (
	"strings"
)

// Theme holds prefix overrides and class name mapping shared by all
// components.
type Theme struct {
	// Prefixes maps logical component name ("col", "pagination", "tooltip") to
	// class prefix actually used.
	Prefixes map[string]string
	// ClassMap maps class names to their replacements, for example hashed names
	// produced by CSS modules.
	ClassMap map[string]string
}

// Default returns theme without any overrides.
func Default() *Theme {
	return &Theme{}
}

// Prefix returns class prefix for a component. Non-empty override wins, then
// theme prefix for logical name, then logical name itself.
func (t *Theme) Prefix(override, logical string) string {
	if override != "" {
		return override
	}
	if t != nil {
		if p, ok := t.Prefixes[logical]; ok && p != "" {
			return p
		}
	}
	return logical
}

// Mapper returns class mapper for a component. Component local map replaces
// theme map entirely when not empty.
func (t *Theme) Mapper(local map[string]string) Mapper {
	if len(local) > 0 {
		return Mapper{names: local}
	}
	if t == nil {
		return Mapper{}
	}
	return Mapper{names: t.ClassMap}
}

// Mapper maps class names before joining them.
type Mapper struct {
	names map[string]string
}

// Map returns replacement for a single class name.
func (m Mapper) Map(class string) string {
	if v, ok := m.names[class]; ok && v != "" {
		return v
	}
	return class
}

// Join maps every class in fragments and joins them.
func (m Mapper) Join(fragments ...string) string {
	var sb strings.Builder
	for _, f := range fragments {
		for c := range strings.FieldsSeq(f) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.Map(c))
		}
	}
	return sb.String()
}

// Append adds tokens to class attribute value attr. Every token is mapped
// whole and kept as is, whitespace inside it included. Empty tokens are
// dropped.
func (m Mapper) Append(attr string, tokens ...string) string {
	var sb strings.Builder
	sb.WriteString(attr)
	for _, c := range tokens {
		if c == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.Map(c))
	}
	return sb.String()
}

// Join merges class fragments into single attribute value. Empty fragments
// are dropped, fragments holding several classes are split on whitespace.
func Join(fragments ...string) string {
	return Mapper{}.Join(fragments...)
}

// Classes splits class attribute value into class names.
func Classes(attr string) []string {
	return strings.Fields(attr)
}

// When returns s if cond is true and empty string otherwise. It mirrors
// conditional class fragments: Join(base, When(active, "active")).
func When(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}
