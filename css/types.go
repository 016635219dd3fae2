// Package css extracts class names defined by a stylesheet and checks
// generated markup against them.
package css

import (
	"sort"

	"github.com/maruel/natural"
)

// Stylesheet holds class names found in selectors of a parsed stylesheet.
type Stylesheet struct {
	Source   string
	Rulesets int      // number of rulesets seen, including nested ones
	Warnings []string // non fatal parsing problems

	classes map[string]struct{}
}

func newStylesheet(source string) *Stylesheet {
	return &Stylesheet{
		Source:   source,
		Warnings: make([]string, 0),
		classes:  make(map[string]struct{}),
	}
}

func (s *Stylesheet) addClass(name string) {
	s.classes[name] = struct{}{}
}

// HasClass reports whether any selector of the stylesheet refers to class.
func (s *Stylesheet) HasClass(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.classes[name]
	return ok
}

// Len returns number of distinct classes.
func (s *Stylesheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.classes)
}

// Classes returns all distinct class names in natural order, so "col-2"
// precedes "col-10".
func (s *Stylesheet) Classes() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.classes))
	for c := range s.classes {
		out = append(out, c)
	}
	sort.Sort(natural.StringSlice(out))
	return out
}

// Lint returns classes not defined by sheet, each reported once, in natural
// order.
func Lint(sheet *Stylesheet, classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	var unknown []string
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		if !sheet.HasClass(c) {
			unknown = append(unknown, c)
		}
	}
	sort.Sort(natural.StringSlice(unknown))
	return unknown
}
