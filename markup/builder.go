// Package markup builds XHTML elements of grid framework components.
package markup

import (
	"maps"
	"slices"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"gridkit/theme"
)

// Builder creates component elements using a single theme. It keeps no state
// between calls and may be used concurrently.
type Builder struct {
	theme       *theme.Theme
	log         *zap.Logger
	generateIDs bool
	strictA11y  bool
}

// Option changes Builder behavior.
type Option func(*Builder)

// WithGeneratedIDs makes components requiring id for accessibility generate
// one when it is missing.
func WithGeneratedIDs(enable bool) Option {
	return func(b *Builder) {
		b.generateIDs = enable
	}
}

// WithStrictA11y turns missing accessibility attributes into errors instead
// of warnings.
func WithStrictA11y(enable bool) Option {
	return func(b *Builder) {
		b.strictA11y = enable
	}
}

// New returns component builder. Nil theme means no overrides.
func New(th *theme.Theme, log *zap.Logger, opts ...Option) *Builder {
	if th == nil {
		th = theme.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	b := &Builder{theme: th, log: log.Named("markup")}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Theme returns builder theme.
func (b *Builder) Theme() *theme.Theme {
	return b.theme
}

// Text returns character data to be used as a child.
func Text(s string) etree.Token {
	return etree.NewText(s)
}

// setAttrs copies attributes in key order so output is reproducible.
func setAttrs(elem *etree.Element, attrs map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		elem.CreateAttr(k, attrs[k])
	}
}

func addChildren(elem *etree.Element, children []etree.Token) {
	for _, c := range children {
		if c != nil {
			elem.AddChild(c)
		}
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
