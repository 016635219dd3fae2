// Package page reads page descriptions and renders them into XHTML.
package page

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"gridkit/layout"
)

// ErrUnknownComponent is reported for nodes of unsupported type.
var ErrUnknownComponent = errors.New("unknown component type")

const pageVersion = 1

// Page is a single page description.
type Page struct {
	Version    int    `yaml:"version"`
	Title      string `yaml:"title"`
	Lang       string `yaml:"lang"`
	Stylesheet string `yaml:"stylesheet"`
	Components []Node `yaml:"components"`

	// source file name when page was loaded from file
	SrcName string `yaml:"-"`
}

// Node is a component or plain content in page tree. Fields not relevant for
// particular node type are ignored.
type Node struct {
	Type     string            `yaml:"type"`
	Prefix   string            `yaml:"prefix,omitempty"`
	Class    string            `yaml:"class,omitempty"`
	ClassMap map[string]string `yaml:"class_map,omitempty"`
	As       string            `yaml:"as,omitempty"`
	ID       string            `yaml:"id,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`

	// col
	XS *layout.Spec `yaml:"xs,omitempty"`
	SM *layout.Spec `yaml:"sm,omitempty"`
	MD *layout.Spec `yaml:"md,omitempty"`
	LG *layout.Spec `yaml:"lg,omitempty"`
	XL *layout.Spec `yaml:"xl,omitempty"`

	// pagination
	Size string `yaml:"size,omitempty"`

	// tooltip
	Placement  string            `yaml:"placement,omitempty"`
	Style      string            `yaml:"style,omitempty"`
	ArrowAttrs map[string]string `yaml:"arrow_attrs,omitempty"`

	// page items
	Href        string `yaml:"href,omitempty"`
	Label       string `yaml:"label,omitempty"`
	ActiveLabel string `yaml:"active_label,omitempty"`
	Active      bool   `yaml:"active,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`

	Text     string `yaml:"text,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// Layout collects breakpoint specifications of the node.
func (n *Node) Layout() layout.Input {
	in := make(layout.Input)
	for bp, s := range map[layout.Breakpoint]*layout.Spec{
		layout.XS: n.XS, layout.SM: n.SM, layout.MD: n.MD, layout.LG: n.LG, layout.XL: n.XL,
	} {
		if s != nil {
			in[bp] = s
		}
	}
	return in
}

// Decode reads page description. Unknown fields are errors.
func Decode(r io.Reader) (*Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("page description is empty")
		}
		return nil, fmt.Errorf("unable to decode page description: %w", err)
	}
	if p.Version != pageVersion {
		return nil, fmt.Errorf("unsupported page description version %d", p.Version)
	}
	if p.Lang != "" {
		tag, err := language.Parse(p.Lang)
		if err != nil {
			return nil, fmt.Errorf("bad page language %q: %w", p.Lang, err)
		}
		p.Lang = tag.String()
	}
	return &p, nil
}

// Load reads page description from file.
func Load(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open page description: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.SrcName = path
	return p, nil
}
