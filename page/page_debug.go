package page

import (
	"strings"

	"gridkit/layout"
	"gridkit/utils/debug"
)

// String returns readable tree of the page description together with column
// classes it resolves to. It is stored in debug report.
func (p *Page) String() string {
	if p == nil {
		return "<nil Page>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Page version[%d] components[%d]", p.Version, len(p.Components))
	tw.Field(1, "source", p.SrcName)
	tw.Field(1, "title", p.Title)
	tw.Field(1, "lang", p.Lang)
	tw.Field(1, "stylesheet", p.Stylesheet)
	for i := range p.Components {
		p.Components[i].dump(tw, 1)
	}
	return tw.String()
}

func (n *Node) dump(tw *debug.TreeWriter, depth int) {
	tw.Line(depth, "%s", n.Type)
	for _, f := range []struct{ label, value string }{
		{"prefix", n.Prefix}, {"class", n.Class}, {"as", n.As}, {"id", n.ID},
		{"size", n.Size}, {"placement", n.Placement}, {"href", n.Href},
		{"label", n.Label}, {"text", n.Text},
	} {
		tw.Field(depth+1, f.label, f.value)
	}
	if n.Active || n.Disabled {
		tw.Line(depth+1, "active[%t] disabled[%t]", n.Active, n.Disabled)
	}
	tw.Map(depth+1, "attrs", n.Attrs)
	tw.Map(depth+1, "class_map", n.ClassMap)

	if in := n.Layout(); len(in) > 0 {
		specs := make([]string, 0, len(in))
		for _, bp := range layout.Breakpoints {
			if s := in[bp]; s != nil {
				specs = append(specs, string(bp)+"="+s.String())
			}
		}
		tw.Line(depth+1, "layout: %s", strings.Join(specs, " "))
	}
	if n.Type == "col" {
		prefix := n.Prefix
		if prefix == "" {
			prefix = "col"
		}
		tw.Line(depth+1, "resolved: %s", strings.Join(layout.Resolve(n.Layout(), prefix), " "))
	}
	for i := range n.Children {
		n.Children[i].dump(tw, depth+1)
	}
}
