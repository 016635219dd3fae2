package markup

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"gridkit/layout"
)

// ColProps describes grid column.
type ColProps struct {
	Prefix   string            // overrides theme prefix, default "col"
	Class    string            // additional classes, emitted first
	ClassMap map[string]string // replaces theme class map for this element
	As       string            // element name, default "div"
	ID       string
	Attrs    map[string]string
	Layout   layout.Input
}

// Col returns column element.
func (b *Builder) Col(p ColProps, children ...etree.Token) *etree.Element {
	prefix := b.theme.Prefix(p.Prefix, "col")
	classes := layout.Resolve(p.Layout, prefix)

	elem := etree.NewElement(orDefault(p.As, "div"))
	setAttrs(elem, p.Attrs)
	if p.ID != "" {
		elem.CreateAttr("id", p.ID)
	}
	// resolved classes are not split, values go into class names verbatim
	m := b.theme.Mapper(p.ClassMap)
	elem.CreateAttr("class", m.Append(m.Join(p.Class), classes...))
	addChildren(elem, children)

	b.log.Debug("Column", zap.String("prefix", prefix), zap.Strings("classes", classes))
	return elem
}
