package markup

import (
	"github.com/beevik/etree"

	"gridkit/theme"
)

// Pagination sizes supported by the framework.
const (
	PaginationSmall = "sm"
	PaginationLarge = "lg"
)

// PaginationProps describes pagination list.
type PaginationProps struct {
	Prefix   string // default "pagination"
	Class    string
	ClassMap map[string]string
	Size     string // "sm", "lg" or empty
	ID       string
	Attrs    map[string]string
}

// Pagination returns pagination list, items are normally produced by PageItem
// and PageButton.
func (b *Builder) Pagination(p PaginationProps, items ...etree.Token) *etree.Element {
	prefix := b.theme.Prefix(p.Prefix, "pagination")

	var size string
	if p.Size != "" {
		size = prefix + "-" + p.Size
	}

	elem := etree.NewElement("ul")
	setAttrs(elem, p.Attrs)
	if p.ID != "" {
		elem.CreateAttr("id", p.ID)
	}
	elem.CreateAttr("class", b.theme.Mapper(p.ClassMap).Join(p.Class, prefix, size))
	addChildren(elem, items)
	return elem
}

// PageItemProps describes single pagination entry.
type PageItemProps struct {
	Class       string
	ClassMap    map[string]string
	Active      bool
	Disabled    bool
	ActiveLabel string            // screen reader label of active item, default "(current)"
	Href        string            // default "#"
	Attrs       map[string]string // set on link element
}

// PageItem returns pagination entry. Active and disabled entries are not
// links.
func (b *Builder) PageItem(p PageItemProps, children ...etree.Token) *etree.Element {
	m := b.theme.Mapper(p.ClassMap)

	li := etree.NewElement("li")
	li.CreateAttr("class", m.Join(p.Class, "page-item", theme.When(p.Active, "active"), theme.When(p.Disabled, "disabled")))

	var link *etree.Element
	if p.Active || p.Disabled {
		link = li.CreateElement("span")
	} else {
		link = li.CreateElement("a")
		link.CreateAttr("href", orDefault(p.Href, "#"))
	}
	link.CreateAttr("class", m.Join("page-link"))
	setAttrs(link, p.Attrs)
	addChildren(link, children)

	if p.Active {
		sr := link.CreateElement("span")
		sr.CreateAttr("class", m.Join("sr-only"))
		sr.SetText(orDefault(p.ActiveLabel, "(current)"))
	}
	return li
}

// PageButton is a predefined navigation entry.
type PageButton int

const (
	PageFirst PageButton = iota
	PagePrev
	PageEllipsis
	PageNext
	PageLast
)

var pageButtons = [...]struct {
	name, glyph, label string
}{
	PageFirst:    {"first", "«", "First"},
	PagePrev:     {"prev", "‹", "Previous"},
	PageEllipsis: {"ellipsis", "…", "More"},
	PageNext:     {"next", "›", "Next"},
	PageLast:     {"last", "»", "Last"},
}

// ParsePageButton returns button by its name: first, prev, ellipsis, next,
// last.
func ParsePageButton(name string) (PageButton, bool) {
	for i, pb := range pageButtons {
		if pb.name == name {
			return PageButton(i), true
		}
	}
	return 0, false
}

func (pb PageButton) String() string {
	if int(pb) < 0 || int(pb) >= len(pageButtons) {
		return "unknown"
	}
	return pageButtons[pb].name
}

// PageButton returns navigation entry. Visible glyph is replaced by label when
// one is given, screen reader text stays.
func (b *Builder) PageButton(pb PageButton, p PageItemProps, label string) *etree.Element {
	def := pageButtons[PageEllipsis]
	if int(pb) >= 0 && int(pb) < len(pageButtons) {
		def = pageButtons[pb]
	}

	visible := etree.NewElement("span")
	visible.CreateAttr("aria-hidden", "true")
	visible.SetText(orDefault(label, def.glyph))

	sr := etree.NewElement("span")
	sr.CreateAttr("class", b.theme.Mapper(p.ClassMap).Join("sr-only"))
	sr.SetText(def.label)

	return b.PageItem(p, visible, sr)
}
