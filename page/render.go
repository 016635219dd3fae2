package page

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gridkit/layout"
	"gridkit/markup"
)

// Renderer turns page nodes into markup.
type Renderer struct {
	b            *markup.Builder
	log          *zap.Logger
	strictLayout bool
}

// NewRenderer creates renderer using builder b. When strictLayout is set
// column specifications are checked against grid ranges.
func NewRenderer(b *markup.Builder, log *zap.Logger, strictLayout bool) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{b: b, log: log.Named("render"), strictLayout: strictLayout}
}

// Render produces document for the page. Failing nodes are left out and
// their errors returned together with whatever was rendered.
func (r *Renderer) Render(ctx context.Context, p *Page) (*etree.Document, error) {
	doc, body := markup.NewDocument(markup.DocumentProps{
		Title:      p.Title,
		Lang:       p.Lang,
		Stylesheet: p.Stylesheet,
	})

	tokens, err := r.nodes(ctx, p.Components, "components")
	for _, t := range tokens {
		body.AddChild(t)
	}
	return doc, err
}

// RenderNode produces markup for single node (with its children).
func (r *Renderer) RenderNode(ctx context.Context, n *Node) (etree.Token, error) {
	return r.node(ctx, n, n.Type)
}

func (r *Renderer) nodes(ctx context.Context, nodes []Node, path string) ([]etree.Token, error) {
	var (
		out  = make([]etree.Token, 0, len(nodes))
		errs error
	)
	for i := range nodes {
		if err := ctx.Err(); err != nil {
			return out, multierr.Append(errs, err)
		}
		t, err := r.node(ctx, &nodes[i], fmt.Sprintf("%s[%d]", path, i))
		errs = multierr.Append(errs, err)
		if t != nil {
			out = append(out, t)
		}
	}
	return out, errs
}

func (r *Renderer) node(ctx context.Context, n *Node, path string) (etree.Token, error) {
	children, errs := r.nodes(ctx, n.Children, path+".children")

	var (
		t   etree.Token
		err error
	)
	switch n.Type {
	case "text":
		t = markup.Text(n.Text)
	case "element":
		t = r.element(n, children)
	case "col":
		t, err = r.col(n, children)
	case "pagination":
		if n.Size != "" && n.Size != markup.PaginationSmall && n.Size != markup.PaginationLarge {
			r.log.Warn("Unexpected pagination size", zap.String("path", path), zap.String("size", n.Size))
		}
		t = r.b.Pagination(markup.PaginationProps{
			Prefix:   n.Prefix,
			Class:    n.Class,
			ClassMap: n.ClassMap,
			Size:     n.Size,
			ID:       n.ID,
			Attrs:    n.Attrs,
		}, children...)
	case "page-item":
		t = r.b.PageItem(n.itemProps(), withText(children, n.Text)...)
	case "tooltip":
		t, err = r.tooltip(n, path, withText(children, n.Text))
	default:
		pb, ok := markup.ParsePageButton(n.Type)
		if !ok {
			err = fmt.Errorf("%w %q", ErrUnknownComponent, n.Type)
			break
		}
		t = r.b.PageButton(pb, n.itemProps(), n.Label)
	}
	if err != nil {
		return nil, multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
	}
	return t, errs
}

func (r *Renderer) col(n *Node, children []etree.Token) (etree.Token, error) {
	in := n.Layout()
	if r.strictLayout {
		if err := layout.Validate(in); err != nil {
			return nil, err
		}
	}
	return r.b.Col(markup.ColProps{
		Prefix:   n.Prefix,
		Class:    n.Class,
		ClassMap: n.ClassMap,
		As:       n.As,
		ID:       n.ID,
		Attrs:    n.Attrs,
		Layout:   in,
	}, withText(children, n.Text)...), nil
}

func (r *Renderer) tooltip(n *Node, path string, children []etree.Token) (etree.Token, error) {
	placement, err := markup.ParsePlacement(n.Placement)
	if err != nil {
		r.log.Warn("Tooltip placement passed as is", zap.String("path", path), zap.Error(err))
	}
	return r.b.Tooltip(markup.TooltipProps{
		Prefix:     n.Prefix,
		Class:      n.Class,
		ClassMap:   n.ClassMap,
		ID:         n.ID,
		Placement:  placement,
		Style:      n.Style,
		ArrowAttrs: n.ArrowAttrs,
		Attrs:      n.Attrs,
	}, children...)
}

// element is plain element, its classes still go through class map.
func (r *Renderer) element(n *Node, children []etree.Token) etree.Token {
	tag := n.As
	if tag == "" {
		tag = "div"
	}
	elem := etree.NewElement(tag)
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		elem.CreateAttr(k, n.Attrs[k])
	}
	if n.ID != "" {
		elem.CreateAttr("id", n.ID)
	}
	if cls := r.b.Theme().Mapper(n.ClassMap).Join(n.Class); cls != "" {
		elem.CreateAttr("class", cls)
	}
	for _, c := range withText(children, n.Text) {
		elem.AddChild(c)
	}
	return elem
}

func (n *Node) itemProps() markup.PageItemProps {
	return markup.PageItemProps{
		Class:       n.Class,
		ClassMap:    n.ClassMap,
		Active:      n.Active,
		Disabled:    n.Disabled,
		ActiveLabel: n.ActiveLabel,
		Href:        n.Href,
		Attrs:       n.Attrs,
	}
}

// withText puts node text in front of its children.
func withText(children []etree.Token, text string) []etree.Token {
	if text == "" {
		return children
	}
	return append([]etree.Token{markup.Text(text)}, children...)
}
