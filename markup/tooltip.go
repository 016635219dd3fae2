package markup

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrMissingID is reported when element requires id for accessibility and has
// none.
var ErrMissingID = errors.New("id is required for accessibility")

// Placement is the direction tooltip is positioned towards.
type Placement string

const (
	PlacementAutoStart   Placement = "auto-start"
	PlacementAuto        Placement = "auto"
	PlacementAutoEnd     Placement = "auto-end"
	PlacementTopStart    Placement = "top-start"
	PlacementTop         Placement = "top"
	PlacementTopEnd      Placement = "top-end"
	PlacementRightStart  Placement = "right-start"
	PlacementRight       Placement = "right"
	PlacementRightEnd    Placement = "right-end"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementLeftEnd     Placement = "left-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
)

var placements = []Placement{
	PlacementAutoStart, PlacementAuto, PlacementAutoEnd,
	PlacementTopStart, PlacementTop, PlacementTopEnd,
	PlacementRightStart, PlacementRight, PlacementRightEnd,
	PlacementBottomEnd, PlacementBottom, PlacementBottomStart,
	PlacementLeftEnd, PlacementLeft, PlacementLeftStart,
}

// ParsePlacement checks placement name. Empty name gives default (right).
func ParsePlacement(name string) (Placement, error) {
	if name == "" {
		return PlacementRight, nil
	}
	for _, p := range placements {
		if string(p) == name {
			return p, nil
		}
	}
	return Placement(name), fmt.Errorf("unknown tooltip placement %q", name)
}

// TooltipProps describes tooltip.
type TooltipProps struct {
	Prefix     string // default "tooltip"
	Class      string
	ClassMap   map[string]string
	ID         string
	Placement  Placement // default right, not checked
	Style      string
	ArrowAttrs map[string]string
	Attrs      map[string]string // applied last, may replace any attribute
}

// Tooltip returns tooltip element with arrow and inner container holding
// children. Missing id is logged or, in strict mode, reported as
// ErrMissingID. When id generation is on missing id is replaced.
func (b *Builder) Tooltip(p TooltipProps, children ...etree.Token) (*etree.Element, error) {
	prefix := b.theme.Prefix(p.Prefix, "tooltip")
	placement := p.Placement
	if placement == "" {
		placement = PlacementRight
	}
	m := b.theme.Mapper(p.ClassMap)

	id := p.ID
	if id == "" {
		switch {
		case b.generateIDs:
			u, err := uuid.NewV7()
			if err != nil {
				return nil, fmt.Errorf("unable to generate tooltip id: %w", err)
			}
			id = prefix + "-" + u.String()
			b.log.Debug("Generated tooltip id", zap.String("id", id))
		case b.strictA11y:
			return nil, fmt.Errorf("tooltip: %w", ErrMissingID)
		default:
			b.log.Warn("Tooltip has no id, it will not be accessible")
		}
	}

	elem := etree.NewElement("div")
	if p.Style != "" {
		elem.CreateAttr("style", p.Style)
	}
	elem.CreateAttr("role", "tooltip")
	elem.CreateAttr("x-placement", string(placement))
	elem.CreateAttr("class", m.Join(p.Class, prefix, "bs-tooltip-"+string(placement)))
	if id != "" {
		elem.CreateAttr("id", id)
	}
	setAttrs(elem, p.Attrs)

	arrow := elem.CreateElement("div")
	arrow.CreateAttr("class", m.Join("arrow"))
	setAttrs(arrow, p.ArrowAttrs)

	inner := elem.CreateElement("div")
	inner.CreateAttr("class", m.Join(prefix+"-inner"))
	addChildren(inner, children)

	return elem, nil
}
