// Package layout converts per-breakpoint column specifications into grid class
// names.
package layout

import (
	"strconv"
	"strings"
)

// Breakpoint is a named responsive tier.
type Breakpoint string

const (
	XL Breakpoint = "xl"
	LG Breakpoint = "lg"
	MD Breakpoint = "md"
	SM Breakpoint = "sm"
	XS Breakpoint = "xs"
)

// Breakpoints lists all tiers in resolution order. Resulting class order
// follows it.
var Breakpoints = [...]Breakpoint{XL, LG, MD, SM, XS}

// ParseBreakpoint returns breakpoint by name.
func ParseBreakpoint(name string) (Breakpoint, bool) {
	b := Breakpoint(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Breakpoints {
		if b == known {
			return b, true
		}
	}
	return "", false
}

// infix is inserted between prefix and value, xs has none.
func (b Breakpoint) infix() string {
	if b == XS {
		return ""
	}
	return "-" + string(b)
}

// SizeKind discriminates Size variants.
type SizeKind int

const (
	SizeBool  SizeKind = iota // true or false
	SizeAuto                  // literal "auto"
	SizeValue                 // number or numeral string, not checked
)

// Size is the span part of a column specification.
type Size struct {
	kind    SizeKind
	flag    bool
	value   string
	numeric bool
}

// True is the span of a column without explicit size.
var True = Size{kind: SizeBool, flag: true}

// Bool returns boolean size.
func Bool(b bool) Size {
	return Size{kind: SizeBool, flag: b}
}

// Auto returns size "auto".
func Auto() Size {
	return Size{kind: SizeAuto, value: "auto"}
}

// Cols returns numeric size.
func Cols(n int) Size {
	return Size{kind: SizeValue, value: strconv.Itoa(n), numeric: true}
}

// SizeOf returns size from its textual form. "auto" gives Auto(), anything
// else is kept verbatim.
func SizeOf(s string) Size {
	if s == "auto" {
		return Auto()
	}
	return Size{kind: SizeValue, value: s}
}

// Kind returns size variant.
func (s Size) Kind() SizeKind {
	return s.kind
}

// truthy reports whether size produces span class. Numeric zero, empty string
// and false do not.
func (s Size) truthy() bool {
	switch s.kind {
	case SizeBool:
		return s.flag
	case SizeAuto:
		return true
	default:
		if s.value == "" {
			return false
		}
		if s.numeric {
			if f, err := strconv.ParseFloat(s.value, 64); err == nil && f == 0 {
				return false
			}
		}
		return true
	}
}

func (s Size) String() string {
	if s.kind == SizeBool {
		return strconv.FormatBool(s.flag)
	}
	return s.value
}

// Order is the visual ordering directive: "first", "last" or a number.
type Order struct {
	value string
}

var (
	First = Order{value: "first"}
	Last  = Order{value: "last"}
)

// OrderOf returns numeric order.
func OrderOf(n int) Order {
	return Order{value: strconv.Itoa(n)}
}

// OrderString returns order from its textual form, kept verbatim.
func OrderString(s string) Order {
	return Order{value: s}
}

func (o Order) String() string {
	return o.value
}

// Offset is number of grid units to shift column by.
type Offset struct {
	value string
}

// OffsetOf returns numeric offset.
func OffsetOf(n int) Offset {
	return Offset{value: strconv.Itoa(n)}
}

// OffsetString returns offset from its textual form, kept verbatim.
func OffsetString(s string) Offset {
	return Offset{value: s}
}

func (o Offset) String() string {
	return o.value
}

// Spec is a column specification for a single breakpoint. It is either a bare
// size or structured form with optional span, offset and order. Nil Span in
// structured form means True.
type Spec struct {
	bare   bool
	Span   *Size
	Offset *Offset
	Order  *Order
}

// Bare returns specification consisting of size only.
func Bare(s Size) *Spec {
	return &Spec{bare: true, Span: &s}
}

// Structured returns specification in structured form, any argument may be
// nil.
func Structured(span *Size, offset *Offset, order *Order) *Spec {
	return &Spec{Span: span, Offset: offset, Order: order}
}

// IsBare reports whether specification was given as bare size.
func (s *Spec) IsBare() bool {
	return s.bare
}

// span returns effective span.
func (s *Spec) span() Size {
	if s.Span == nil {
		return True
	}
	return *s.Span
}

func (s *Spec) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.bare {
		return s.span().String()
	}
	parts := make([]string, 0, 3)
	if s.Span != nil {
		parts = append(parts, "span: "+s.Span.String())
	}
	if s.Offset != nil {
		parts = append(parts, "offset: "+s.Offset.String())
	}
	if s.Order != nil {
		parts = append(parts, "order: "+s.Order.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Input maps breakpoints to specifications. Missing or nil entries carry no
// directive.
type Input map[Breakpoint]*Spec
