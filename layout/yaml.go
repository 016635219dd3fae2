package layout

import (
	"fmt"
	"math"
	"strconv"

	yaml "gopkg.in/yaml.v3"
)

// numberText returns canonical text of numeric scalar, 06 and 6.0 both give
// "6". Non numeric scalars are returned as is.
func numberText(node *yaml.Node) (string, error) {
	switch node.ShortTag() {
	case "!!int", "!!float":
	default:
		return node.Value, nil
	}
	var f float64
	if err := node.Decode(&f); err != nil {
		return "", fmt.Errorf("line %d: bad number %q: %w", node.Line, node.Value, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return node.Value, nil
	}
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// UnmarshalYAML accepts booleans, numbers and strings.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: column size must be scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return fmt.Errorf("line %d: bad boolean column size: %w", node.Line, err)
		}
		*s = Bool(b)
	case "!!int", "!!float":
		v, err := numberText(node)
		if err != nil {
			return err
		}
		*s = Size{kind: SizeValue, value: v, numeric: true}
	case "!!null":
		*s = Bool(false)
	default:
		*s = SizeOf(node.Value)
	}
	return nil
}

// UnmarshalYAML accepts any scalar. Numbers are normalized, anything else
// is kept verbatim.
func (o *Order) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: column order must be scalar", node.Line)
	}
	v, err := numberText(node)
	if err != nil {
		return err
	}
	*o = OrderString(v)
	return nil
}

// UnmarshalYAML accepts any scalar. Numbers are normalized, anything else
// is kept verbatim.
func (o *Offset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: column offset must be scalar", node.Line)
	}
	v, err := numberText(node)
	if err != nil {
		return err
	}
	*o = OffsetString(v)
	return nil
}

// UnmarshalYAML decodes either bare size (scalar) or structured form
// (mapping with span, offset and order keys).
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var size Size
		if err := size.UnmarshalYAML(node); err != nil {
			return err
		}
		*s = Spec{bare: true, Span: &size}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: column specification must be scalar or mapping", node.Line)
	}

	spec := Spec{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		null := val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null"
		switch key.Value {
		case "span":
			// explicit null suppresses span, only missing key defaults to true
			size := Bool(false)
			if !null {
				if err := size.UnmarshalYAML(val); err != nil {
					return err
				}
			}
			spec.Span = &size
		case "offset":
			if null {
				continue
			}
			var off Offset
			if err := off.UnmarshalYAML(val); err != nil {
				return err
			}
			spec.Offset = &off
		case "order":
			if null {
				continue
			}
			var ord Order
			if err := ord.UnmarshalYAML(val); err != nil {
				return err
			}
			spec.Order = &ord
		default:
			return fmt.Errorf("line %d: unknown column specification field %q", key.Line, key.Value)
		}
	}
	*s = spec
	return nil
}

// ParseInput decodes YAML mapping of breakpoint names to specifications, for
// example `{md: 6, lg: {span: 3, order: first}}`.
func ParseInput(data []byte) (Input, error) {
	var raw map[string]*Spec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to decode column specification: %w", err)
	}
	in := make(Input, len(raw))
	for name, spec := range raw {
		b, ok := ParseBreakpoint(name)
		if !ok {
			return nil, fmt.Errorf("unknown breakpoint %q", name)
		}
		if spec != nil {
			in[b] = spec
		}
	}
	return in, nil
}
