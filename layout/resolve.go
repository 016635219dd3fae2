package layout

// Resolve converts input into ordered list of class names. Span classes come
// first, followed by order and offset classes, each group in breakpoint order.
// When no breakpoint yields span class bare prefix is used, so result is never
// empty. Values are not checked, see Validate.
func Resolve(in Input, prefix string) []string {
	var spans, directives []string

	for _, b := range Breakpoints {
		spec := in[b]
		if spec == nil {
			continue
		}

		infix := b.infix()

		if span := spec.span(); span.truthy() {
			if span.kind == SizeBool {
				spans = append(spans, prefix+infix)
			} else {
				spans = append(spans, prefix+infix+"-"+span.String())
			}
		}
		// presence, not truthiness: offset 0 is legitimate
		if spec.Order != nil {
			directives = append(directives, "order"+infix+"-"+spec.Order.String())
		}
		if spec.Offset != nil {
			directives = append(directives, "offset"+infix+"-"+spec.Offset.String())
		}
	}

	if len(spans) == 0 {
		spans = append(spans, prefix)
	}
	return append(spans, directives...)
}
