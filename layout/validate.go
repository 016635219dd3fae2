package layout

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// Grid dimensions of the target framework.
const (
	MinColumns = 1
	MaxColumns = 12
)

// RangeError describes a single value Validate rejected.
type RangeError struct {
	Breakpoint Breakpoint
	Field      string
	Value      string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: unsupported %s value %q", e.Breakpoint, e.Field, e.Value)
}

// Validate checks input against values the grid framework defines classes
// for: span true, false, "auto" or 1-12, offset 0-12, order "first", "last"
// or 1-12. All problems are reported together. Resolve never calls Validate,
// callers opt in.
func Validate(in Input) error {
	var err error
	for _, b := range Breakpoints {
		spec := in[b]
		if spec == nil {
			continue
		}
		span := spec.span()
		if span.kind == SizeValue && !inRange(span.value, MinColumns, MaxColumns) {
			err = multierr.Append(err, &RangeError{Breakpoint: b, Field: "span", Value: span.value})
		}
		if spec.Offset != nil && !inRange(spec.Offset.value, 0, MaxColumns) {
			err = multierr.Append(err, &RangeError{Breakpoint: b, Field: "offset", Value: spec.Offset.value})
		}
		if spec.Order != nil && *spec.Order != First && *spec.Order != Last && !inRange(spec.Order.value, MinColumns, MaxColumns) {
			err = multierr.Append(err, &RangeError{Breakpoint: b, Field: "order", Value: spec.Order.value})
		}
	}
	return err
}

func inRange(s string, lo, hi int) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}
