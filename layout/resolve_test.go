package layout

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func ptr[T any](v T) *T {
	return &v
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "empty input falls back to prefix",
			in:   Input{},
			want: []string{"col"},
		},
		{
			name: "nil input",
			in:   nil,
			want: []string{"col"},
		},
		{
			name: "single breakpoint span",
			in:   Input{MD: Bare(Cols(6))},
			want: []string{"col-md-6"},
		},
		{
			name: "iteration order puts md before xs",
			in:   Input{XS: Bare(Bool(true)), MD: Bare(Cols(4))},
			want: []string{"col-md-4", "col"},
		},
		{
			name: "structured with all fields",
			in:   Input{LG: Structured(ptr(Cols(3)), ptr(OffsetOf(2)), ptr(First))},
			want: []string{"col-lg-3", "order-lg-first", "offset-lg-2"},
		},
		{
			name: "zero offset is present",
			in:   Input{SM: Structured(nil, ptr(OffsetOf(0)), nil)},
			want: []string{"col-sm", "offset-sm-0"},
		},
		{
			name: "suppressed span keeps order",
			in:   Input{XL: Structured(ptr(Bool(false)), nil, ptr(Last))},
			want: []string{"col", "order-xl-last"},
		},
		{
			name: "auto span",
			in:   Input{SM: Bare(Auto())},
			want: []string{"col-sm-auto"},
		},
		{
			name: "numeral string span",
			in:   Input{XL: Bare(SizeOf("12"))},
			want: []string{"col-xl-12"},
		},
		{
			name: "xs has no infix",
			in:   Input{XS: Structured(ptr(Cols(2)), ptr(OffsetOf(1)), ptr(OrderOf(3)))},
			want: []string{"col-2", "order-3", "offset-1"},
		},
		{
			name: "bare false yields fallback only",
			in:   Input{MD: Bare(Bool(false))},
			want: []string{"col"},
		},
		{
			name: "numeric zero span is falsy",
			in:   Input{MD: Bare(Cols(0)), SM: Bare(Cols(5))},
			want: []string{"col-sm-5"},
		},
		{
			name: "numeral string zero is truthy",
			in:   Input{MD: Bare(SizeOf("0"))},
			want: []string{"col-md-0"},
		},
		{
			name: "empty string span is falsy",
			in:   Input{MD: Bare(SizeOf(""))},
			want: []string{"col"},
		},
		{
			name: "malformed values pass through",
			in:   Input{LG: Structured(ptr(SizeOf("huge")), ptr(OffsetString("-1")), ptr(OrderString("middle")))},
			want: []string{"col-lg-huge", "order-lg-middle", "offset-lg--1"},
		},
		{
			name: "spans grouped before directives across breakpoints",
			in: Input{
				XS: Structured(ptr(Cols(12)), nil, ptr(Last)),
				MD: Structured(ptr(Cols(6)), ptr(OffsetOf(3)), nil),
				XL: Structured(nil, nil, ptr(First)),
			},
			want: []string{"col-xl", "col-md-6", "col-12", "order-xl-first", "offset-md-3", "order-last"},
		},
		{
			name: "unknown breakpoints are ignored",
			in:   Input{Breakpoint("xxl"): Bare(Cols(3))},
			want: []string{"col"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in, "col")
			if !slices.Equal(got, tt.want) {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_CustomPrefix(t *testing.T) {
	got := Resolve(Input{MD: Bare(Cols(6))}, "my-col")
	want := []string{"my-col-md-6"}
	if !slices.Equal(got, want) {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
	got = Resolve(nil, "my-col")
	if !slices.Equal(got, []string{"my-col"}) {
		t.Errorf("Resolve() = %q, want fallback prefix", got)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	in := Input{
		XS: Bare(Bool(true)),
		SM: Structured(nil, ptr(OffsetOf(0)), nil),
		MD: Structured(ptr(Cols(4)), ptr(OffsetOf(2)), ptr(First)),
		LG: Bare(Auto()),
		XL: Structured(ptr(Bool(false)), nil, ptr(Last)),
	}
	before := make(map[Breakpoint]string, len(in))
	for b, s := range in {
		before[b] = s.String()
	}

	first := Resolve(in, "col")
	for range 50 {
		if got := Resolve(in, "col"); !slices.Equal(got, first) {
			t.Fatalf("Resolve() not deterministic: %q vs %q", got, first)
		}
	}

	if len(in) != len(before) {
		t.Fatalf("input changed size: %d, want %d", len(in), len(before))
	}
	for b, s := range in {
		if s.String() != before[b] {
			t.Errorf("input for %s mutated: %s, was %s", b, s, before[b])
		}
	}
}

func TestResolve_NeverEmptyTokens(t *testing.T) {
	in := Input{
		XS: Bare(Bool(false)),
		SM: Bare(Cols(0)),
		MD: Structured(ptr(Bool(false)), ptr(OffsetOf(0)), ptr(OrderOf(0))),
	}
	got := Resolve(in, "col")
	if len(got) == 0 {
		t.Fatal("Resolve() returned empty result")
	}
	for _, tok := range got {
		if tok == "" || strings.ContainsAny(tok, " \t") {
			t.Errorf("Resolve() produced bad token %q", tok)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := Input{
			XS: Bare(Bool(true)),
			SM: Bare(Auto()),
			MD: Structured(ptr(Cols(12)), ptr(OffsetOf(0)), ptr(First)),
			LG: Structured(nil, ptr(OffsetOf(11)), ptr(OrderOf(12))),
			XL: Structured(ptr(Bool(false)), nil, ptr(Last)),
		}
		if err := Validate(in); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("all problems reported", func(t *testing.T) {
		in := Input{
			XS: Bare(Cols(13)),
			MD: Structured(ptr(SizeOf("wide")), ptr(OffsetOf(-1)), ptr(OrderString("middle"))),
		}
		err := Validate(in)
		if err == nil {
			t.Fatal("Validate() expected error")
		}
		errs := multierr.Errors(err)
		if len(errs) != 4 {
			t.Fatalf("Validate() reported %d problems, want 4: %v", len(errs), err)
		}
		var re *RangeError
		if !errors.As(errs[0], &re) {
			t.Fatalf("expected RangeError, got %T", errs[0])
		}
		// md is checked before xs
		if re.Breakpoint != MD || re.Field != "span" || re.Value != "wide" {
			t.Errorf("first problem = %+v", re)
		}
		if !strings.Contains(errs[3].Error(), "xs") {
			t.Errorf("last problem = %v, want xs", errs[3])
		}
	})

	t.Run("resolve ignores validation", func(t *testing.T) {
		in := Input{MD: Bare(Cols(42))}
		if err := Validate(in); err == nil {
			t.Error("Validate() expected error")
		}
		if got := Resolve(in, "col"); !slices.Equal(got, []string{"col-md-42"}) {
			t.Errorf("Resolve() = %q", got)
		}
	})
}

func TestParseBreakpoint(t *testing.T) {
	for _, name := range []string{"xs", "SM", " md ", "lg", "xl"} {
		if _, ok := ParseBreakpoint(name); !ok {
			t.Errorf("ParseBreakpoint(%q) failed", name)
		}
	}
	if _, ok := ParseBreakpoint("xxl"); ok {
		t.Error("ParseBreakpoint(xxl) unexpectedly succeeded")
	}
}
