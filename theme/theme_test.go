package theme

import (
	"slices"
	"testing"
)

func TestTheme_Prefix(t *testing.T) {
	th := &Theme{Prefixes: map[string]string{"col": "column", "tooltip": ""}}

	tests := []struct {
		override, logical, want string
	}{
		{"", "col", "column"},
		{"my-col", "col", "my-col"},
		{"", "pagination", "pagination"},
		{"", "tooltip", "tooltip"}, // empty theme entry is ignored
	}
	for _, tt := range tests {
		if got := th.Prefix(tt.override, tt.logical); got != tt.want {
			t.Errorf("Prefix(%q, %q) = %q, want %q", tt.override, tt.logical, got, tt.want)
		}
	}

	var nilTheme *Theme
	if got := nilTheme.Prefix("", "col"); got != "col" {
		t.Errorf("nil theme Prefix() = %q, want col", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"nothing", nil, ""},
		{"drops empty", []string{"", "a", "", "b"}, "a b"},
		{"splits fragments", []string{"  a  b ", "c"}, "a b c"},
		{"keeps duplicates", []string{"a", "a"}, "a a"},
		{"conditional", []string{"page-item", When(true, "active"), When(false, "disabled")}, "page-item active"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.parts...); got != tt.want {
				t.Errorf("Join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapper(t *testing.T) {
	th := &Theme{ClassMap: map[string]string{"col": "col_x1", "arrow": "arrow_y2"}}

	m := th.Mapper(nil)
	if got := m.Join("extra", "col", "col-md-6"); got != "extra col_x1 col-md-6" {
		t.Errorf("theme mapper Join() = %q", got)
	}

	local := th.Mapper(map[string]string{"extra": "e"})
	if got := local.Join("extra", "col"); got != "e col" {
		t.Errorf("local mapper Join() = %q, local map must replace theme map", got)
	}

	var nilTheme *Theme
	if got := nilTheme.Mapper(nil).Join("a", "b"); got != "a b" {
		t.Errorf("nil theme mapper Join() = %q", got)
	}
}

func TestMapper_Append(t *testing.T) {
	m := (&Theme{ClassMap: map[string]string{"col-md-a b": "x1", "a": "a1"}}).Mapper(nil)

	tests := []struct {
		name   string
		attr   string
		tokens []string
		want   string
	}{
		{"nothing", "", nil, ""},
		{"to empty", "", []string{"col", "col-md-6"}, "col col-md-6"},
		{"to existing", "extra", []string{"col"}, "extra col"},
		{"drops empty", "", []string{"", "a", ""}, "a1"},
		{"token kept whole", "", []string{"col-md-a b"}, "x1"},
		{"unmapped token kept whole", "", []string{"col-md-b a"}, "col-md-b a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Append(tt.attr, tt.tokens...); got != tt.want {
				t.Errorf("Append() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClasses(t *testing.T) {
	if got := Classes(" a  b\tc "); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Classes() = %q", got)
	}
}
