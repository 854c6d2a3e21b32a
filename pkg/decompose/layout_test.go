package decompose

import "testing"

func TestLayoutLabel(t *testing.T) {
	cases := []struct {
		op   rune
		want string
	}{
		{'⿰', "left-right"},
		{'⿳', "top-mid-bottom"},
		{'⿴', "surround"},
		{'⿺', "bottom-left-wrap"},
		{'〾', ""},
		{'⿾', ""},
	}
	for _, c := range cases {
		if got := LayoutLabel(c.op); got != c.want {
			t.Fatalf("LayoutLabel(%c): expected %q, got %q", c.op, c.want, got)
		}
	}
}

func TestTopLevelLayout(t *testing.T) {
	d := testDecomposer()
	if got := d.TopLevelLayout("國"); got != "⿴ (surround)" {
		t.Fatalf("expected surround layout, got %q", got)
	}
	if got := d.TopLevelLayout("江"); got != "⿰ (left-right)" {
		t.Fatalf("expected left-right layout, got %q", got)
	}
	// Atomic sequence: no leading operator, no label.
	if got := d.TopLevelLayout("口"); got != "" {
		t.Fatalf("expected empty layout for atomic sequence, got %q", got)
	}
	if got := d.TopLevelLayout("犬"); got != "" {
		t.Fatalf("expected empty layout for unknown char, got %q", got)
	}
}
