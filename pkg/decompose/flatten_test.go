package decompose

import (
	"reflect"
	"testing"
)

func TestFlattenNamedStopsAtNamedNodes(t *testing.T) {
	// A named child with its own children (the variant-fallback shape) is
	// reported as a single component, not descended.
	root := &Node{Char: "新", Children: []*Node{
		{Char: "立", Name: "vase", Children: []*Node{
			{Char: "亠", Name: "top hat"},
		}},
		{Char: "斤", Name: "axe"},
	}}
	got := FlattenNamed(root)
	want := []Part{{Char: "立", Name: "vase"}, {Char: "斤", Name: "axe"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlattenNamedRootExempt(t *testing.T) {
	// The root is named too, but its components are still reported.
	root := &Node{Char: "語", Name: "word", Children: []*Node{
		{Char: "言", Name: "say"},
		{Char: "口", Name: "mouth"},
	}}
	got := FlattenNamed(root)
	if len(got) != 2 {
		t.Fatalf("expected root descent, got %v", got)
	}
}

func TestFlattenNamedIncludesGaps(t *testing.T) {
	root := &Node{Char: "x", Children: []*Node{
		{Char: "言", Name: "say"},
		{Char: "𠮛", Source: SourceUnknown},
	}}
	got := FlattenNamed(root)
	want := []Part{{Char: "言", Name: "say"}, {Char: "𠮛"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFlattenNamedDedup(t *testing.T) {
	root := &Node{Char: "吅", Children: []*Node{
		{Char: "口", Name: "mouth"},
		{Char: "口", Name: "mouth"},
	}}
	got := FlattenNamed(root)
	if len(got) != 1 {
		t.Fatalf("expected repeated component de-duplicated, got %v", got)
	}
}

func TestFlattenNamedLeafRoot(t *testing.T) {
	if got := FlattenNamed(&Node{Char: "口", Name: "mouth"}); len(got) != 0 {
		t.Fatalf("expected no parts for a leaf root, got %v", got)
	}
}

func TestCountLeaves(t *testing.T) {
	root := &Node{Children: []*Node{
		{Char: "言", Name: "say"},
		{Children: []*Node{
			{Char: "口", Name: "mouth"},
			{Char: "𠮛"},
		}},
	}}
	resolved, unresolved := CountLeaves(root)
	if resolved != 2 || unresolved != 1 {
		t.Fatalf("expected 2 resolved and 1 unresolved, got %d and %d", resolved, unresolved)
	}
}
