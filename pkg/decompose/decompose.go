// Package decompose resolves characters into trees of named visual
// components, combining the curated knowledge base with IDS-derived
// structure.
package decompose

import (
	"fmt"

	"github.com/japaniel/heisigdb/pkg/ids"
	"github.com/japaniel/heisigdb/pkg/kb"
)

// Source tags record which resolution strategy produced a node.
const (
	SourceCurated        = "curated"
	SourceCuratedVariant = "curated-via-variant"
	SourceAtomic         = "atomic"
	SourceMapped         = "mapped"
	SourceIDS            = "ids"
	SourceNumbered       = "numbered-placeholder"
	SourceUnknown        = "unknown"
)

// DefaultMaxDepth bounds recursion through IDS structure.
const DefaultMaxDepth = 10

// Node is one node of a decomposition tree. A node with no children is a
// leaf; a leaf with an empty Name is an unresolved gap in coverage.
type Node struct {
	Char     string
	Name     string
	Source   string
	Operator rune
	Note     string
	Children []*Node
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Decomposer resolves characters against an immutable knowledge base and IDS
// table. Decomposition is a pure function of (character, depth, visited set),
// so a single Decomposer is safe for concurrent use across characters.
type Decomposer struct {
	Index    *kb.Index
	Table    *ids.Table
	MaxDepth int
}

// New creates a Decomposer with the default depth bound.
func New(index *kb.Index, table *ids.Table) *Decomposer {
	return &Decomposer{Index: index, Table: table, MaxDepth: DefaultMaxDepth}
}

// Decompose resolves char into a decomposition tree. A structural root
// stands for the queried character itself, so it carries the character and
// its resolved name; nested composites stay unnamed.
func (d *Decomposer) Decompose(char string) *Node {
	node := d.decompose(char, 0, nil)
	if node.Operator != 0 {
		node.Char = char
		node.Name = d.Index.NameOf(char)
	}
	return node
}

// decompose applies the resolution strategies in strict order, first match
// wins. visited is copied on descent so sibling branches only share the
// ancestor chain.
func (d *Decomposer) decompose(char string, depth int, visited map[string]bool) *Node {
	if visited[char] || depth > d.maxDepth() {
		// Cycle or depth cutoff: name by direct lookup only, no recursion.
		return d.leaf(char)
	}
	seen := make(map[string]bool, len(visited)+1)
	for c := range visited {
		seen[c] = true
	}
	seen[char] = true

	entry := d.Index.Lookup(char)
	name := d.Index.NameOf(char)

	// Curated decompositions are authoritative and final at one level.
	if entry != nil && len(entry.Components) > 0 {
		return d.curatedNode(char, name, entry.Components, SourceCurated)
	}

	// Structural decomposition from IDS is preferred over reusing a
	// variant's possibly mismatched internal structure.
	if raw, ok := d.Table.First(char); ok {
		if tree := ids.Parse(raw); tree != nil {
			return d.decomposeTree(tree, depth, seen)
		}
	}

	// No IDS: a script variant may reuse its canonical decomposition.
	if entry != nil && entry.Kind == kb.KindScriptVariant {
		if canonical := d.Index.Lookup(entry.VariantOf); canonical != nil && len(canonical.Components) > 0 {
			return d.curatedNode(char, name, canonical.Components, SourceCuratedVariant)
		}
	}

	if name != "" {
		source := SourceAtomic
		if entry.IsVariant() {
			source = SourceMapped
		}
		return &Node{Char: char, Name: name, Source: source}
	}

	return &Node{Char: char, Source: SourceUnknown}
}

// curatedNode emits one leaf child per listed component name, resolved back
// to its character through the keyword/alias index. The children are not
// decomposed further.
func (d *Decomposer) curatedNode(char, name string, components []string, source string) *Node {
	node := &Node{Char: char, Name: name, Source: source}
	for _, compName := range components {
		compChar, ok := d.Index.CharFor(compName)
		if !ok {
			compChar = "?"
		}
		node.Children = append(node.Children, &Node{Char: compChar, Name: compName})
	}
	return node
}

// decomposeTree resolves a parsed IDS syntax tree.
func (d *Decomposer) decomposeTree(tree ids.Node, depth int, visited map[string]bool) *Node {
	switch t := tree.(type) {
	case ids.Literal:
		return d.decompose(t.Char, depth+1, visited)
	case ids.Numbered:
		def, ok := d.Table.Numbered[t.N]
		desc := def.Description
		if !ok {
			desc = fmt.Sprintf("component %d", t.N)
		}
		if def.Expansion != "" {
			if subtree := ids.Parse(def.Expansion); subtree != nil {
				node := d.decomposeTree(subtree, depth+1, visited)
				if node.Name == "" {
					node.Note = fmt.Sprintf("{%d}: %s", t.N, desc)
				}
				return node
			}
		}
		return &Node{
			Char:   fmt.Sprintf("{%d}", t.N),
			Source: SourceNumbered,
			Note:   desc,
		}
	case ids.Op:
		node := &Node{Source: SourceIDS, Operator: t.Operator}
		chars := ""
		for _, child := range t.Children {
			resolved := d.decomposeTree(child, depth+1, visited)
			node.Children = append(node.Children, resolved)
			chars += resolved.Char
		}
		// Informational only, never used as a lookup key.
		node.Char = chars
		return node
	}
	return &Node{Char: "?", Source: SourceUnknown}
}

// leaf builds a recursion-free node for cycle/depth cutoffs.
func (d *Decomposer) leaf(char string) *Node {
	name := d.Index.NameOf(char)
	if name == "" {
		return &Node{Char: char, Source: SourceUnknown}
	}
	source := SourceAtomic
	if e := d.Index.Lookup(char); e != nil && e.IsVariant() {
		source = SourceMapped
	}
	return &Node{Char: char, Name: name, Source: source}
}

func (d *Decomposer) maxDepth() int {
	if d.MaxDepth > 0 {
		return d.MaxDepth
	}
	return DefaultMaxDepth
}
