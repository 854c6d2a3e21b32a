package decompose

// Part is a (component character, resolved name) pair produced by
// flattening.
type Part struct {
	Char string
	Name string
}

// FlattenNamed flattens a decomposition tree into the ordered list of named
// components, depth-first left to right, de-duplicated by exact (char, name)
// pair. The first named node along each path wins: its own children (the
// variant-fallback case) are not descended. The root is exempt so its
// components are always reported even though the root itself is named.
func FlattenNamed(root *Node) []Part {
	var parts []Part
	seen := make(map[Part]bool)
	var walk func(n *Node, isRoot bool)
	walk = func(n *Node, isRoot bool) {
		if !isRoot && n.Name != "" {
			p := Part{Char: n.Char, Name: n.Name}
			if !seen[p] {
				seen[p] = true
				parts = append(parts, p)
			}
			return
		}
		if n.IsLeaf() {
			if isRoot {
				return
			}
			p := Part{Char: n.Char, Name: n.Name}
			if !seen[p] {
				seen[p] = true
				parts = append(parts, p)
			}
			return
		}
		for _, child := range n.Children {
			walk(child, false)
		}
	}
	walk(root, true)
	return parts
}

// CountLeaves returns the number of resolved and unresolved leaves in the
// tree, for coverage accounting.
func CountLeaves(n *Node) (resolved, unresolved int) {
	if n.IsLeaf() {
		if n.Name != "" {
			return 1, 0
		}
		return 0, 1
	}
	for _, child := range n.Children {
		r, u := CountLeaves(child)
		resolved += r
		unresolved += u
	}
	return resolved, unresolved
}
