package instance

// Absorb folds src's vertices and edges into dst in place, preserving
// dst's sorted-strictly-increasing invariant. Used to build a recursive
// chain instance out of two or more instances joined by connecting edges.
func Absorb(dst, src *Instance) {
	for _, v := range src.Vertices {
		dst.Vertices = insertSortedUnique(dst.Vertices, v)
	}
	for _, e := range src.Edges {
		dst.Edges = insertSortedUnique(dst.Edges, e)
	}
}

// IncludeEdge adds edgeIdx to inst's edge set, preserving the sorted
// invariant. It is a no-op if edgeIdx is already present.
func IncludeEdge(inst *Instance, edgeIdx int) {
	inst.Edges = insertSortedUnique(inst.Edges, edgeIdx)
}
