package compressor

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
)

// dupEdge is one edge compression must add to account for an external edge
// that touched a vertex shared between two instances.
type dupEdge struct {
	from, to, label int
	directed        bool
}

// walkOverlaps finds every host vertex shared between two or more
// instances and calls onPair once per (earlier instance index, later
// instance index, shared vertex) triple. A vertex already reported against
// every later instance is unmarked so it is not visited again — marks is
// the same side-table markInstances built, reused here as "still pending
// for overlap processing" rather than "claimed by an instance".
func walkOverlaps(instances *instance.List, marks gstore.VertexMarks, onPair func(i, j, sharedVertex int)) {
	items := instances.Items
	for i, inst1 := range items {
		for _, v1 := range inst1.Vertices {
			if !marks[v1] {
				continue
			}
			for j := i + 1; j < len(items); j++ {
				for _, v2 := range items[j].Vertices {
					if v1 == v2 {
						onPair(i, j, v1)
					}
				}
			}
			marks[v1] = false
		}
	}
}

// addOverlapEdges adds one OVERLAP edge per pair of instances sharing a
// vertex, plus the duplicate edges (see duplicateEdgesFor's four cases) for
// every external edge incident to the shared vertex.
func addOverlapEdges(
	compressed, host *gstore.Graph,
	instances *instance.List,
	marks gstore.VertexMarks, edgeMarks gstore.EdgeMarks, vmap gstore.VertexMap,
	overlapLabel int,
) {
	seen := make(map[[2]int]bool)
	walkOverlaps(instances, marks, func(i, j, v1 int) {
		key := [2]int{i, j}
		if !seen[key] {
			seen[key] = true
			compressed.AddEdge(i, j, false, overlapLabel)
		}
		for _, e := range host.Vertices[v1].Edges {
			if edgeMarks[e] {
				continue
			}
			for _, d := range duplicateEdgesFor(host, marks, vmap, e, i, j) {
				compressed.AddEdge(d.from, d.to, d.directed, d.label)
			}
		}
	})
}

// countOverlapEdges returns the same edge count addOverlapEdges would add,
// without building any edges, for SizeIfCompressed's benefit.
func countOverlapEdges(
	host *gstore.Graph,
	instances *instance.List,
	marks gstore.VertexMarks, edgeMarks gstore.EdgeMarks, vmap gstore.VertexMap,
) int {
	count := 0
	seen := make(map[[2]int]bool)
	walkOverlaps(instances, marks, func(i, j, v1 int) {
		key := [2]int{i, j}
		if !seen[key] {
			seen[key] = true
			count++
		}
		for _, e := range host.Vertices[v1].Edges {
			if edgeMarks[e] {
				continue
			}
			count += len(duplicateEdgesFor(host, marks, vmap, e, i, j))
		}
	})

	return count
}

// duplicateEdgesFor returns the edges a single external-or-internal edge e
// incident to sub1's shared vertex contributes once sub2 also claims it:
//
//   - sub1 -> external: external -> sub2
//   - external -> sub1: sub2 -> external
//   - sub1 -> another vertex of sub1 (not self): sub1 -> sub2, plus
//     sub2 -> sub2 if the other endpoint was already processed
//   - self-edge on sub1: sub1 -> sub2 and sub2 -> sub2, plus sub2 -> sub1
//     if directed
func duplicateEdgesFor(host *gstore.Graph, marks gstore.VertexMarks, vmap gstore.VertexMap, e, sub1, sub2 int) []dupEdge {
	edge := host.Edges[e]
	fromIsSub1 := vmap[edge.From] == sub1
	toIsSub1 := vmap[edge.To] == sub1

	switch {
	case edge.From == edge.To:
		out := []dupEdge{
			{sub1, sub2, edge.Label, edge.Directed},
			{sub2, sub2, edge.Label, edge.Directed},
		}
		if edge.Directed {
			out = append(out, dupEdge{sub2, sub1, edge.Label, edge.Directed})
		}
		return out
	case fromIsSub1 && toIsSub1:
		out := []dupEdge{{sub1, sub2, edge.Label, edge.Directed}}
		if !marks[edge.From] || !marks[edge.To] {
			out = append(out, dupEdge{sub2, sub2, edge.Label, edge.Directed})
		}
		return out
	case fromIsSub1:
		return []dupEdge{{vmap[edge.To], sub2, edge.Label, edge.Directed}}
	default:
		return []dupEdge{{sub2, vmap[edge.From], edge.Label, edge.Directed}}
	}
}
