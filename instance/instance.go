// Package instance implements Instance and Instance List bookkeeping: a
// compact record of which vertices and edges of a host graph form one
// occurrence of a candidate substructure.
//
// There is no refcounted instance lifetime here: Go's garbage collector
// already reclaims an *Instance the moment nothing reachable holds a
// reference to it, so List.Insert's "drop this instance" case simply lets
// it go rather than decrementing a counter. The parent-instance
// back-pointer is kept as a plain pointer rather than an arena index —
// Instances form a tree (never a cycle), so a pointer costs nothing extra
// to follow or collect.
package instance

import (
	"sort"

	"github.com/katalvlaran/subdue/gstore"
)

// NoNewVertex marks Instance.NewVertex when an extension added only an edge
// (both endpoints were already present in the parent instance).
const NoNewVertex = -1

// Instance is one occurrence of a pattern within a host graph.
//
// Invariant: Vertices and Edges are each strictly increasing. Overlap
// detection, instance equality, and extension all rely on this.
type Instance struct {
	Vertices []int // sorted, strictly increasing host vertex indices
	Edges    []int // sorted, strictly increasing host edge indices

	MinMatchCost float64 // lowest edit cost observed matching this instance to a pattern

	Parent *Instance // the instance before the last extension, or nil for a seed

	NewVertex int // index into Vertices of the vertex this extension added, or NoNewVertex
	NewEdge   int // index into Edges of the edge this extension added

	// Mapping[i] is the pattern-graph vertex position that Vertices[i]
	// corresponds to. Extend and the subgraph finder leave it nil; a caller
	// of the matcher's NewEdgeMatch fills it in. MappingIndex1/2 track which rows of Mapping correspond to
	// the newly added edge's endpoints, so the matcher's NewEdgeMatch fast
	// path can check label/direction consistency in O(1)
	// instead of re-running a full match.
	Mapping       []int
	MappingIndex1 int
	MappingIndex2 int
}

// New allocates an empty Instance with storage reserved for nVerts
// vertices and nEdges edges.
func New(nVerts, nEdges int) *Instance {
	return &Instance{
		Vertices:      make([]int, 0, nVerts),
		Edges:         make([]int, 0, nEdges),
		NewVertex:     NoNewVertex,
		NewEdge:       NoNewVertex,
		MappingIndex1: NoNewVertex,
		MappingIndex2: NoNewVertex,
	}
}

func insertSortedUnique(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// Extend returns a new Instance holding all of inst's vertices and edges
// plus extendingEdge and, when extendingEdge's other endpoint (relative to
// pivotVertex, which must already be in inst) is not already present, one
// new vertex.
func Extend(inst *Instance, pivotVertex, extendingEdge int, host *gstore.Graph) *Instance {
	other := host.OtherEndpoint(extendingEdge, pivotVertex)

	newVerts := append([]int(nil), inst.Vertices...)
	newEdges := append([]int(nil), inst.Edges...)

	newVertexPos := NoNewVertex
	if !ContainsVertex(inst, other) {
		newVerts = insertSortedUnique(newVerts, other)
		newVertexPos = sort.SearchInts(newVerts, other)
	}
	newEdges = insertSortedUnique(newEdges, extendingEdge)
	newEdgePos := sort.SearchInts(newEdges, extendingEdge)

	return &Instance{
		Vertices:      newVerts,
		Edges:         newEdges,
		Parent:        inst,
		NewVertex:     newVertexPos,
		NewEdge:       newEdgePos,
		MappingIndex1: NoNewVertex,
		MappingIndex2: NoNewVertex,
	}
}

// Matches reports whether a and b cover the exact same vertex and edge
// sets. Complexity: O(n) over the sorted slices.
func Matches(a, b *Instance) bool {
	return intsEqual(a.Vertices, b.Vertices) && intsEqual(a.Edges, b.Edges)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Overlaps reports whether a and b share at least one host vertex.
// Complexity: O(n) merge over the sorted vertex slices.
func Overlaps(a, b *Instance) bool {
	i, j := 0, 0
	for i < len(a.Vertices) && j < len(b.Vertices) {
		switch {
		case a.Vertices[i] == b.Vertices[j]:
			return true
		case a.Vertices[i] < b.Vertices[j]:
			i++
		default:
			j++
		}
	}

	return false
}

// ContainsVertex reports whether v is one of inst's host vertices.
// Complexity: O(log n) binary search.
func ContainsVertex(inst *Instance, v int) bool {
	i := sort.SearchInts(inst.Vertices, v)

	return i < len(inst.Vertices) && inst.Vertices[i] == v
}

// ToGraph returns the induced subgraph of host over inst's vertices and
// edges, with vertices renumbered 0..n-1 in inst.Vertices order.
func ToGraph(inst *Instance, host *gstore.Graph) *gstore.Graph {
	out := gstore.Allocate(len(inst.Vertices), len(inst.Edges))
	renumber := make(map[int]int, len(inst.Vertices))
	for _, hostIdx := range inst.Vertices {
		renumber[hostIdx] = out.AddVertex(host.Vertices[hostIdx].Label)
	}
	for _, hostEdgeIdx := range inst.Edges {
		e := host.Edges[hostEdgeIdx]
		out.AddEdge(renumber[e.From], renumber[e.To], e.Directed, e.Label)
	}

	return out
}
