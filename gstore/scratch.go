package gstore

// VertexMarks is a caller-owned side-table of per-vertex boolean scratch
// state, replacing the reference's mutable Vertex.used field.
// Zero value (all false) on creation; callers clear it themselves between
// uses by reallocating or resetting via Reset.
type VertexMarks []bool

// NewVertexMarks returns a VertexMarks sized for g, all false.
func NewVertexMarks(g *Graph) VertexMarks {
	return make(VertexMarks, len(g.Vertices))
}

// Reset zeroes every mark in place, letting a caller reuse the allocation
// across repeated traversals of the same graph.
func (m VertexMarks) Reset() {
	for i := range m {
		m[i] = false
	}
}

// EdgeMarks is the edge analog of VertexMarks, replacing Edge.used.
type EdgeMarks []bool

// NewEdgeMarks returns an EdgeMarks sized for g, all false.
func NewEdgeMarks(g *Graph) EdgeMarks {
	return make(EdgeMarks, len(g.Edges))
}

// Reset zeroes every mark in place.
func (m EdgeMarks) Reset() {
	for i := range m {
		m[i] = false
	}
}

// Unmapped and Deleted are the two sentinel values a VertexMap entry may
// hold in addition to a real vertex index, mirroring the reference's
// VERTEX_UNMAPPED / VERTEX_DELETED sentinels without needing
// reserved integers at the top of the index space.
const (
	Unmapped = -1
	Deleted  = -2
)

// VertexMap is a caller-owned side-table recording, for each vertex of one
// graph, the corresponding vertex index in another graph (or Unmapped /
// Deleted), replacing the reference's mutable Vertex.map field.
type VertexMap []int

// NewVertexMap returns a VertexMap sized for g, every entry Unmapped.
func NewVertexMap(g *Graph) VertexMap {
	m := make(VertexMap, len(g.Vertices))
	for i := range m {
		m[i] = Unmapped
	}

	return m
}

// Reset sets every entry back to Unmapped.
func (m VertexMap) Reset() {
	for i := range m {
		m[i] = Unmapped
	}
}
