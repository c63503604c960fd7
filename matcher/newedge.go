package matcher

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
)

// NewEdgeMatch is the matcher's critical inner-loop speed-up: when child was
// produced by extending an instance whose parent was already known to match
// pattern exactly (threshold 0), this checks only the single newly added
// edge (and vertex, if any) for structural and label consistency, instead of
// re-running the full matcher.
//
// child.Mapping must already hold one pattern-vertex position per entry of
// child.Vertices, including the new vertex if one was added, and
// child.MappingIndex1/MappingIndex2 must name the rows of child.Mapping
// corresponding to the new edge's two endpoints — the caller (the one that
// built child via instance.Extend) is responsible for populating these
// before calling NewEdgeMatch. A false return means: fall back to Match.
func (m *Matcher) NewEdgeMatch(
	child *instance.Instance,
	host *gstore.Graph, hostLabels *label.Table,
	pattern *gstore.Graph, patternLabels *label.Table,
) bool {
	if child.MappingIndex1 == instance.NoNewVertex || child.MappingIndex2 == instance.NoNewVertex {
		return false
	}
	if child.MappingIndex1 >= len(child.Mapping) || child.MappingIndex2 >= len(child.Mapping) {
		return false
	}

	hostEdgeIdx := child.Edges[child.NewEdge]
	hostEdge := host.Edges[hostEdgeIdx]

	patA := child.Mapping[child.MappingIndex1]
	patB := child.Mapping[child.MappingIndex2]

	hostA := child.Vertices[child.MappingIndex1]
	hostB := child.Vertices[child.MappingIndex2]

	if !sameVertexLabel(host, hostLabels, hostA, pattern, patternLabels, patA) {
		return false
	}
	if !sameVertexLabel(host, hostLabels, hostB, pattern, patternLabels, patB) {
		return false
	}

	patEdgeIdx := findEdgeBetween(pattern, patA, patB)
	if patEdgeIdx < 0 {
		return false
	}
	patEdge := pattern.Edges[patEdgeIdx]

	hl, _ := hostLabels.At(hostEdge.Label)
	pl, _ := patternLabels.At(patEdge.Label)
	if !hl.Equal(pl) {
		return false
	}
	if hostEdge.Directed != patEdge.Directed {
		return false
	}
	if hostEdge.Directed {
		hostForward := hostEdge.From == hostA
		patForward := patEdge.From == patA
		if hostForward != patForward {
			return false
		}
	}

	return true
}

func sameVertexLabel(g1 *gstore.Graph, l1 *label.Table, v1 int, g2 *gstore.Graph, l2 *label.Table, v2 int) bool {
	a, err1 := l1.At(g1.Vertices[v1].Label)
	b, err2 := l2.At(g2.Vertices[v2].Label)
	if err1 != nil || err2 != nil {
		return false
	}

	return a.Equal(b)
}

func findEdgeBetween(g *gstore.Graph, a, b int) int {
	for _, e := range g.Vertices[a].Edges {
		if g.OtherEndpoint(e, a) == b {
			return e
		}
	}

	return -1
}
