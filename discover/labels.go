package discover

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/label"
)

// labelsReferencedBy marks, for each index of labels, whether any vertex
// or edge of graphs still carries it — the input Compress needs to
// recompact a label table once a fold-out has dropped whatever vertices
// or edges used to reference some of its entries. A nil graph is skipped.
func labelsReferencedBy(labels *label.Table, graphs ...*gstore.Graph) []bool {
	referenced := make([]bool, labels.Count())
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, v := range g.Vertices {
			referenced[v.Label] = true
		}
		for _, e := range g.Edges {
			referenced[e.Label] = true
		}
	}

	return referenced
}

// rewriteLabels rewrites every vertex's and edge's Label field of g
// through translation (as returned by label.Table.Compress), so that g
// addresses the compacted table's index space instead of the table's
// pre-Compress one. Every label g actually uses is guaranteed present in
// translation's domain, since g itself is one of the graphs
// labelsReferencedBy scanned to build the referenced mask Compress
// consumed — so translation[old] is never -1 here.
func rewriteLabels(g *gstore.Graph, translation []int) {
	if g == nil {
		return
	}
	for i := range g.Vertices {
		g.Vertices[i].Label = translation[g.Vertices[i].Label]
	}
	for i := range g.Edges {
		g.Edges[i].Label = translation[g.Edges[i].Label]
	}
}
