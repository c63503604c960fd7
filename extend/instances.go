package extend

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
)

// extendInstances builds the list of every one-edge extension of every
// instance in list, deduplicated by vertex/edge set. A nil list (no
// negative graph, or a substructure with no negative instances) yields an
// empty result.
func extendInstances(list *instance.List, host *gstore.Graph) *instance.List {
	out := instance.NewList()
	if list == nil {
		return out
	}

	for _, inst := range list.Items {
		marks := gstore.NewEdgeMarks(host)
		for _, e := range inst.Edges {
			marks[e] = true
		}

		for _, v := range inst.Vertices {
			for _, e := range host.Vertices[v].Edges {
				if marks[e] {
					continue
				}
				child := instance.Extend(inst, v, e, host)
				out.Insert(child, true)
			}
		}
	}

	return out
}
