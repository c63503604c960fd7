// Package compressor implements the Compressor: given a host graph and a
// list of substructure instances, it builds the graph that results from
// replacing each instance with a single SUB vertex.
//
// A host vertex touched by more than one instance is claimed by whichever
// instance appears first in the given list — this is the reference
// behavior, not an oversight, and it is why instance-list order is part of
// Compress's contract rather than an implementation detail. Overlap, when
// permitted, is reconciled afterward by adding an OVERLAP edge between the
// SUB vertices of every pair of instances that share a vertex, plus
// duplicates of every external edge the shared vertex carried (see
// overlap.go for the four duplicate-edge cases).
package compressor

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
)

// Compress returns a new graph with one SUB vertex per instance in
// instances (the first instances.Len() vertices of the result, in list
// order), every host vertex and edge not claimed by an instance copied
// across with endpoints remapped, and — when allowOverlap is true — an
// OVERLAP edge and duplicate external edges for every pair of instances
// sharing a vertex. The SUB and OVERLAP labels are minted into labels
// (idempotently: a second Compress call against the same table reuses the
// same indices).
func Compress(host *gstore.Graph, labels *label.Table, instances *instance.List, allowOverlap bool) (*gstore.Graph, error) {
	if instances.Len() == 0 {
		return nil, ErrNoInstances
	}

	marks, edgeMarks, vmap, numInstanceVertices, numInstanceEdges := markInstances(host, instances)

	nv := len(host.Vertices) - numInstanceVertices + instances.Len()
	ne := len(host.Edges) - numInstanceEdges
	compressed := gstore.Allocate(nv, ne)

	subLabel := labels.Store(label.String("SUB"))
	for i := 0; i < instances.Len(); i++ {
		compressed.AddVertex(subLabel)
	}

	for v := range host.Vertices {
		if !marks[v] {
			vmap[v] = compressed.AddVertex(host.Vertices[v].Label)
		}
	}
	for e, edge := range host.Edges {
		if !edgeMarks[e] {
			compressed.AddEdge(vmap[edge.From], vmap[edge.To], edge.Directed, edge.Label)
		}
	}

	if allowOverlap {
		overlapLabel := labels.Store(label.String("OVERLAP"))
		addOverlapEdges(compressed, host, instances, marks, edgeMarks, vmap, overlapLabel)
	}

	return compressed, nil
}

// SizeIfCompressed returns |V'|+|E'| of the graph Compress would build,
// without allocating it. Used in the beam search's inner loop, where a
// candidate's compressed size is needed far more often than the compressed
// graph itself.
func SizeIfCompressed(host *gstore.Graph, instances *instance.List, allowOverlap bool) (int, error) {
	if instances.Len() == 0 {
		return 0, ErrNoInstances
	}

	marks, edgeMarks, vmap, numInstanceVertices, numInstanceEdges := markInstances(host, instances)

	nv := len(host.Vertices) - numInstanceVertices + instances.Len()
	ne := len(host.Edges) - numInstanceEdges
	if allowOverlap {
		ne += countOverlapEdges(host, instances, marks, edgeMarks, vmap)
	}

	return nv + ne, nil
}

// markInstances scans every instance once, in list order, recording for
// each host vertex the index of the first instance that claims it
// (first-claim-wins) and counting the vertices and edges instances cover
// between them. The returned marks/edgeMarks/vmap are fresh per call — no
// host-owned state is touched, so there is nothing to restore on return.
func markInstances(host *gstore.Graph, instances *instance.List) (marks gstore.VertexMarks, edgeMarks gstore.EdgeMarks, vmap gstore.VertexMap, numVertices, numEdges int) {
	marks = gstore.NewVertexMarks(host)
	edgeMarks = gstore.NewEdgeMarks(host)
	vmap = gstore.NewVertexMap(host)

	for i, inst := range instances.Items {
		for _, v := range inst.Vertices {
			if !marks[v] {
				marks[v] = true
				vmap[v] = i
				numVertices++
			}
		}
		for _, e := range inst.Edges {
			if !edgeMarks[e] {
				edgeMarks[e] = true
				numEdges++
			}
		}
	}

	return marks, edgeMarks, vmap, numVertices, numEdges
}
