package compressor_test

import (
	"testing"

	"github.com/katalvlaran/subdue/compressor"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pendantHost builds a 3-vertex path 0-1-2 where the edge 0-1 is the
// instance to compress and 1-2 is external, touching the instance's only
// externally visible vertex (1).
func pendantHost(labels *label.Table) (*gstore.Graph, int) {
	g := gstore.Allocate(3, 2)
	a := labels.Store(label.String("A"))
	r := labels.Store(label.String("r"))
	v0 := g.AddVertex(a)
	v1 := g.AddVertex(a)
	v2 := g.AddVertex(a)
	e01, _ := g.AddEdge(v0, v1, false, r)
	g.AddEdge(v1, v2, false, r)

	return g, e01
}

func TestCompressReplacesInstanceWithSubVertexAndKeepsExternalEdge(t *testing.T) {
	labels := label.NewTable()
	host, e01 := pendantHost(labels)

	inst := instance.New(2, 1)
	inst.Vertices = []int{0, 1}
	inst.Edges = []int{e01}
	instances := instance.NewList()
	instances.Insert(inst, false)

	compressed, err := compressor.Compress(host, labels, instances, false)
	require.NoError(t, err)

	require.Len(t, compressed.Vertices, 2) // SUB + external vertex 2
	require.Len(t, compressed.Edges, 1)

	subLabel, ok := labels.Lookup(label.String("SUB"))
	require.True(t, ok)
	assert.Equal(t, subLabel, compressed.Vertices[0].Label)

	hostV2Label := host.Vertices[2].Label
	assert.Equal(t, hostV2Label, compressed.Vertices[1].Label)

	edge := compressed.Edges[0]
	assert.ElementsMatch(t, []int{0, 1}, []int{edge.From, edge.To})
}

func TestCompressReturnsErrNoInstances(t *testing.T) {
	labels := label.NewTable()
	host, _ := pendantHost(labels)

	_, err := compressor.Compress(host, labels, instance.NewList(), false)
	assert.ErrorIs(t, err, compressor.ErrNoInstances)
}

func TestSizeIfCompressedMatchesCompressSize(t *testing.T) {
	labels := label.NewTable()
	host, e01 := pendantHost(labels)

	inst := instance.New(2, 1)
	inst.Vertices = []int{0, 1}
	inst.Edges = []int{e01}
	instances := instance.NewList()
	instances.Insert(inst, false)

	compressed, err := compressor.Compress(host, labels, instances, false)
	require.NoError(t, err)

	size, err := compressor.SizeIfCompressed(host, instances, false)
	require.NoError(t, err)
	assert.Equal(t, compressed.Size(), size)
}

// sharedVertexHost builds two instances (0-1 and 1-2) sharing vertex 1, plus
// an external vertex 3 attached to the shared vertex via edge 1-3.
func sharedVertexHost(labels *label.Table) (g *gstore.Graph, e01, e12 int) {
	g = gstore.Allocate(4, 3)
	a := labels.Store(label.String("A"))
	r := labels.Store(label.String("r"))
	v0 := g.AddVertex(a)
	v1 := g.AddVertex(a)
	v2 := g.AddVertex(a)
	v3 := g.AddVertex(a)
	e01, _ = g.AddEdge(v0, v1, false, r)
	e12, _ = g.AddEdge(v1, v2, false, r)
	g.AddEdge(v1, v3, false, r)

	return g, e01, e12
}

func TestCompressWithOverlapAddsOverlapAndDuplicateEdge(t *testing.T) {
	labels := label.NewTable()
	host, e01, e12 := sharedVertexHost(labels)

	inst1 := instance.New(2, 1)
	inst1.Vertices = []int{0, 1}
	inst1.Edges = []int{e01}

	inst2 := instance.New(2, 1)
	inst2.Vertices = []int{1, 2}
	inst2.Edges = []int{e12}

	instances := instance.NewList()
	instances.Insert(inst2, false) // inserted first, pushed to back by list order below
	instances.Insert(inst1, false)
	// List.Insert prepends, so after both inserts Items = [inst1, inst2],
	// matching "inst1 claims the shared vertex" (first in list order).
	require.Same(t, inst1, instances.Items[0])
	require.Same(t, inst2, instances.Items[1])

	compressed, err := compressor.Compress(host, labels, instances, true)
	require.NoError(t, err)

	overlapLabel, ok := labels.Lookup(label.String("OVERLAP"))
	require.True(t, ok)

	var overlapEdges, otherEdges int
	for _, e := range compressed.Edges {
		if e.Label == overlapLabel {
			overlapEdges++
		} else {
			otherEdges++
		}
	}
	assert.Equal(t, 1, overlapEdges, "exactly one OVERLAP edge between the two SUB vertices")
	// e13 is copied once by the unmarked-edge pass (pointing at SUB for
	// instance1, the first claimant) and duplicated once more for
	// instance2 by the overlap pass: two non-OVERLAP edges total.
	assert.Equal(t, 2, otherEdges)

	size, err := compressor.SizeIfCompressed(host, instances, true)
	require.NoError(t, err)
	assert.Equal(t, compressed.Size(), size)
}
