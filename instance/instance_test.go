package instance_test

import (
	"testing"

	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathHost() *gstore.Graph {
	g := gstore.Allocate(3, 2)
	a := g.AddVertex(0)
	b := g.AddVertex(1)
	c := g.AddVertex(2)
	g.AddEdge(a, b, false, 10)
	g.AddEdge(b, c, false, 10)

	return g
}

func TestExtendAddsVertexAndEdge(t *testing.T) {
	host := pathHost()
	seed := instance.New(1, 0)
	seed.Vertices = []int{0}

	ext := instance.Extend(seed, 0, 0, host)
	assert.Equal(t, []int{0, 1}, ext.Vertices)
	assert.Equal(t, []int{0}, ext.Edges)
	assert.NotEqual(t, instance.NoNewVertex, ext.NewVertex)
	assert.Same(t, seed, ext.Parent)
}

func TestExtendEdgeOnlyWhenBothEndpointsPresent(t *testing.T) {
	host := pathHost()
	seed := instance.New(3, 1)
	seed.Vertices = []int{0, 1, 2}
	seed.Edges = []int{0}

	ext := instance.Extend(seed, 1, 1, host)
	assert.Equal(t, []int{0, 1, 2}, ext.Vertices)
	assert.Equal(t, []int{0, 1}, ext.Edges)
	assert.Equal(t, instance.NoNewVertex, ext.NewVertex)
}

func TestMatchesAndOverlaps(t *testing.T) {
	a := instance.New(2, 1)
	a.Vertices = []int{0, 1}
	a.Edges = []int{0}

	b := instance.New(2, 1)
	b.Vertices = []int{0, 1}
	b.Edges = []int{0}

	c := instance.New(2, 1)
	c.Vertices = []int{1, 2}
	c.Edges = []int{1}

	assert.True(t, instance.Matches(a, b))
	assert.True(t, instance.Overlaps(a, c))
	assert.False(t, instance.Matches(a, c))

	d := instance.New(1, 0)
	d.Vertices = []int{5}
	assert.False(t, instance.Overlaps(a, d))
}

func TestContainsVertex(t *testing.T) {
	a := instance.New(3, 0)
	a.Vertices = []int{1, 4, 9}
	assert.True(t, instance.ContainsVertex(a, 4))
	assert.False(t, instance.ContainsVertex(a, 5))
}

func TestToGraphRenumbers(t *testing.T) {
	host := pathHost()
	inst := instance.New(2, 1)
	inst.Vertices = []int{1, 2}
	inst.Edges = []int{1}

	g := instance.ToGraph(inst, host)
	require.Len(t, g.Vertices, 2)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, 0, g.Edges[0].From)
	assert.Equal(t, 1, g.Edges[0].To)
}

func TestListInsertUniqueDropsDuplicates(t *testing.T) {
	l := instance.NewList()
	a := instance.New(1, 0)
	a.Vertices = []int{0}
	b := instance.New(1, 0)
	b.Vertices = []int{0}

	assert.True(t, l.Insert(a, true))
	assert.False(t, l.Insert(b, true), "equal instance must be dropped")
	assert.Equal(t, 1, l.Len())
}

func TestListInsertNewestFirst(t *testing.T) {
	l := instance.NewList()
	a := instance.New(1, 0)
	a.Vertices = []int{0}
	b := instance.New(1, 0)
	b.Vertices = []int{1}

	l.Insert(a, false)
	l.Insert(b, false)
	require.Equal(t, 2, l.Len())
	assert.Same(t, b, l.Items[0], "newest insertion must be first")
}

func TestAnyPairOverlaps(t *testing.T) {
	l := instance.NewList()
	a := instance.New(1, 0)
	a.Vertices = []int{0}
	b := instance.New(1, 0)
	b.Vertices = []int{0}
	l.Insert(a, false)
	l.Insert(b, false)
	assert.True(t, instance.AnyPairOverlaps(l))

	l2 := instance.NewList()
	c := instance.New(1, 0)
	c.Vertices = []int{0}
	d := instance.New(1, 0)
	d.Vertices = []int{1}
	l2.Insert(c, false)
	l2.Insert(d, false)
	assert.False(t, instance.AnyPairOverlaps(l2))
}
