package extend_test

import (
	"testing"

	"github.com/katalvlaran/subdue/extend"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/substructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainHost builds n X-labeled vertices joined in a path by undirected
// r-labeled edges: v0-v1-v2-...-v(n-1).
func chainHost(labels *label.Table, n int) (*gstore.Graph, []int) {
	g := gstore.Allocate(n, n-1)
	x := labels.Store(label.String("X"))
	r := labels.Store(label.String("r"))
	verts := make([]int, n)
	for i := 0; i < n; i++ {
		verts[i] = g.AddVertex(x)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(verts[i], verts[i+1], false, r)
	}

	return g, verts
}

func singleVertexInstances(verts []int) *instance.List {
	list := instance.NewList()
	for _, v := range verts {
		inst := instance.New(1, 0)
		inst.Vertices = []int{v}
		list.Insert(inst, false)
	}

	return list
}

func TestExtendGroupsIsomorphicExtensionsIntoOneSubstructure(t *testing.T) {
	labels := label.NewTable()
	host, verts := chainHost(labels, 4)

	parent := substructure.New(nil)
	parent.Instances = singleVertexInstances(verts)

	cfg := extend.Config{
		Matcher:              matcher.New(),
		Labels:               labels,
		PosGraph:             host,
		Threshold:            0,
		AllowInstanceOverlap: true,
	}

	result := extend.Extend(parent, cfg)
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].Instances.Len())
	assert.Len(t, result[0].Definition.Vertices, 2)
	assert.Len(t, result[0].Definition.Edges, 1)
}

func TestExtendKeepsDistinctDefinitionsSeparate(t *testing.T) {
	labels := label.NewTable()
	x := labels.Store(label.String("X"))
	y := labels.Store(label.String("Y"))
	r := labels.Store(label.String("r"))

	// v0(X)-v1(X) and v2(X)-v3(Y), so the two extensions from v0 and v2
	// induce non-isomorphic (different vertex label pairs) definitions.
	host := gstore.Allocate(4, 2)
	v0 := host.AddVertex(x)
	v1 := host.AddVertex(x)
	v2 := host.AddVertex(x)
	v3 := host.AddVertex(y)
	host.AddEdge(v0, v1, false, r)
	host.AddEdge(v2, v3, false, r)

	parent := substructure.New(nil)
	inst0 := instance.New(1, 0)
	inst0.Vertices = []int{v0}
	inst2 := instance.New(1, 0)
	inst2.Vertices = []int{v2}
	parent.Instances = instance.NewList()
	parent.Instances.Insert(inst0, false)
	parent.Instances.Insert(inst2, false)

	cfg := extend.Config{
		Matcher:              matcher.New(),
		Labels:               labels,
		PosGraph:             host,
		Threshold:            0,
		AllowInstanceOverlap: true,
	}

	result := extend.Extend(parent, cfg)
	require.Len(t, result, 2)
	assert.Equal(t, 1, result[0].Instances.Len())
	assert.Equal(t, 1, result[1].Instances.Len())
}

func TestExtendExcludesOverlappingInstancesWhenOverlapDisallowed(t *testing.T) {
	labels := label.NewTable()
	host, verts := chainHost(labels, 4)

	parent := substructure.New(nil)
	parent.Instances = singleVertexInstances(verts)

	cfg := extend.Config{
		Matcher:              matcher.New(),
		Labels:               labels,
		PosGraph:             host,
		Threshold:            0,
		AllowInstanceOverlap: false,
	}

	result := extend.Extend(parent, cfg)
	require.Len(t, result, 1)
	// {v0,v1} and {v1,v2} share v1 and {v1,v2}/{v2,v3} share v2: only
	// non-overlapping instances can coexist in the same group.
	assert.Less(t, result[0].Instances.Len(), 3)
}
