package extend_test

import (
	"testing"

	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/extend"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/substructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursifyChainsConnectedInstancesIntoOneRecursiveInstance(t *testing.T) {
	labels := label.NewTable()
	host, verts := chainHost(labels, 5)
	rLabel, _ := labels.Lookup(label.String("r"))

	pattern := gstore.Allocate(1, 0)
	x, _ := labels.Lookup(label.String("X"))
	pattern.AddVertex(x)

	sub := substructure.New(pattern)
	sub.Instances = singleVertexInstances(verts)

	cfg := extend.RecursifyConfig{
		PosGraph: host,
		EvalTemplate: evaluate.Input{
			Method:        evaluate.Size,
			PatternLabels: labels,
			NumLabels:     labels.Count(),
			Pos: &evaluate.GraphContext{
				Graph:  host,
				Labels: labels,
			},
		},
		Cache: evaluate.NewCache(),
	}

	recSub, ok := extend.Recursify(sub, cfg)
	require.True(t, ok)
	assert.True(t, recSub.Recursive)
	assert.Equal(t, rLabel, recSub.RecursiveEdgeLabel)
	require.Equal(t, 1, recSub.Instances.Len())

	chained := recSub.Instances.Items[0]
	assert.Len(t, chained.Vertices, 5)
	assert.Len(t, chained.Edges, 4)
}

func TestRecursifyReturnsFalseWhenNoConnectingEdgeExists(t *testing.T) {
	labels := label.NewTable()
	x := labels.Store(label.String("X"))
	host := gstore.Allocate(2, 0)
	v0 := host.AddVertex(x)
	v1 := host.AddVertex(x)
	_ = v1

	pattern := gstore.Allocate(1, 0)
	pattern.AddVertex(x)

	sub := substructure.New(pattern)
	sub.Instances = instance.NewList()
	inst := instance.New(1, 0)
	inst.Vertices = []int{v0}
	sub.Instances.Insert(inst, false)

	cfg := extend.RecursifyConfig{
		PosGraph: host,
		EvalTemplate: evaluate.Input{
			Method:        evaluate.Size,
			PatternLabels: labels,
			NumLabels:     labels.Count(),
			Pos:           &evaluate.GraphContext{Graph: host, Labels: labels},
		},
		Cache: evaluate.NewCache(),
	}

	_, ok := extend.Recursify(sub, cfg)
	assert.False(t, ok)
}
