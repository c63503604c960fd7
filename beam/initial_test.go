package beam_test

import (
	"testing"

	"github.com/katalvlaran/subdue/beam"
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSubsSkipsLabelsSeenOnce(t *testing.T) {
	labels := label.NewTable()
	a := labels.Store(label.String("A"))
	b := labels.Store(label.String("B"))
	host := gstore.Allocate(4, 0)
	host.AddVertex(a)
	host.AddVertex(a)
	host.AddVertex(a)
	host.AddVertex(b)

	cfg := beam.Config{
		Matcher:   matcher.New(),
		Labels:    labels,
		PosGraph:  host,
		Method:    evaluate.Size,
		NumLabels: labels.Count(),
		Cache:     evaluate.NewCache(),
	}

	initial := beam.InitialSubs(cfg)
	require.Len(t, initial.Items, 1)
	assert.Equal(t, a, initial.Items[0].Definition.Vertices[0].Label)
	assert.Equal(t, 3, initial.Items[0].Instances.Len())
}

func TestInitialSubsCollectsNegativeInstancesRegardlessOfCount(t *testing.T) {
	labels := label.NewTable()
	a := labels.Store(label.String("A"))
	pos := gstore.Allocate(2, 0)
	pos.AddVertex(a)
	pos.AddVertex(a)
	neg := gstore.Allocate(1, 0)
	neg.AddVertex(a)

	cfg := beam.Config{
		Matcher:   matcher.New(),
		Labels:    labels,
		PosGraph:  pos,
		NegGraph:  neg,
		Method:    evaluate.Size,
		NumLabels: labels.Count(),
		Cache:     evaluate.NewCache(),
	}

	initial := beam.InitialSubs(cfg)
	require.Len(t, initial.Items, 1)
	require.Equal(t, 1, initial.Items[0].NegInstances.Len())
}
