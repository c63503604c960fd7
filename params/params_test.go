package params_test

import (
	"testing"

	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(4, 2)
	a := labels.Store(label.String("A"))
	host.AddVertex(a)
	host.AddVertex(a)
	host.AddVertex(a)
	host.AddVertex(a)

	p, err := params.New(host, labels)
	require.NoError(t, err)

	assert.Equal(t, 4, p.BeamWidth)
	assert.Equal(t, 3, p.NumBestSubs)
	assert.Equal(t, 1, p.MinVertices)
	assert.Equal(t, 0.0, p.Threshold)
	assert.Equal(t, evaluate.MDL, p.EvalMethod)
	assert.Equal(t, 1, p.Iterations)
	assert.True(t, p.Directed)
	assert.NotNil(t, p.Cache)
	// Limit/MaxVertices resolved from the zero sentinel.
	assert.Equal(t, len(host.Edges)/2, p.Limit)
	assert.Equal(t, len(host.Vertices), p.MaxVertices)
}

func TestNewResolvesIterationsZeroToNoLimit(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)

	p, err := params.New(host, labels, params.WithIterations(0))
	require.NoError(t, err)
	assert.Equal(t, params.NoIterationLimit, p.Iterations)
}

func TestNewAppliesOptionsOverDefaults(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)
	neg := gstore.Allocate(1, 0)

	p, err := params.New(host, labels,
		params.WithNegGraph(neg),
		params.WithBeamWidth(8),
		params.WithThreshold(0.25),
		params.WithEvalMethod(evaluate.SetCover),
		params.WithRecursion(true),
		params.WithPrune(true),
		params.WithValueBased(true),
		params.WithAllowInstanceOverlap(true),
		params.WithMinVertices(2),
		params.WithMaxVertices(5),
		params.WithLimit(10),
		params.WithDirected(false),
	)
	require.NoError(t, err)

	assert.Same(t, neg, p.NegGraph)
	assert.Equal(t, 8, p.BeamWidth)
	assert.Equal(t, 0.25, p.Threshold)
	assert.Equal(t, evaluate.SetCover, p.EvalMethod)
	assert.True(t, p.Recursion)
	assert.True(t, p.Prune)
	assert.True(t, p.ValueBased)
	assert.True(t, p.AllowInstanceOverlap)
	assert.Equal(t, 2, p.MinVertices)
	assert.Equal(t, 5, p.MaxVertices)
	assert.Equal(t, 10, p.Limit)
	assert.False(t, p.Directed)
}

func TestNewRejectsNilGraphOrLabels(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)

	_, err := params.New(nil, labels)
	assert.ErrorIs(t, err, params.ErrNilPosGraph)

	_, err = params.New(host, nil)
	assert.ErrorIs(t, err, params.ErrNilLabels)
}

func TestNewRejectsThresholdOutOfRange(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)

	_, err := params.New(host, labels, params.WithThreshold(1.5))
	assert.ErrorIs(t, err, params.ErrThresholdOutOfRange)

	_, err = params.New(host, labels, params.WithThreshold(-0.1))
	assert.ErrorIs(t, err, params.ErrThresholdOutOfRange)
}

func TestNewRejectsBoundsBelowOne(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)

	_, err := params.New(host, labels, params.WithBeamWidth(0))
	assert.ErrorIs(t, err, params.ErrBeamWidthTooSmall)

	_, err = params.New(host, labels, params.WithNumBestSubs(0))
	assert.ErrorIs(t, err, params.ErrNumBestSubsTooSmall)

	_, err = params.New(host, labels, params.WithMinVertices(0))
	assert.ErrorIs(t, err, params.ErrMinVerticesTooSmall)
}

func TestWithNegGraphNilIsNoOp(t *testing.T) {
	labels := label.NewTable()
	host := gstore.Allocate(1, 0)

	p, err := params.New(host, labels, params.WithNegGraph(nil))
	require.NoError(t, err)
	assert.Nil(t, p.NegGraph)
}
