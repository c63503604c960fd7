// Package params implements Parameters: the immutable-after-construction
// record every discovery component consults (label table, positive and
// negative graphs, beam/discovery bounds, the evaluation method, and the
// lg(k!) cache the Evaluator leans on).
//
// Params is built through functional options (Option): New applies
// sensible defaults, then each Option in order, then validates and
// resolves the handful of fields whose zero value means "pick it for me"
// rather than "literally zero".
package params

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/label"
)

// NoIterationLimit is what Iterations resolves to when New sees it unset
// (0), meaning "run until discovery stops producing anything new" —
// expressed as a concrete bound rather than an actual unbounded loop.
const NoIterationLimit = 1<<31 - 1

// Params is everything every discovery component consults. It is built
// once via New and never mutated afterward — callers that need a
// changed value (typically Limit/MaxVertices/PosGraph at an iteration
// boundary, per the Lifecycle rule that a new compressed graph replaces
// the old one atomically) build a fresh Params rather than mutating this
// one in place.
type Params struct {
	Labels   *label.Table
	PosGraph *gstore.Graph
	NegGraph *gstore.Graph // nil when no negative graph is in play

	PosExamples evaluate.Examples
	NegExamples evaluate.Examples

	BeamWidth   int
	NumBestSubs int
	Limit       int // 0 resolves to half of PosGraph's edges
	MaxVertices int // 0 resolves to len(PosGraph.Vertices)
	MinVertices int

	ValueBased           bool
	Prune                bool
	AllowInstanceOverlap bool
	Recursion            bool

	Threshold  float64 // in [0,1]
	EvalMethod evaluate.Method

	Iterations int // 0 resolves to NoIterationLimit
	Directed   bool

	Cache *evaluate.Cache
}

// New returns a validated Params over posGraph and labels, with opts
// applied on top of its own defaults (beamWidth 4, numBestSubs 3,
// minVertices 1, threshold 0, method MDL, iterations 1, directed true).
// It returns an error instead of panicking for any bad
// runtime value — a nil required graph/table, a threshold outside
// [0,1], or a beamWidth/numBestSubs/minVertices below 1 — since none of
// these represent a programmer error severe enough to warrant a panic,
// just a runtime value that needs rejecting.
func New(posGraph *gstore.Graph, labels *label.Table, opts ...Option) (Params, error) {
	if posGraph == nil {
		return Params{}, ErrNilPosGraph
	}
	if labels == nil {
		return Params{}, ErrNilLabels
	}

	p := Params{
		Labels:      labels,
		PosGraph:    posGraph,
		BeamWidth:   4,
		NumBestSubs: 3,
		MinVertices: 1,
		Threshold:   0,
		EvalMethod:  evaluate.MDL,
		Iterations:  1,
		Directed:    true,
		Cache:       evaluate.NewCache(),
	}

	for _, opt := range opts {
		opt(&p)
	}

	if p.Limit == 0 {
		p.Limit = len(p.PosGraph.Edges) / 2
	}
	if p.MaxVertices == 0 {
		p.MaxVertices = len(p.PosGraph.Vertices)
	}
	if p.Iterations == 0 {
		p.Iterations = NoIterationLimit
	}

	if p.Threshold < 0 || p.Threshold > 1 {
		return Params{}, ErrThresholdOutOfRange
	}
	if p.BeamWidth < 1 {
		return Params{}, ErrBeamWidthTooSmall
	}
	if p.NumBestSubs < 1 {
		return Params{}, ErrNumBestSubsTooSmall
	}
	if p.MinVertices < 1 {
		return Params{}, ErrMinVerticesTooSmall
	}

	return p, nil
}
