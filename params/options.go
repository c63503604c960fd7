package params

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
)

// Option customizes a Params before New validates and returns it. An
// Option that is handed an optional nil pointer is a no-op rather than
// an error — New is where bad *values* are rejected.
type Option func(p *Params)

// WithNegGraph attaches a negative graph. A nil g is a no-op.
func WithNegGraph(g *gstore.Graph) Option {
	return func(p *Params) {
		if g != nil {
			p.NegGraph = g
		}
	}
}

// WithPosExamples sets the positive graph's per-example vertex index
// table (used by the SetCover evaluation method).
func WithPosExamples(examples evaluate.Examples) Option {
	return func(p *Params) { p.PosExamples = examples }
}

// WithNegExamples sets the negative graph's per-example vertex index
// table.
func WithNegExamples(examples evaluate.Examples) Option {
	return func(p *Params) { p.NegExamples = examples }
}

// WithBeamWidth overrides the default beam width (4). Values below 1 are
// rejected by New, not here.
func WithBeamWidth(n int) Option {
	return func(p *Params) { p.BeamWidth = n }
}

// WithNumBestSubs overrides the default discovered-list bound (3).
func WithNumBestSubs(n int) Option {
	return func(p *Params) { p.NumBestSubs = n }
}

// WithLimit overrides the maximum number of substructures expanded per
// iteration. 0 (the default) resolves in New to half of PosGraph's
// edges.
func WithLimit(n int) Option {
	return func(p *Params) { p.Limit = n }
}

// WithMaxVertices overrides the maximum vertex count a returned
// substructure's definition may have. 0 (the default) resolves in New to
// PosGraph's vertex count.
func WithMaxVertices(n int) Option {
	return func(p *Params) { p.MaxVertices = n }
}

// WithMinVertices overrides the default minimum vertex count (1).
func WithMinVertices(n int) Option {
	return func(p *Params) { p.MinVertices = n }
}

// WithValueBased sets whether beam-width/numBestSubs bounds count
// distinct substructure values rather than raw entries.
func WithValueBased(b bool) Option {
	return func(p *Params) { p.ValueBased = b }
}

// WithPrune enables dropping an extension whose value did not improve on
// its parent's.
func WithPrune(b bool) Option {
	return func(p *Params) { p.Prune = b }
}

// WithAllowInstanceOverlap permits instances of the same substructure to
// share host vertices.
func WithAllowInstanceOverlap(b bool) Option {
	return func(p *Params) { p.AllowInstanceOverlap = b }
}

// WithThreshold overrides the default fractional edit budget (0). Values
// outside [0,1] are rejected by New, not here.
func WithThreshold(t float64) Option {
	return func(p *Params) { p.Threshold = t }
}

// WithEvalMethod overrides the default evaluation method (MDL).
func WithEvalMethod(m evaluate.Method) Option {
	return func(p *Params) { p.EvalMethod = m }
}

// WithIterations overrides the default iteration count (1). 0 resolves
// in New to NoIterationLimit.
func WithIterations(n int) Option {
	return func(p *Params) { p.Iterations = n }
}

// WithRecursion enables recursive-substructure detection.
func WithRecursion(b bool) Option {
	return func(p *Params) { p.Recursion = b }
}

// WithDirected overrides the default directedness (true) that an "e"
// wire-format edge adopts when the document does not say otherwise.
func WithDirected(b bool) Option {
	return func(p *Params) { p.Directed = b }
}

// WithCache supplies a pre-existing lg(k!) memoization cache (e.g. one
// shared across several New calls). A nil c is a no-op.
func WithCache(c *evaluate.Cache) Option {
	return func(p *Params) {
		if c != nil {
			p.Cache = c
		}
	}
}
