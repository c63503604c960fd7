// Package discover implements the Iteration Driver: the top-level
// entry point that repeatedly runs one beam search pass, keeps the best
// substructure it finds, folds that substructure out of the graphs (by
// compression or, under set-covering, by dropping the examples it
// covers), and stops when a pass finds nothing, the fold-out leaves
// nothing left to search, or the configured iteration count is spent.
//
// Grounded on original_source/src/main.c's main(): the same
// "search, check, fold, check again" loop, restructured as a single
// Go function rather than a CLI's main. Following bfs's and dfs's own
// documented cancellation contract, Run takes a context.Context purely to
// let a caller abandon a run between iterations — the search itself
// stays single-threaded; nothing here spawns a goroutine.
package discover

import (
	"context"

	"github.com/katalvlaran/subdue/beam"
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/params"
	"github.com/katalvlaran/subdue/substructure"
)

// Run performs up to p.Iterations passes of beam search, each over the
// current positive (and, if present, negative) graph, folding the best
// substructure of each pass out of those graphs before the next one
// starts. It returns the last pass's discovered list — empty if the very
// first pass found nothing.
//
// A pass's fold-out takes one of two forms, chosen by p.EvalMethod: under
// evaluate.SetCover the best substructure's covered examples are dropped
// from the positive graph (removeCoveredExamples, grounded on
// RemovePosEgsCovered); under any other method the best substructure is
// compressed out of both graphs (foldCompress, grounded on
// CompressFinalGraphs). Either way the label table is recompacted
// afterward so a stale label minted by an earlier iteration does not
// linger once nothing references it.
//
// Run returns early with ctx.Err() if ctx is cancelled between
// iterations.
func Run(ctx context.Context, p params.Params, opts ...Option) ([]*substructure.Substructure, error) {
	cfg := newRunConfig(opts...)

	var discovered []*substructure.Substructure
	iteration := 1
	done := false

	for iteration <= p.Iterations && !done {
		if err := ctx.Err(); err != nil {
			return discovered, err
		}

		discovered = beam.Run(beamConfigFrom(p, cfg.Matcher))
		if len(discovered) == 0 {
			done = true
			break
		}

		best := discovered[0]
		cfg.report(p, iteration, best, discovered)

		if iteration < p.Iterations {
			var err error
			switch p.EvalMethod {
			case evaluate.SetCover:
				p, done, err = foldSetCover(p, best)
			default:
				p, done, err = foldCompress(p, best)
			}
			if err != nil {
				return discovered, err
			}
		}

		iteration++
	}

	return discovered, nil
}

func beamConfigFrom(p params.Params, m *matcher.Matcher) beam.Config {
	numLabels := p.Labels.Count()

	var posDL, negDL float64
	if p.EvalMethod == evaluate.MDL {
		posDL = evaluate.DL(p.PosGraph, numLabels, p.Cache)
		if p.NegGraph != nil {
			negDL = evaluate.DL(p.NegGraph, numLabels, p.Cache)
		}
	}

	return beam.Config{
		Matcher:              m,
		Labels:               p.Labels,
		PosGraph:             p.PosGraph,
		NegGraph:             p.NegGraph,
		Threshold:            p.Threshold,
		AllowInstanceOverlap: p.AllowInstanceOverlap,
		Method:               p.EvalMethod,
		NumLabels:            numLabels,
		PosExamples:          p.PosExamples,
		NegExamples:          p.NegExamples,
		PosDL:                posDL,
		NegDL:                negDL,
		Cache:                p.Cache,
		BeamWidth:            p.BeamWidth,
		ValueBased:           p.ValueBased,
		NumBestSubs:          p.NumBestSubs,
		Limit:                p.Limit,
		MinVertices:          p.MinVertices,
		MaxVertices:          p.MaxVertices,
		Prune:                p.Prune,
		Recursion:            p.Recursion,
	}
}
