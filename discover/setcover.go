package discover

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/params"
	"github.com/katalvlaran/subdue/substructure"
)

// foldSetCover drops every example best's instances cover (in whole or
// in part) from p.PosGraph and p.PosExamples, rebuilding the graph from
// whatever examples remain uncovered, and recompacts the label table to
// match. Grounded on original_source/src/compress.c's
// RemovePosEgsCovered: "basically compression for the set-covering
// evaluation method".
//
// Returns the updated Params, whether no positive examples remain (the
// SetCover stopping condition), and an error (never non-nil today;
// returned for symmetry with foldCompress so Run can treat both the same
// way).
func foldSetCover(p params.Params, best *substructure.Substructure) (params.Params, bool, error) {
	if best.Instances == nil || best.Instances.Len() == 0 {
		return p, len(p.PosExamples) == 0, nil
	}

	newPos, newExamples := removeCoveredExamples(p.PosGraph, p.PosExamples, best.Instances)

	referenced := labelsReferencedBy(p.Labels, newPos, p.NegGraph)
	newLabels, translation := p.Labels.Compress(referenced)
	rewriteLabels(newPos, translation)
	newNeg := p.NegGraph
	if newNeg != nil {
		newNeg = newNeg.Copy()
		rewriteLabels(newNeg, translation)
	}

	p.Labels = newLabels
	p.PosGraph = newPos
	p.NegGraph = newNeg
	p.PosExamples = newExamples

	return p, len(p.PosExamples) == 0, nil
}

// removeCoveredExamples returns the positive graph restricted to
// examples with no best-covering instance, and the corresponding
// example-boundary table over the new graph's vertex numbering. An
// example counts as covered the moment any instance's lowest-indexed
// vertex falls within its range, matching evaluate.Covered's own
// coverage rule.
func removeCoveredExamples(posGraph *gstore.Graph, examples evaluate.Examples, covering *instance.List) (*gstore.Graph, evaluate.Examples) {
	vmap := make([]int, len(posGraph.Vertices))
	for i := range vmap {
		vmap[i] = gstore.Deleted
	}

	newPos := gstore.Allocate(len(posGraph.Vertices), len(posGraph.Edges))
	newExamples := make(evaluate.Examples, 0, len(examples))

	for i, start := range examples {
		end := len(posGraph.Vertices) - 1
		if i < len(examples)-1 {
			end = examples[i+1] - 1
		}
		if exampleCovered(covering, start, end) {
			continue
		}

		newExamples = append(newExamples, len(newPos.Vertices))
		for v := start; v <= end; v++ {
			vmap[v] = newPos.AddVertex(posGraph.Vertices[v].Label)
		}
	}

	for _, e := range posGraph.Edges {
		from, to := vmap[e.From], vmap[e.To]
		if from == gstore.Deleted || to == gstore.Deleted {
			continue
		}
		newPos.AddEdge(from, to, e.Directed, e.Label)
	}

	return newPos, newExamples
}

func exampleCovered(instances *instance.List, start, end int) bool {
	if instances == nil {
		return false
	}
	for _, inst := range instances.Items {
		if len(inst.Vertices) == 0 {
			continue
		}
		if v := inst.Vertices[0]; v >= start && v <= end {
			return true
		}
	}

	return false
}
