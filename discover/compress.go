package discover

import (
	"github.com/katalvlaran/subdue/compressor"
	"github.com/katalvlaran/subdue/params"
	"github.com/katalvlaran/subdue/substructure"
)

// foldCompress replaces p.PosGraph (and, when best matched it, p.NegGraph)
// with the graph that results from compressing out every instance of
// best, and recompacts the label table to drop whatever labels that left
// unreferenced. It restricts itself to plain instance compression;
// compressing a predefined substructure supplied ahead of a run is out
// of scope. The label table keeps minting the one constant SUB token
// compressor.Compress always produces rather than a fresh
// SUB_<iteration> token per compression, since nothing downstream
// distinguishes substructure tokens by the iteration that created them.
// MDL description length is never recomputed here: beamConfigFrom
// derives PosDL/NegDL fresh from whatever PosGraph/NegGraph each
// iteration is handed, so there is nothing for foldCompress itself to
// precompute or cache.
//
// Returns the updated Params, whether the positive graph now has no
// edges left to search (the MDL/Size stopping condition), and any error
// compressor.Compress reports.
func foldCompress(p params.Params, best *substructure.Substructure) (params.Params, bool, error) {
	if best.Instances == nil || best.Instances.Len() == 0 {
		return p, len(p.PosGraph.Edges) == 0, nil
	}

	newPos, err := compressor.Compress(p.PosGraph, p.Labels, best.Instances, p.AllowInstanceOverlap)
	if err != nil {
		return p, false, err
	}

	newNeg := p.NegGraph
	if newNeg != nil {
		if best.NegInstances != nil && best.NegInstances.Len() > 0 {
			newNeg, err = compressor.Compress(p.NegGraph, p.Labels, best.NegInstances, p.AllowInstanceOverlap)
			if err != nil {
				return p, false, err
			}
		} else {
			newNeg = p.NegGraph.Copy()
		}
	}

	referenced := labelsReferencedBy(p.Labels, newPos, newNeg)
	newLabels, translation := p.Labels.Compress(referenced)
	rewriteLabels(newPos, translation)
	rewriteLabels(newNeg, translation)

	p.Labels = newLabels
	p.PosGraph = newPos
	p.NegGraph = newNeg

	return p, len(p.PosGraph.Edges) == 0, nil
}
