package discover

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/subdue/params"
	"github.com/katalvlaran/subdue/substructure"
)

var resultJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// SubstructureSummary is the machine-readable shape of one discovered
// substructure: its score plus the counts a caller would otherwise have
// to recompute from its Definition/Instances.
type SubstructureSummary struct {
	Value           float64 `json:"value"`
	NumVertices     int     `json:"numVertices"`
	NumEdges        int     `json:"numEdges"`
	NumInstances    int     `json:"numInstances"`
	NumNegInstances int     `json:"numNegInstances"`
}

// IterationResult is the per-iteration summary a caller can log, append
// to a machine-readable run log, or both, in place of a discovery run
// writing its best-pattern-per-iteration output straight to a file.
type IterationResult struct {
	Iteration    int                   `json:"iteration"`
	PosGraphSize int                   `json:"posGraphSize"`
	NegGraphSize int                   `json:"negGraphSize,omitempty"`
	NumLabels    int                   `json:"numLabels"`
	Best         SubstructureSummary   `json:"best"`
	Discovered   []SubstructureSummary `json:"discovered"`
}

// JSON marshals r with the pack's json-iterator codec (API-compatible
// with encoding/json).
func (r IterationResult) JSON() ([]byte, error) {
	return resultJSON.Marshal(r)
}

func summarize(sub *substructure.Substructure) SubstructureSummary {
	s := SubstructureSummary{
		Value:       sub.Value,
		NumVertices: len(sub.Definition.Vertices),
		NumEdges:    len(sub.Definition.Edges),
	}
	if sub.Instances != nil {
		s.NumInstances = sub.Instances.Len()
	}
	if sub.NegInstances != nil {
		s.NumNegInstances = sub.NegInstances.Len()
	}

	return s
}

// report builds this iteration's result, writes it through cfg.Logger
// when cfg.OutputLevel > 0, and forwards it to cfg.Sink when set.
func (cfg runConfig) report(p params.Params, iteration int, best *substructure.Substructure, discovered []*substructure.Substructure) {
	if cfg.OutputLevel <= 0 && cfg.Sink == nil {
		return
	}

	result := IterationResult{
		Iteration:    iteration,
		PosGraphSize: p.PosGraph.Size(),
		NumLabels:    p.Labels.Count(),
		Best:         summarize(best),
		Discovered:   make([]SubstructureSummary, len(discovered)),
	}
	if p.NegGraph != nil {
		result.NegGraphSize = p.NegGraph.Size()
	}
	for i, sub := range discovered {
		result.Discovered[i] = summarize(sub)
	}

	if cfg.OutputLevel > 0 {
		cfg.Logger.Printf("iteration %d: %d substructures, best value %.4f (%d vertices, %d instances)",
			result.Iteration, len(discovered), result.Best.Value, result.Best.NumVertices, result.Best.NumInstances)
	}
	if cfg.Sink != nil {
		cfg.Sink(result)
	}
}
