package beam

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/extend"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/substructure"
)

// Config bundles every parameter one outer-loop run of Run needs: the
// graphs and machinery to extend and score candidates, and the search's
// own width/depth/pruning knobs. Grounded on original_source/src/subdue.h's
// Parameters struct, restricted to the fields the beam search itself
// consults (the rest — input/output file names, the CLI's own flags —
// belong to the discover package's iteration driver).
type Config struct {
	Matcher *matcher.Matcher
	Labels  *label.Table

	PosGraph *gstore.Graph
	NegGraph *gstore.Graph // nil when no negative graph is in play

	Threshold            float64
	AllowInstanceOverlap bool

	Method      evaluate.Method
	NumLabels   int
	PosExamples evaluate.Examples
	NegExamples evaluate.Examples
	PosDL       float64 // ignored by Size and SetCover
	NegDL       float64
	Cache       *evaluate.Cache

	BeamWidth   int // child-list survival bound per iteration
	ValueBased  bool
	NumBestSubs int // discovered-list survival bound
	Limit       int // number of parent substructures that may be extended
	MinVertices int
	MaxVertices int
	Prune       bool
	Recursion   bool
}

func (c Config) extendConfig() extend.Config {
	return extend.Config{
		Matcher:              c.Matcher,
		Labels:               c.Labels,
		PosGraph:             c.PosGraph,
		NegGraph:             c.NegGraph,
		Threshold:            c.Threshold,
		AllowInstanceOverlap: c.AllowInstanceOverlap,
	}
}

func (c Config) recursifyConfig() extend.RecursifyConfig {
	return extend.RecursifyConfig{
		PosGraph:     c.PosGraph,
		NegGraph:     c.NegGraph,
		EvalTemplate: c.evalInput(nil, nil, nil),
		Cache:        c.Cache,
	}
}

// evalInput builds an evaluate.Input scoring pattern against posInstances/
// negInstances under c's method and graphs. Callers that only need the
// template (Recursify overrides Pattern/Instances per candidate) may pass
// nils for all three.
func (c Config) evalInput(pattern *gstore.Graph, posInstances, negInstances *instance.List) evaluate.Input {
	in := evaluate.Input{
		Method:        c.Method,
		Pattern:       pattern,
		PatternLabels: c.Labels,
		NumLabels:     c.NumLabels,
		AllowOverlap:  c.AllowInstanceOverlap,
		Pos: &evaluate.GraphContext{
			Graph:     c.PosGraph,
			Labels:    c.Labels,
			Instances: posInstances,
			Examples:  c.PosExamples,
			DL:        c.PosDL,
		},
	}
	if c.NegGraph != nil {
		in.Neg = &evaluate.GraphContext{
			Graph:     c.NegGraph,
			Labels:    c.Labels,
			Instances: negInstances,
			Examples:  c.NegExamples,
			DL:        c.NegDL,
		}
	}

	return in
}

// evaluateSub scores sub in place, setting Value, NumExamples, and
// NumNegExamples.
func (c Config) evaluateSub(sub *substructure.Substructure) error {
	in := c.evalInput(sub.Definition, sub.Instances, sub.NegInstances)
	result, err := evaluate.Evaluate(in, c.Cache)
	if err != nil {
		return err
	}
	sub.Value = result.Value
	sub.NumExamples = result.PosExamplesCovered
	sub.NumNegExamples = result.NegExamplesCovered

	return nil
}
