package extend

import (
	"github.com/katalvlaran/subdue/evaluate"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/substructure"
)

// RecursifyConfig bundles what Recursify needs to build and score
// candidate recursive variants of a substructure. EvalTemplate supplies
// every Input field Recursify doesn't itself override per candidate
// (Method, NumLabels, AllowOverlap, Pos.Graph/Labels/Examples/DL and,
// when a negative graph is in play, the Neg equivalents).
type RecursifyConfig struct {
	PosGraph *gstore.Graph
	NegGraph *gstore.Graph // nil when no negative graph is in play

	EvalTemplate evaluate.Input
	Cache        *evaluate.Cache
}

// Recursify looks for two or more instances of sub linked by an edge with
// a shared label external to every instance, and if found, returns the
// best-scoring recursive substructure built from such a label. ok is false
// when no connecting edge exists at all.
//
// Grounded on original_source/src/extend.c's RecursifySub: every label
// seen connecting an instance pair is tried exactly once (labelList's
// used-flag reset there becomes a local set here), and only the
// highest-value candidate survives.
func Recursify(sub *substructure.Substructure, cfg RecursifyConfig) (*substructure.Substructure, bool) {
	marks := gstore.NewEdgeMarks(cfg.PosGraph)
	for _, inst := range sub.Instances.Items {
		for _, e := range inst.Edges {
			marks[e] = true
		}
	}

	tried := make(map[int]bool)
	var best *substructure.Substructure

	items := sub.Instances.Items
	for i, inst1 := range items {
		for _, v1 := range inst1.Vertices {
			for _, e := range cfg.PosGraph.Vertices[v1].Edges {
				if marks[e] {
					continue
				}
				edge := cfg.PosGraph.Edges[e]
				if tried[edge.Label] {
					continue
				}

				other := cfg.PosGraph.OtherEndpoint(e, v1)
				linked := false
				for j := i + 1; j < len(items) && !linked; j++ {
					linked = instance.ContainsVertex(items[j], other)
				}
				if !linked {
					continue
				}
				tried[edge.Label] = true

				candidate, ok := makeRecursiveSub(sub, edge.Label, cfg)
				if !ok {
					continue
				}
				if best == nil || candidate.Value > best.Value {
					best = candidate
				}
			}
		}
	}

	return best, best != nil
}

func makeRecursiveSub(sub *substructure.Substructure, edgeLabel int, cfg RecursifyConfig) (*substructure.Substructure, bool) {
	recSub := substructure.New(sub.Definition.Copy())
	recSub.Recursive = true
	recSub.RecursiveEdgeLabel = edgeLabel
	recSub.Instances = getRecursiveInstances(cfg.PosGraph, sub.Instances, edgeLabel)
	if cfg.NegGraph != nil && sub.NegInstances != nil {
		recSub.NegInstances = getRecursiveInstances(cfg.NegGraph, sub.NegInstances, edgeLabel)
	}

	in := cfg.EvalTemplate
	in.Pattern = recSub.Definition
	in.Recursive = true
	in.RecursiveEdgeLabel = edgeLabel

	posCtx := *in.Pos
	posCtx.Instances = recSub.Instances
	in.Pos = &posCtx
	if in.Neg != nil {
		negCtx := *in.Neg
		negCtx.Instances = recSub.NegInstances
		in.Neg = &negCtx
	}

	result, err := evaluate.Evaluate(in, cfg.Cache)
	if err != nil {
		return nil, false
	}
	recSub.Value = result.Value
	recSub.NumExamples = result.PosExamplesCovered
	recSub.NumNegExamples = result.NegExamplesCovered

	return recSub, true
}

// getRecursiveInstances groups instances into chains connected by an edge
// labeled recEdgeLabel. It first marks every instance's own edges in a
// fresh host edge mask and skips marked edges, so a connecting edge is
// always external to every instance.
func getRecursiveInstances(host *gstore.Graph, instances *instance.List, recEdgeLabel int) *instance.List {
	items := instances.Items
	n := len(items)
	instanceMap := make([]*instance.Instance, n)
	copy(instanceMap, items)

	marks := gstore.NewEdgeMarks(host)
	for _, inst := range items {
		for _, e := range inst.Edges {
			marks[e] = true
		}
	}

	for i1, inst1 := range items {
		for _, v1 := range inst1.Vertices {
			for _, e := range host.Vertices[v1].Edges {
				if marks[e] {
					continue
				}
				edge := host.Edges[e]
				if edge.Label != recEdgeLabel {
					continue
				}

				other := host.OtherEndpoint(e, v1)
				for i2 := i1 + 1; i2 < n; i2++ {
					if instance.ContainsVertex(items[i2], other) {
						addRecursiveInstancePair(i1, i2, items[i1], items[i2], e, instanceMap)
					}
				}
			}
		}
	}

	return collectRecursiveInstances(instanceMap)
}

// addRecursiveInstancePair folds the connecting edge e between the
// instances at i1 and i2 into instanceMap, merging whichever recursive
// chains they currently belong to.
func addRecursiveInstancePair(i1, i2 int, instance1, instance2 *instance.Instance, e int, instanceMap []*instance.Instance) {
	switch {
	case instanceMap[i1] == instance1 && instanceMap[i2] == instance2:
		merged := instance.New(0, 0)
		instance.Absorb(merged, instance1)
		instance.Absorb(merged, instance2)
		instance.IncludeEdge(merged, e)
		instanceMap[i1] = merged
		instanceMap[i2] = merged
	case instanceMap[i1] == instance1:
		instance.Absorb(instanceMap[i2], instance1)
		instance.IncludeEdge(instanceMap[i2], e)
		instanceMap[i1] = instanceMap[i2]
	case instanceMap[i2] == instance2:
		instance.Absorb(instanceMap[i1], instance2)
		instance.IncludeEdge(instanceMap[i1], e)
		instanceMap[i2] = instanceMap[i1]
	case instanceMap[i1] != instanceMap[i2]:
		target, old := instanceMap[i1], instanceMap[i2]
		instance.Absorb(target, old)
		instance.IncludeEdge(target, e)
		for i := range instanceMap {
			if instanceMap[i] == old {
				instanceMap[i] = target
			}
		}
	default:
		instance.IncludeEdge(instanceMap[i1], e)
	}
}

func collectRecursiveInstances(instanceMap []*instance.Instance) *instance.List {
	out := instance.NewList()
	seen := make(map[*instance.Instance]bool, len(instanceMap))
	for _, inst := range instanceMap {
		if inst == nil || seen[inst] {
			continue
		}
		seen[inst] = true
		out.Insert(inst, false)
	}

	return out
}
