package beam

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/substructure"
)

// InitialSubs builds one candidate substructure per distinct vertex label
// in cfg.PosGraph that occurs at least twice, each a single vertex of that
// label with an instance for every matching vertex in the positive graph
// (and, when a negative graph is configured, every matching vertex there
// too, regardless of count). Grounded on original_source/src/discover.c's
// GetInitialSubs.
func InitialSubs(cfg Config) *SubList {
	result := newSubList()
	seen := make(map[int]bool)

	for _, v := range cfg.PosGraph.Vertices {
		if seen[v.Label] {
			continue
		}
		seen[v.Label] = true

		posInstances := labelInstances(cfg.PosGraph, v.Label)
		if posInstances.Len() <= 1 {
			continue
		}

		var negInstances *instance.List
		if cfg.NegGraph != nil {
			negInstances = labelInstances(cfg.NegGraph, v.Label)
		}

		definition := gstore.Allocate(1, 0)
		definition.AddVertex(v.Label)

		sub := substructure.New(definition)
		sub.Instances = posInstances
		sub.NegInstances = negInstances

		if err := cfg.evaluateSub(sub); err != nil {
			continue
		}

		result.Insert(sub, 0, false, cfg.Matcher, cfg.Labels)
	}

	return result
}

// labelInstances returns one single-vertex instance per vertex of g labeled
// lbl.
func labelInstances(g *gstore.Graph, lbl int) *instance.List {
	list := instance.NewList()
	for v, vtx := range g.Vertices {
		if vtx.Label != lbl {
			continue
		}
		inst := instance.New(1, 0)
		inst.Vertices = []int{v}
		list.Insert(inst, false)
	}

	return list
}
