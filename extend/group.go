package extend

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
)

// addInstances collects every instance of list that matches definition
// within threshold into a new list. seed, when non-nil, is inserted
// unconditionally first (it is the instance definition was built from, so
// it trivially matches) — mirroring AddPosInstancesToSub's forced
// insertion of the instance that seeded the new substructure; negative
// collection (seed nil) has no such obvious member.
func addInstances(
	definition *gstore.Graph, definitionLabels *label.Table,
	seed *instance.Instance, list *instance.List,
	host *gstore.Graph, hostLabels *label.Table,
	m *matcher.Matcher, threshold float64, allowOverlap bool,
) *instance.List {
	out := instance.NewList()
	if seed != nil {
		out.Insert(seed, false)
	}

	for _, inst := range list.Items {
		if inst == seed {
			continue
		}
		if !allowOverlap && out.Overlap(inst) {
			continue
		}

		thresholdLimit := threshold * float64(len(inst.Vertices)+len(inst.Edges))
		candidate := instance.ToGraph(inst, host)
		res, ok := m.Match(definition, definitionLabels, candidate, hostLabels, thresholdLimit)
		if !ok {
			continue
		}
		inst.MinMatchCost = res.Cost
		out.Insert(inst, false)
	}

	return out
}
