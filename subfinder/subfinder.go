// Package subfinder implements the Subgraph Finder: given a pattern graph
// and a host graph, it returns every instance of the pattern in the host,
// filtered by match threshold and (optionally) overlap.
//
// The traversal is grounded on bfs.walker's queue/visited idiom
// (bfs/bfs.go): here the BFS walks the pattern graph once to fix a
// deterministic edge-consumption order, and a parallel frontier of
// partial host-side instances is carried alongside it instead of a single
// visited set, since many partial matches are grown in lockstep.
package subfinder

import (
	"sort"

	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
)

// patternStep is one pattern edge in BFS consumption order: pivot is the
// pattern vertex already reachable when the edge was discovered, edge is
// the pattern edge index.
type patternStep struct {
	pivot int
	edge  int
}

// bfsEdgeOrder walks p from vertex 0, returning every edge in the order a
// breadth-first traversal first reaches it, alongside the already-visited
// endpoint that discovered it (the pivot). This order is fixed per pattern,
// independent of any host.
func bfsEdgeOrder(p *gstore.Graph) []patternStep {
	if len(p.Vertices) == 0 {
		return nil
	}

	visited := make([]bool, len(p.Vertices))
	edgeUsed := make([]bool, len(p.Edges))
	queue := []int{0}
	visited[0] = true

	var steps []patternStep
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range p.Vertices[v].Edges {
			if edgeUsed[e] {
				continue
			}
			edgeUsed[e] = true
			steps = append(steps, patternStep{pivot: v, edge: e})
			other := p.OtherEndpoint(e, v)
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}

	return steps
}

// candidate is a partial instance together with the pattern-vertex ->
// host-vertex correspondence discovered so far.
type candidate struct {
	inst   *instance.Instance
	hostOf map[int]int
}

// Find returns every instance of pattern within host whose final match cost
// against pattern is within threshold, using m to score. When allowOverlap
// is false, an instance sharing any host vertex with an already-admitted
// instance is dropped.
func Find(
	pattern *gstore.Graph, patternLabels *label.Table,
	host *gstore.Graph, hostLabels *label.Table,
	m *matcher.Matcher, threshold float64, allowOverlap bool,
) *instance.List {
	result := instance.NewList()
	if len(pattern.Vertices) == 0 {
		return result
	}

	seedLabel, err := patternLabels.At(pattern.Vertices[0].Label)
	if err != nil {
		return result
	}

	var frontiers []candidate
	for hv := range host.Vertices {
		hl, err := hostLabels.At(host.Vertices[hv].Label)
		if err != nil || !hl.Equal(seedLabel) {
			continue
		}
		inst := instance.New(len(pattern.Vertices), len(pattern.Edges))
		inst.Vertices = append(inst.Vertices, hv)
		frontiers = append(frontiers, candidate{
			inst:   inst,
			hostOf: map[int]int{0: hv},
		})
	}

	for _, step := range bfsEdgeOrder(pattern) {
		frontiers = extendFrontiers(frontiers, pattern, patternLabels, host, hostLabels, step)
	}

	for _, c := range frontiers {
		candidateGraph := instance.ToGraph(c.inst, host)
		res, ok := m.Match(pattern, patternLabels, candidateGraph, hostLabels, threshold)
		if !ok {
			continue
		}
		c.inst.MinMatchCost = res.Cost

		if !allowOverlap && result.Overlap(c.inst) {
			continue
		}
		// unique=true: pattern automorphisms (e.g. a symmetric triangle or a
		// palindromic path) can rediscover the same vertex/edge set through
		// more than one pattern-vertex correspondence; collapse those to one.
		result.Insert(c.inst, true)
	}

	return result
}

func extendFrontiers(
	frontiers []candidate,
	pattern *gstore.Graph, patternLabels *label.Table,
	host *gstore.Graph, hostLabels *label.Table,
	step patternStep,
) []candidate {
	patEdge := pattern.Edges[step.edge]
	otherP := pattern.OtherEndpoint(step.edge, step.pivot)

	var out []candidate
	for _, f := range frontiers {
		hostPivot, ok := f.hostOf[step.pivot]
		if !ok {
			continue
		}

		for _, he := range host.Vertices[hostPivot].Edges {
			if containsEdge(f.inst, he) {
				continue
			}
			hostEdge := host.Edges[he]
			if hostEdge.Directed != patEdge.Directed {
				continue
			}
			if hostEdge.Directed && (hostEdge.From == hostPivot) != (patEdge.From == step.pivot) {
				continue
			}
			pl, err := patternLabels.At(patEdge.Label)
			if err != nil {
				continue
			}
			hl, err := hostLabels.At(hostEdge.Label)
			if err != nil || !hl.Equal(pl) {
				continue
			}

			hostOther := host.OtherEndpoint(he, hostPivot)
			if existing, known := f.hostOf[otherP]; known {
				if hostOther != existing {
					continue
				}
				out = append(out, candidate{
					inst:   instance.Extend(f.inst, hostPivot, he, host),
					hostOf: f.hostOf,
				})
				continue
			}

			if instance.ContainsVertex(f.inst, hostOther) {
				continue
			}
			newHostOf := make(map[int]int, len(f.hostOf)+1)
			for k, v := range f.hostOf {
				newHostOf[k] = v
			}
			newHostOf[otherP] = hostOther
			out = append(out, candidate{
				inst:   instance.Extend(f.inst, hostPivot, he, host),
				hostOf: newHostOf,
			})
		}
	}

	return out
}

func containsEdge(inst *instance.Instance, e int) bool {
	i := sort.SearchInts(inst.Edges, e)

	return i < len(inst.Edges) && inst.Edges[i] == e
}
