// Package matcher implements the inexact graph matcher: a branch-and-bound
// search for the minimum edit distance between two graphs, capped at a
// caller-supplied cost budget.
//
// The priority queue is grounded on the pack's own container/heap usage for
// shortest-path search (see dijkstra's nodePQ): a slice-backed heap ordered
// by a composite key, here (cost ascending, depth descending) instead of
// (distance ascending).
package matcher

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/label"
)

// Matcher runs inexact graph matching under a configured cost model and
// backtracking bound. The zero value is not usable; construct with New.
type Matcher struct {
	cfg config
}

// New returns a Matcher configured by opts.
func New(opts ...Option) *Matcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Matcher{cfg: cfg}
}

// Result is the outcome of a successful Match.
type Result struct {
	Cost float64
	// Mapping[i] is the vertex index in the smaller graph that the larger
	// graph's vertex i maps to, or gstore.Deleted if vertex i was deleted.
	// Indexed by the larger graph's vertex space; see LargerIsFirst.
	Mapping []int
	// LargerIsFirst reports whether g1 (true) or g2 (false) was treated as
	// the larger graph, so callers can interpret Mapping correctly.
	LargerIsFirst bool
}

// Match returns the minimum edit cost to transform the larger of g1, g2
// into an isomorph of the smaller, capped at threshold. ok is false when no
// mapping within threshold exists (including the threshold == 0 exact-match
// fast path on a vertex/edge count mismatch).
func (m *Matcher) Match(g1 *gstore.Graph, l1 *label.Table, g2 *gstore.Graph, l2 *label.Table, threshold float64) (Result, bool) {
	larger, smaller := g1, g2
	largerLabels, smallerLabels := l1, l2
	largerIsFirst := true
	if len(g2.Vertices) > len(g1.Vertices) {
		larger, smaller = g2, g1
		largerLabels, smallerLabels = l2, l1
		largerIsFirst = false
	}

	if threshold == 0 {
		if len(larger.Vertices) != len(smaller.Vertices) || len(larger.Edges) != len(smaller.Edges) {
			return Result{}, false
		}
	}

	s := &search{
		m:              m,
		larger:         larger,
		smaller:        smaller,
		largerLabels:   largerLabels,
		smallerLabels:  smallerLabels,
		threshold:      threshold,
		expansionLimit: backtrackLimit(len(larger.Vertices), m.cfg.backtrackExponent),
	}
	s.buildOrder()

	res, ok := s.run()
	if !ok {
		return Result{}, false
	}

	mapping := make([]int, len(res.assign))
	for pos, v := range s.order {
		mapping[v] = res.assign[pos]
	}

	return Result{Cost: res.cost, Mapping: mapping, LargerIsFirst: largerIsFirst}, true
}

func backtrackLimit(n, k int) int {
	if k == 0 {
		return math.MaxInt64
	}
	lim := 1
	for i := 0; i < k; i++ {
		lim *= n
		if lim <= 0 { // overflow guard; treat as unbounded
			return math.MaxInt64
		}
	}

	return lim
}

// search holds the state of one Match invocation.
type search struct {
	m             *Matcher
	larger        *gstore.Graph
	smaller       *gstore.Graph
	largerLabels  *label.Table
	smallerLabels *label.Table
	threshold     float64

	order    []int // larger-graph vertex indices, descending degree
	orderPos []int // inverse of order

	expansions     int
	expansionLimit int
	greedy         bool
}

func (s *search) buildOrder() {
	n := len(s.larger.Vertices)
	s.order = make([]int, n)
	for i := range s.order {
		s.order[i] = i
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.larger.Degree(s.order[i]) > s.larger.Degree(s.order[j])
	})
	s.orderPos = make([]int, n)
	for pos, v := range s.order {
		s.orderPos[v] = pos
	}
}

// node is one partial-mapping state in the search.
type node struct {
	assign   []int  // len == depth; assign[pos] is smaller-vertex idx or gstore.Deleted
	g2Used   []bool // len == len(smaller.Vertices)
	edgeUsed []bool // len == len(smaller.Edges)
	cost     float64
	depth    int
}

func (s *search) run() (node, bool) {
	pq := &matchHeap{}
	heap.Init(pq)
	heap.Push(pq, &node{
		g2Used:   make([]bool, len(s.smaller.Vertices)),
		edgeUsed: make([]bool, len(s.smaller.Edges)),
	})

	seenCost := map[float64]bool{}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*node)

		if cur.depth == len(s.order) {
			return *cur, true
		}

		children := s.expand(cur)
		s.expansions++
		if s.expansions > s.expansionLimit {
			s.greedy = true
		}

		for _, child := range children {
			if child.cost > s.threshold {
				continue
			}
			if s.greedy {
				if seenCost[child.cost] {
					continue
				}
				seenCost[child.cost] = true
			}
			heap.Push(pq, child)
		}

		if s.greedy && pq.Len() > 1 {
			// Retain only the single best node; this is the "prefer only the
			// best node for further expansion" half of the greedy switch.
			best := heap.Pop(pq).(*node)
			*pq = matchHeap{best}
			heap.Init(pq)
		}
	}

	return node{}, false
}

func (s *search) expand(cur *node) []*node {
	v1 := s.order[cur.depth]
	out := make([]*node, 0, len(s.smaller.Vertices)+1)

	out = append(out, s.tryDelete(cur, v1))
	for v2 := range s.smaller.Vertices {
		if cur.g2Used[v2] {
			continue
		}
		out = append(out, s.trySubstitute(cur, v1, v2))
	}

	return out
}

func (s *search) tryDelete(cur *node, v1 int) *node {
	cost := cur.cost + s.m.cfg.costs.DeleteVertex
	for _, e1 := range s.larger.Vertices[v1].Edges {
		o1 := s.larger.OtherEndpoint(e1, v1)
		if s.orderPos[o1] < cur.depth {
			cost += s.m.cfg.costs.DeleteEdgeWithVertex
		}
	}

	assign := append(append([]int(nil), cur.assign...), gstore.Deleted)
	edgeUsed := append([]bool(nil), cur.edgeUsed...)
	depth := cur.depth + 1
	if depth == len(s.order) {
		cost += s.completionCost(cur.g2Used, edgeUsed, -1)
	}

	return &node{
		assign:   assign,
		g2Used:   append([]bool(nil), cur.g2Used...),
		edgeUsed: edgeUsed,
		cost:     cost,
		depth:    depth,
	}
}

func (s *search) trySubstitute(cur *node, v1, v2 int) *node {
	cost := cur.cost
	l1, _ := s.largerLabels.At(s.larger.Vertices[v1].Label)
	l2, _ := s.smallerLabels.At(s.smaller.Vertices[v2].Label)
	if !l1.Equal(l2) {
		cost += s.m.cfg.costs.SubstituteVertexLabel
	}

	edgeUsed := append([]bool(nil), cur.edgeUsed...)
	for _, e1 := range s.larger.Vertices[v1].Edges {
		o1 := s.larger.OtherEndpoint(e1, v1)
		if s.orderPos[o1] >= cur.depth {
			continue // other endpoint not yet decided; reconciled when it is
		}
		o2 := cur.assign[s.orderPos[o1]]
		if o2 == gstore.Deleted {
			cost += s.m.cfg.costs.DeleteEdge
			continue
		}
		best, bestCost := s.cheapestUnusedEdge(v1, v2, o2, e1, edgeUsed)
		if best < 0 {
			cost += s.m.cfg.costs.DeleteEdge
			continue
		}
		edgeUsed[best] = true
		cost += bestCost
	}

	g2Used := append([]bool(nil), cur.g2Used...)
	g2Used[v2] = true
	assign := append(append([]int(nil), cur.assign...), v2)
	depth := cur.depth + 1
	if depth == len(s.order) {
		cost += s.completionCost(g2Used, edgeUsed, v2)
	}

	return &node{
		assign:   assign,
		g2Used:   g2Used,
		edgeUsed: edgeUsed,
		cost:     cost,
		depth:    depth,
	}
}

// cheapestUnusedEdge finds the lowest-cost not-yet-used edge of smaller
// incident to both v2 and o2, matched against larger's e1 (incident to v1
// and o1 — o1 is implicit via e1's other endpoint). Returns -1, 0 if none
// exists.
func (s *search) cheapestUnusedEdge(v1, v2, o2, e1 int, edgeUsed []bool) (int, float64) {
	best, bestCost := -1, math.Inf(1)
	for _, e2 := range s.smaller.Vertices[v2].Edges {
		if edgeUsed[e2] {
			continue
		}
		if s.smaller.OtherEndpoint(e2, v2) != o2 {
			continue
		}
		c := s.edgeSubCost(v1, e1, v2, e2)
		if c < bestCost {
			bestCost, best = c, e2
		}
	}

	return best, bestCost
}

// edgeSubCost scores pairing larger's e1 (incident to v1) against smaller's
// e2 (incident to v2), comparing label, directedness, and — when both are
// directed — whether they run the same way relative to (v1, v2).
func (s *search) edgeSubCost(v1, e1, v2, e2 int) float64 {
	a, b := s.larger.Edges[e1], s.smaller.Edges[e2]
	var cost float64
	la, _ := s.largerLabels.At(a.Label)
	lb, _ := s.smallerLabels.At(b.Label)
	if !la.Equal(lb) {
		cost += s.m.cfg.costs.SubstituteEdgeLabel
	}
	if a.Directed != b.Directed {
		cost += s.m.cfg.costs.SubstituteEdgeDirection
	} else if a.Directed && (a.From == v1) != (b.From == v2) {
		// Both directed, but one runs v1->o1 while the other runs o2->v2:
		// the same pair of endpoints traversed backwards.
		cost += s.m.cfg.costs.ReverseEdgeDirection
	}

	return cost
}

// completionCost adds insert costs for everything still unmapped in smaller
// once larger's last vertex has been decided. substitutedV2 is the vertex
// just substituted in this step (-1 if this step was a deletion), so it is
// not double-counted as unmapped.
//
// An unused edge only adds InsertEdgeWithVertex when at least one endpoint
// is mapped (or it's a self-edge) — an edge joining two still-unmapped
// vertices is already accounted for by those vertices' own InsertVertex
// cost and would otherwise be double-charged.
func (s *search) completionCost(g2Used []bool, edgeUsed []bool, substitutedV2 int) float64 {
	mapped := func(v2 int) bool {
		return g2Used[v2] || v2 == substitutedV2
	}

	var cost float64
	for v2, used := range g2Used {
		if used || v2 == substitutedV2 {
			continue
		}
		cost += s.m.cfg.costs.InsertVertex
	}
	for e2, used := range edgeUsed {
		if used {
			continue
		}
		from, to := s.smaller.Edges[e2].From, s.smaller.Edges[e2].To
		if from != to && !mapped(from) && !mapped(to) {
			continue
		}
		cost += s.m.cfg.costs.InsertEdgeWithVertex
	}

	return cost
}

// matchHeap is a container/heap priority queue of *node ordered by ascending
// cost, breaking ties by descending depth (more-complete mappings first).
type matchHeap []*node

func (h matchHeap) Len() int { return len(h) }
func (h matchHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].depth > h[j].depth
}
func (h matchHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *matchHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *matchHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
