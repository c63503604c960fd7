package matcher_test

import (
	"testing"

	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds a 4-cycle a-b-c-d-a with the given edge labels (one per
// edge, in order a-b, b-c, c-d, d-a), all undirected, vertices labeled "V".
func square(labels *label.Table, edgeLabels []string) *gstore.Graph {
	g := gstore.Allocate(4, 4)
	v := labels.Store(label.String("V"))
	a := g.AddVertex(v)
	b := g.AddVertex(v)
	c := g.AddVertex(v)
	d := g.AddVertex(v)
	pairs := [][2]int{{a, b}, {b, c}, {c, d}, {d, a}}
	for i, p := range pairs {
		g.AddEdge(p[0], p[1], false, labels.Store(label.String(edgeLabels[i])))
	}

	return g
}

func TestExactMatchFastPathRejectsSizeMismatch(t *testing.T) {
	labels := label.NewTable()
	g1 := square(labels, []string{"r", "r", "r", "r"})
	g2 := gstore.Allocate(3, 2)
	v := labels.Store(label.String("V"))
	x := g2.AddVertex(v)
	y := g2.AddVertex(v)
	z := g2.AddVertex(v)
	g2.AddEdge(x, y, false, labels.Store(label.String("r")))
	g2.AddEdge(y, z, false, labels.Store(label.String("r")))

	m := matcher.New()
	_, ok := m.Match(g1, labels, g2, labels, 0)
	assert.False(t, ok, "vertex/edge count mismatch must fail fast at threshold 0")
}

func TestExactMatchAcceptsIsomorphicSquares(t *testing.T) {
	labels := label.NewTable()
	g1 := square(labels, []string{"r", "r", "r", "r"})
	g2 := square(labels, []string{"r", "r", "r", "r"})

	m := matcher.New()
	res, ok := m.Match(g1, labels, g2, labels, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, res.Cost)
}

func TestInexactMatchWithinBudgetFindsRelabeledEdge(t *testing.T) {
	labels := label.NewTable()
	g1 := square(labels, []string{"r", "r", "r", "r"})
	g2 := square(labels, []string{"r", "r", "r", "s"}) // one edge relabeled

	m := matcher.New()
	res, ok := m.Match(g1, labels, g2, labels, 1.0)
	require.True(t, ok)
	assert.Equal(t, 1.0, res.Cost)

	_, ok = m.Match(g1, labels, g2, labels, 0)
	assert.False(t, ok, "exact match must fail once a label differs")
}

func TestNewEdgeMatchAcceptsConsistentExtension(t *testing.T) {
	labels := label.NewTable()
	patternLabels := label.NewTable()

	host := gstore.Allocate(3, 2)
	vA := labels.Store(label.String("A"))
	vB := labels.Store(label.String("B"))
	eR := labels.Store(label.String("r"))
	h0 := host.AddVertex(vA)
	h1 := host.AddVertex(vB)
	h2 := host.AddVertex(vA)
	host.AddEdge(h0, h1, false, eR)
	hostNewEdge, _ := host.AddEdge(h1, h2, false, eR)

	pattern := gstore.Allocate(3, 2)
	pA := patternLabels.Store(label.String("A"))
	pB := patternLabels.Store(label.String("B"))
	pR := patternLabels.Store(label.String("r"))
	p0 := pattern.AddVertex(pA)
	p1 := pattern.AddVertex(pB)
	p2 := pattern.AddVertex(pA)
	pattern.AddEdge(p0, p1, false, pR)
	pattern.AddEdge(p1, p2, false, pR)

	child := instance.New(3, 2)
	child.Vertices = []int{h0, h1, h2}
	child.Edges = []int{0, hostNewEdge}
	child.NewEdge = 1
	child.Mapping = []int{p0, p1, p2}
	child.MappingIndex1 = 1 // row for h1
	child.MappingIndex2 = 2 // row for h2

	m := matcher.New()
	assert.True(t, m.NewEdgeMatch(child, host, labels, pattern, patternLabels))
}

func TestNewEdgeMatchRejectsLabelMismatch(t *testing.T) {
	labels := label.NewTable()
	patternLabels := label.NewTable()

	host := gstore.Allocate(3, 2)
	vA := labels.Store(label.String("A"))
	eR := labels.Store(label.String("r"))
	eS := labels.Store(label.String("s"))
	h0 := host.AddVertex(vA)
	h1 := host.AddVertex(vA)
	h2 := host.AddVertex(vA)
	host.AddEdge(h0, h1, false, eR)
	hostNewEdge, _ := host.AddEdge(h1, h2, false, eS) // "s", pattern expects "r"

	pattern := gstore.Allocate(3, 2)
	pA := patternLabels.Store(label.String("A"))
	pR := patternLabels.Store(label.String("r"))
	p0 := pattern.AddVertex(pA)
	p1 := pattern.AddVertex(pA)
	p2 := pattern.AddVertex(pA)
	pattern.AddEdge(p0, p1, false, pR)
	pattern.AddEdge(p1, p2, false, pR)

	child := instance.New(3, 2)
	child.Vertices = []int{h0, h1, h2}
	child.Edges = []int{0, hostNewEdge}
	child.NewEdge = 1
	child.Mapping = []int{p0, p1, p2}
	child.MappingIndex1 = 1
	child.MappingIndex2 = 2

	m := matcher.New()
	assert.False(t, m.NewEdgeMatch(child, host, labels, pattern, patternLabels))
}

func TestWithBacktrackExponentPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		matcher.New(matcher.WithBacktrackExponent(-1))
	})
}
