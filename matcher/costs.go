package matcher

// Costs holds the edit-operation costs the matcher charges while searching
// for a mapping between two graphs. Implementations MAY expose these for
// experimentation but MUST default to DefaultCosts.
type Costs struct {
	InsertVertex            float64
	DeleteVertex            float64
	SubstituteVertexLabel   float64
	InsertEdge              float64
	InsertEdgeWithVertex    float64
	DeleteEdge              float64
	DeleteEdgeWithVertex    float64
	SubstituteEdgeLabel     float64
	SubstituteEdgeDirection float64
	ReverseEdgeDirection    float64
}

// DefaultCosts returns the fixed unit-cost model: every edit operation costs
// 1, substitutions cost 1 only when the two values actually differ.
func DefaultCosts() Costs {
	return Costs{
		InsertVertex:            1,
		DeleteVertex:            1,
		SubstituteVertexLabel:   1,
		InsertEdge:              1,
		InsertEdgeWithVertex:    1,
		DeleteEdge:              1,
		DeleteEdgeWithVertex:    1,
		SubstituteEdgeLabel:     1,
		SubstituteEdgeDirection: 1,
		ReverseEdgeDirection:    1,
	}
}
