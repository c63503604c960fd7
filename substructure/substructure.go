// Package substructure defines the Substructure value every stage of
// discovery passes around: a candidate pattern graph together with every
// instance of it found in the positive graph and, when a negative graph is
// in play, the negative graph too.
package substructure

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
)

// Substructure is one candidate pattern plus its instances. Value and the
// example-coverage counts are filled in by whatever scores the
// substructure (see the evaluate package). Extend only sets Definition,
// Instances and NegInstances; Recursify also sets Recursive and
// RecursiveEdgeLabel and scores its result itself.
type Substructure struct {
	Definition *gstore.Graph

	Instances   *instance.List
	NumExamples int

	NegInstances   *instance.List
	NumNegExamples int

	Value float64

	// Recursive marks a substructure whose matches are chains of two or
	// more instances of Definition linked by a same-labeled edge;
	// RecursiveEdgeLabel is that edge's label index. Scoring (see
	// evaluate.Input.Recursive) augments a copy of Definition with the
	// self-edge rather than mutating it here.
	Recursive          bool
	RecursiveEdgeLabel int
}

// New returns an empty Substructure with definition as its pattern.
func New(definition *gstore.Graph) *Substructure {
	return &Substructure{Definition: definition}
}
