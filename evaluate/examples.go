package evaluate

import (
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
)

// Examples gives the starting vertex index of each labeled example within
// a graph, ascending; an example's range runs up to (but not including)
// the next example's start, or the graph's last vertex for the final one.
type Examples []int

// Covered counts how many of examples has at least one member of
// instances whose lowest-indexed vertex falls in its range. One example
// may contain more than one instance; it is still counted once.
func Covered(instances *instance.List, examples Examples, graph *gstore.Graph) int {
	if instances == nil || len(examples) == 0 {
		return 0
	}

	covered := 0
	for i, start := range examples {
		end := len(graph.Vertices) - 1
		if i < len(examples)-1 {
			end = examples[i+1] - 1
		}
		for _, inst := range instances.Items {
			if len(inst.Vertices) == 0 {
				continue
			}
			if v := inst.Vertices[0]; v >= start && v <= end {
				covered++
				break
			}
		}
	}

	return covered
}
