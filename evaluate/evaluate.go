// Package evaluate implements the Evaluator: scoring a candidate
// substructure's compression value against the positive graph (and,
// optionally, penalizing it against a negative graph) under one of three
// methods — MDL, Size, or SetCover.
package evaluate

import (
	"github.com/katalvlaran/subdue/compressor"
	"github.com/katalvlaran/subdue/gstore"
	"github.com/katalvlaran/subdue/instance"
	"github.com/katalvlaran/subdue/label"
)

// GraphContext bundles one side (positive or negative) of an Evaluate
// call: the graph, its label table, the instances a pattern matched
// against it, where its labeled examples begin, and (for MDL only) the
// graph's own cached description length.
type GraphContext struct {
	Graph     *gstore.Graph
	Labels    *label.Table
	Instances *instance.List
	Examples  Examples

	// DL is DL(Graph, numLabelsAtRunStart, cache), computed once per run
	// and reused across every candidate's Evaluate call. Ignored by Size
	// and SetCover.
	DL float64
}

// Input is everything Evaluate needs to score one candidate substructure.
type Input struct {
	Method Method

	Pattern       *gstore.Graph
	PatternLabels *label.Table

	// Recursive, when true, scores Pattern with a directed self-edge
	// labeled RecursiveEdgeLabel temporarily attached to its first
	// vertex, without mutating Pattern itself.
	Recursive          bool
	RecursiveEdgeLabel int

	Pos *GraphContext
	Neg *GraphContext // nil when no negative graph is in play

	// NumLabels is the label count before compression mints SUB (and,
	// if overlap is exercised, OVERLAP) labels.
	NumLabels    int
	AllowOverlap bool
}

// Result is a scored candidate's value plus the example-coverage counts
// SetCover (and discovery-log reporting) need.
type Result struct {
	Value              float64
	PosExamplesCovered int
	NegExamplesCovered int
}

// Evaluate scores in.Pattern according to in.Method and returns the
// result. cache is shared across an entire discovery run.
func Evaluate(in Input, cache *Cache) (Result, error) {
	var result Result
	result.PosExamplesCovered = Covered(in.Pos.Instances, in.Pos.Examples, in.Pos.Graph)
	if in.Neg != nil {
		result.NegExamplesCovered = Covered(in.Neg.Instances, in.Neg.Examples, in.Neg.Graph)
	}

	pattern := in.Pattern
	if in.Recursive {
		pattern = pattern.Copy()
		if _, err := pattern.AddEdge(0, 0, true, in.RecursiveEdgeLabel); err != nil {
			return Result{}, err
		}
	}

	switch in.Method {
	case MDL:
		value, err := evaluateMDL(in, pattern, cache)
		if err != nil {
			return Result{}, err
		}
		result.Value = value
	case Size:
		value, err := evaluateSize(in, pattern)
		if err != nil {
			return Result{}, err
		}
		result.Value = value
	case SetCover:
		numPos := len(in.Pos.Examples)
		numNeg := 0
		if in.Neg != nil {
			numNeg = len(in.Neg.Examples)
		}
		result.Value = float64(result.PosExamplesCovered+(numNeg-result.NegExamplesCovered)) / float64(numPos+numNeg)
	default:
		return Result{}, ErrUnknownMethod
	}

	return result, nil
}

func evaluateMDL(in Input, pattern *gstore.Graph, cache *Cache) (float64, error) {
	sizeOfSub := DL(pattern, in.NumLabels, cache)
	sizeOfPosGraph := in.Pos.DL

	numLabels := in.NumLabels + 1 // SUB
	overlapUsed := in.AllowOverlap && (instance.AnyPairOverlaps(in.Pos.Instances) ||
		(in.Neg != nil && instance.AnyPairOverlaps(in.Neg.Instances)))
	if overlapUsed {
		numLabels++ // OVERLAP
	}

	compressedPos, err := compressor.Compress(in.Pos.Graph, in.Pos.Labels, in.Pos.Instances, in.AllowOverlap)
	if err != nil {
		return 0, err
	}
	sizeOfCompressedPos := DL(compressedPos, numLabels, cache) +
		externalEdgeBits(compressedPos, pattern, in.Pos.Instances.Len())

	value := sizeOfPosGraph / (sizeOfSub + sizeOfCompressedPos)

	if in.Neg != nil {
		compressedNeg, err := compressor.Compress(in.Neg.Graph, in.Neg.Labels, in.Neg.Instances, in.AllowOverlap)
		if err != nil {
			return 0, err
		}
		sizeOfCompressedNeg := DL(compressedNeg, numLabels, cache) +
			externalEdgeBits(compressedNeg, pattern, in.Neg.Instances.Len())

		value = (sizeOfPosGraph + in.Neg.DL) /
			(sizeOfSub + sizeOfCompressedPos + in.Neg.DL - sizeOfCompressedNeg)
	}

	return value, nil
}

func evaluateSize(in Input, pattern *gstore.Graph) (float64, error) {
	sizeOfSub := float64(GraphSize(pattern))
	sizeOfPosGraph := float64(GraphSize(in.Pos.Graph))

	compressedPos, err := compressor.SizeIfCompressed(in.Pos.Graph, in.Pos.Instances, in.AllowOverlap)
	if err != nil {
		return 0, err
	}

	value := sizeOfPosGraph / (sizeOfSub + float64(compressedPos))

	if in.Neg != nil {
		sizeOfNegGraph := float64(GraphSize(in.Neg.Graph))
		compressedNeg, err := compressor.SizeIfCompressed(in.Neg.Graph, in.Neg.Instances, in.AllowOverlap)
		if err != nil {
			return 0, err
		}
		value = (sizeOfPosGraph + sizeOfNegGraph) /
			(sizeOfSub + float64(compressedPos) + sizeOfNegGraph - float64(compressedNeg))
	}

	return value, nil
}
