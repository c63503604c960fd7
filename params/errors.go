package params

import "errors"

// Sentinel errors for Params construction.
var (
	// ErrNilPosGraph indicates New was called with a nil positive graph.
	ErrNilPosGraph = errors.New("params: positive graph is nil")
	// ErrNilLabels indicates New was called with a nil label table.
	ErrNilLabels = errors.New("params: label table is nil")
	// ErrThresholdOutOfRange indicates Threshold fell outside [0,1].
	ErrThresholdOutOfRange = errors.New("params: threshold out of range [0,1]")
	// ErrBeamWidthTooSmall indicates BeamWidth was set below 1.
	ErrBeamWidthTooSmall = errors.New("params: beam width must be >= 1")
	// ErrNumBestSubsTooSmall indicates NumBestSubs was set below 1.
	ErrNumBestSubsTooSmall = errors.New("params: num best subs must be >= 1")
	// ErrMinVerticesTooSmall indicates MinVertices was set below 1.
	ErrMinVerticesTooSmall = errors.New("params: min vertices must be >= 1")
)
