package matcher

import "errors"

// ErrNegativeBacktrackExponent indicates WithBacktrackExponent was given a
// negative value; callers that want an unbounded (strictly exhaustive)
// search must pass 0, not a negative number.
var ErrNegativeBacktrackExponent = errors.New("matcher: backtrack exponent must be >= 0")
