package compressor

import "errors"

// ErrNoInstances indicates Compress or SizeIfCompressed was called with an
// empty instance list; there is nothing to replace with a SUB vertex.
var ErrNoInstances = errors.New("compressor: instance list is empty")
